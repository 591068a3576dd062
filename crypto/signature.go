package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec"
)

// signature errors
var (
	ErrUnknownKeyFormat = errors.New("unknown key format")
	ErrBadPublicKey     = errors.New("bad public key")
	ErrBadSignature     = errors.New("bad signature")
)

// Sign signs with an ed25519 or secp256k1 private key. Ed25519 signs msg
// itself, secp256k1 signs its hash and returns a DER signature.
func Sign(privateKey, hash, msg []byte) ([]byte, error) {
	switch len(privateKey) {
	case ed25519.PrivateKeySize:
		return ed25519.Sign(privateKey, msg), nil
	case btcec.PrivKeyBytesLen:
		priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), privateKey)
		sig, err := priv.Sign(hash)
		if err != nil {
			return nil, err
		}
		return sig.Serialize(), nil
	default:
		return nil, fmt.Errorf("%w: private key of %d bytes", ErrUnknownKeyFormat, len(privateKey))
	}
}

// Verify checks a signature made by Sign. The key type is taken from the
// first byte of the public key.
func Verify(publicKey, hash, msg, signature []byte) (bool, error) {
	if len(publicKey) == 0 {
		return false, fmt.Errorf("%w: empty", ErrBadPublicKey)
	}
	switch publicKey[0] {
	case 0xED:
		return verifyEd25519(publicKey, signature, msg)
	case 0x02, 0x03:
		return verifyECDSA(publicKey, signature, hash)
	default:
		return false, fmt.Errorf("%w: prefix %#02x", ErrUnknownKeyFormat, publicKey[0])
	}
}

func verifyEd25519(pubKey, signature, msg []byte) (bool, error) {
	switch {
	case len(pubKey) != ed25519.PublicKeySize+1:
		return false, fmt.Errorf("%w: length %d", ErrBadPublicKey, len(pubKey))
	case len(signature) != ed25519.SignatureSize:
		return false, fmt.Errorf("%w: length %d", ErrBadSignature, len(signature))
	default:
		return ed25519.Verify(pubKey[1:], msg, signature), nil
	}
}

func verifyECDSA(pubKey, signature, hash []byte) (bool, error) {
	sig, err := btcec.ParseDERSignature(signature, btcec.S256())
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	pk, err := btcec.ParsePubKey(pubKey, btcec.S256())
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadPublicKey, err)
	}
	return sig.Verify(hash, pk), nil
}
