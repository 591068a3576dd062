package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

// ErrNoFamily is returned when an ed25519 key is asked for a family member.
var ErrNoFamily = errors.New("ed25519 keys do not support account families")

// Key is a signing key. ECDSA keys form account families indexed by
// sequence; a nil sequence selects the root key itself.
type Key interface {
	Private(seq *uint32) ([]byte, error)
	Public(seq *uint32) ([]byte, error)
}

// AccountID returns the account identifier of k's public key.
func AccountID(k Key, seq *uint32) ([]byte, error) {
	pub, err := k.Public(seq)
	if err != nil {
		return nil, err
	}
	return Sha256RipeMD160(pub), nil
}

// NewSeed returns 16 random bytes.
func NewSeed() ([]byte, error) {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

type ed25519Key struct {
	priv ed25519.PrivateKey
}

// NewEd25519Key derives a key from seed, or a random key for a nil seed.
// Public keys carry a leading 0xED byte.
func NewEd25519Key(seed []byte) (Key, error) {
	r := rand.Reader
	if seed != nil {
		r = bytes.NewReader(Sha512Half(seed))
	}
	_, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, err
	}
	return &ed25519Key{priv: priv}, nil
}

func (k *ed25519Key) Private(seq *uint32) ([]byte, error) {
	if seq != nil {
		return nil, ErrNoFamily
	}
	return append([]byte(nil), k.priv...), nil
}

func (k *ed25519Key) Public(seq *uint32) ([]byte, error) {
	if seq != nil {
		return nil, ErrNoFamily
	}
	return append([]byte{0xED}, k.priv[32:]...), nil
}

var (
	order = btcec.S256().N
	one   = big.NewInt(1)
)

type ecdsaKey struct {
	root *btcec.PrivateKey
}

// scalar hashes seed with an increasing counter until the result is a
// valid secp256k1 private scalar.
func scalar(seed []byte) *btcec.PrivateKey {
	inc := new(big.Int).SetBytes(seed)
	inc.Lsh(inc, 32)
	for key := new(big.Int); ; inc.Add(inc, one) {
		key.SetBytes(Sha512Half(inc.Bytes()))
		if key.Sign() > 0 && key.Cmp(order) < 0 {
			priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), key.Bytes())
			return priv
		}
	}
}

// NewECDSAKey derives a secp256k1 family root from seed, or from a random
// seed when seed is nil.
func NewECDSAKey(seed []byte) (Key, error) {
	if seed == nil {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
	}
	return &ecdsaKey{root: scalar(seed)}, nil
}

func (k *ecdsaKey) member(seq uint32) *btcec.PrivateKey {
	seed := make([]byte, btcec.PubKeyBytesLenCompressed+4)
	copy(seed, k.root.PubKey().SerializeCompressed())
	binary.BigEndian.PutUint32(seed[btcec.PubKeyBytesLenCompressed:], seq)
	key := scalar(seed)
	d := new(big.Int).Add(key.D, k.root.D)
	d.Mod(d, order)
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), d.Bytes())
	return priv
}

func (k *ecdsaKey) key(seq *uint32) *btcec.PrivateKey {
	if seq == nil {
		return k.root
	}
	return k.member(*seq)
}

func (k *ecdsaKey) Private(seq *uint32) ([]byte, error) {
	// fixed width, big.Int drops leading zeros
	b := make([]byte, btcec.PrivKeyBytesLen)
	d := k.key(seq).D.Bytes()
	copy(b[len(b)-len(d):], d)
	return b, nil
}

func (k *ecdsaKey) Public(seq *uint32) ([]byte, error) {
	return k.key(seq).PubKey().SerializeCompressed(), nil
}
