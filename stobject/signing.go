package stobject

import (
	"errors"
	"fmt"

	"github.com/anyswap/stobject/crypto"
	"github.com/anyswap/stobject/sfield"
)

// ErrNotSigned is returned when a record carries no signature to check.
var ErrNotSigned = errors.New("record is not signed")

// Sign sets SigningPubKey to the public key of k and TxnSignature to a
// signature over the single signing encoding.
func Sign(r *Record, k crypto.Key, seq *uint32) error {
	pub, err := k.Public(seq)
	if err != nil {
		return err
	}
	priv, err := k.Private(seq)
	if err != nil {
		return err
	}
	if err := r.SetVL(sfield.SigningPubKey, pub); err != nil {
		return err
	}
	msg, err := r.SigningData(HP_TRANSACTION_SIGN, nil)
	if err != nil {
		return err
	}
	sig, err := crypto.Sign(priv, crypto.Sha512Half(msg), msg)
	if err != nil {
		return err
	}
	return r.SetVL(sfield.TxnSignature, sig)
}

// CheckSignature verifies TxnSignature against SigningPubKey over the
// single signing encoding.
func CheckSignature(r *Record) (bool, error) {
	if !r.IsFieldPresent(sfield.TxnSignature) {
		return false, ErrNotSigned
	}
	pub, err := r.GetVL(sfield.SigningPubKey)
	if err != nil {
		return false, err
	}
	sig, err := r.GetVL(sfield.TxnSignature)
	if err != nil {
		return false, err
	}
	msg, err := r.SigningData(HP_TRANSACTION_SIGN, nil)
	if err != nil {
		return false, err
	}
	ok, err := crypto.Verify(pub, crypto.Sha512Half(msg), msg, sig)
	if err != nil {
		return false, fmt.Errorf("check signature: %w", err)
	}
	return ok, nil
}
