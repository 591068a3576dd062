// Package crypto holds the hashing, addressing and signing primitives used
// by ledger records.
package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Write operations in a hash.Hash never return an error

// Sha512Half returns the first 32 bytes of the SHA-512 of the concatenated
// inputs.
func Sha512Half(b ...[]byte) []byte {
	hasher := sha512.New()
	for _, part := range b {
		hasher.Write(part)
	}
	return hasher.Sum(nil)[:32]
}

// Sha256RipeMD160 returns RIPEMD-160(SHA-256(b)), the account identifier of
// a public key.
func Sha256RipeMD160(b []byte) []byte {
	sha := sha256.Sum256(b)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
