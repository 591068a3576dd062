package crypto

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

// Version bytes of base58 encoded payloads.
const (
	AccountIDVersion  byte = 0
	NodePublicVersion byte = 28
	FamilySeedVersion byte = 33
)

// well known accounts
const (
	AccountZero = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	AccountOne  = "rrrrrrrrrrrrrrrrrrrrBZbvji"
	AccountRoot = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
)

const (
	ledgerAlphabet  = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
	bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// address errors
var (
	ErrBadAddress  = errors.New("bad base58 address")
	ErrBadChecksum = errors.New("bad base58 checksum")
	ErrBadVersion  = errors.New("unexpected base58 version")
)

var toLedger, toBitcoin [256]byte

func init() {
	for i := range ledgerAlphabet {
		toLedger[bitcoinAlphabet[i]] = ledgerAlphabet[i]
		toBitcoin[ledgerAlphabet[i]] = bitcoinAlphabet[i]
	}
}

func translate(s string, table *[256]byte) (string, bool) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := table[s[i]]
		if c == 0 {
			return "", false
		}
		out[i] = c
	}
	return string(out), true
}

// EncodeBase58 writes version and payload with a four byte double SHA-256
// checksum in the ledger alphabet.
func EncodeBase58(version byte, payload []byte) string {
	s, _ := translate(base58.CheckEncode(payload, version), &toLedger)
	return s
}

// DecodeBase58 reverses EncodeBase58, checking the checksum and version.
func DecodeBase58(s string, version byte) ([]byte, error) {
	b, ok := translate(s, &toBitcoin)
	if !ok || len(s) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadAddress, s)
	}
	payload, v, err := base58.CheckDecode(b)
	switch {
	case err == base58.ErrChecksum:
		return nil, fmt.Errorf("%w: %q", ErrBadChecksum, s)
	case err != nil:
		return nil, fmt.Errorf("%w: %q: %v", ErrBadAddress, s, err)
	case v != version:
		return nil, fmt.Errorf("%w: %q has %d, want %d", ErrBadVersion, s, v, version)
	}
	return payload, nil
}

// EncodeAccountID renders a 20 byte account identifier.
func EncodeAccountID(id []byte) string {
	return EncodeBase58(AccountIDVersion, id)
}

// DecodeAccountID parses an account address into its 20 byte identifier.
func DecodeAccountID(s string) ([]byte, error) {
	b, err := DecodeBase58(s, AccountIDVersion)
	if err != nil {
		return nil, err
	}
	if len(b) != 20 {
		return nil, fmt.Errorf("%w: %q decodes to %d bytes", ErrBadAddress, s, len(b))
	}
	return b, nil
}
