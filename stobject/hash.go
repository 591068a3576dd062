package stobject

import (
	"encoding/binary"
	"fmt"

	"github.com/anyswap/stobject/crypto"
	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

// HashPrefix separates the hash domains of different kinds of data.
type HashPrefix uint32

// hash prefixes, each three ASCII letters and a zero byte
const (
	HP_TRANSACTION_ID        HashPrefix = 0x54584E00 // 'TXN' transaction
	HP_TRANSACTION_NODE      HashPrefix = 0x534E4400 // 'SND' transaction plus metadata
	HP_LEAF_NODE             HashPrefix = 0x4D4C4E00 // 'MLN' account state
	HP_INNER_NODE            HashPrefix = 0x4D494E00 // 'MIN' inner node in tree
	HP_LEDGER_MASTER         HashPrefix = 0x4C575200 // 'LWR' ledger master data for signing
	HP_TRANSACTION_SIGN      HashPrefix = 0x53545800 // 'STX' inner transaction to sign
	HP_TRANSACTION_MULTISIGN HashPrefix = 0x534D5400 // 'SMT' inner transaction to multi-sign
	HP_VALIDATION            HashPrefix = 0x56414C00 // 'VAL' validation for signing
	HP_PROPOSAL              HashPrefix = 0x50525000 // 'PRP' proposal for signing
	HP_MANIFEST              HashPrefix = 0x4D414E00 // 'MAN' manifest
)

var prefixNames = map[string]HashPrefix{
	"TXN": HP_TRANSACTION_ID,
	"SND": HP_TRANSACTION_NODE,
	"MLN": HP_LEAF_NODE,
	"MIN": HP_INNER_NODE,
	"LWR": HP_LEDGER_MASTER,
	"STX": HP_TRANSACTION_SIGN,
	"SMT": HP_TRANSACTION_MULTISIGN,
	"VAL": HP_VALIDATION,
	"PRP": HP_PROPOSAL,
	"MAN": HP_MANIFEST,
}

// ParseHashPrefix accepts a three letter prefix name.
func ParseHashPrefix(s string) (HashPrefix, error) {
	if p, ok := prefixNames[s]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown hash prefix %q", s)
}

func (h HashPrefix) String() string {
	return string(h.Bytes()[:3])
}

// Bytes returns the big endian encoding of h.
func (h HashPrefix) Bytes() []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(h))
	return b[:]
}

func toHash256(b []byte) Hash256 {
	var h Hash256
	copy(h[:], b)
	return h
}

// Hash returns SHA-512-Half of prefix followed by the canonical encoding.
func (r *Record) Hash(prefix HashPrefix) (Hash256, error) {
	s := serialize.NewSerializer()
	s.Add32(uint32(prefix))
	if err := r.Serialize(s); err != nil {
		return Hash256{}, err
	}
	return toHash256(crypto.Sha512Half(s.Bytes())), nil
}

// SigningData returns prefix followed by the encoding with skip left out.
// A nil skip leaves out every field the registry marks as not signing.
func (r *Record) SigningData(prefix HashPrefix, skip *sfield.Field) ([]byte, error) {
	s := serialize.NewSerializer()
	s.Add32(uint32(prefix))
	var err error
	if skip == nil {
		err = r.SerializeSigning(s)
	} else {
		err = r.SerializeWithout(s, skip)
	}
	if err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// SigningHash is the hash of SigningData.
func (r *Record) SigningHash(prefix HashPrefix, skip *sfield.Field) (Hash256, error) {
	b, err := r.SigningData(prefix, skip)
	if err != nil {
		return Hash256{}, err
	}
	return toHash256(crypto.Sha512Half(b)), nil
}

// TransactionID returns the identifying hash of a transaction record.
func (r *Record) TransactionID() (Hash256, error) {
	return r.Hash(HP_TRANSACTION_ID)
}
