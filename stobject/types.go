package stobject

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/anyswap/stobject/crypto"
	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

// unsigned integers
type (
	UInt8  uint8
	UInt16 uint16
	UInt32 uint32
	UInt64 uint64
)

// fixed width hashes
type (
	Hash128 [16]byte
	Hash160 [20]byte
	Hash256 [32]byte
)

// Blob is an opaque variable length byte string.
type Blob []byte

// AccountID is a 20 byte account identifier, rendered in base58.
type AccountID [20]byte

// Vector256 is an ordered list of 256 bit hashes.
type Vector256 []Hash256

func b2h(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func (UInt8) Type() sfield.SerializedType  { return sfield.ST_UINT8 }
func (UInt16) Type() sfield.SerializedType { return sfield.ST_UINT16 }
func (UInt32) Type() sfield.SerializedType { return sfield.ST_UINT32 }
func (UInt64) Type() sfield.SerializedType { return sfield.ST_UINT64 }

func (v UInt8) Serialize(s *serialize.Serializer) error  { s.Add8(uint8(v)); return nil }
func (v UInt16) Serialize(s *serialize.Serializer) error { s.Add16(uint16(v)); return nil }
func (v UInt32) Serialize(s *serialize.Serializer) error { s.Add32(uint32(v)); return nil }
func (v UInt64) Serialize(s *serialize.Serializer) error { s.Add64(uint64(v)); return nil }

func (v UInt8) Equal(o Value) bool  { w, ok := o.(UInt8); return ok && v == w }
func (v UInt16) Equal(o Value) bool { w, ok := o.(UInt16); return ok && v == w }
func (v UInt32) Equal(o Value) bool { w, ok := o.(UInt32); return ok && v == w }
func (v UInt64) Equal(o Value) bool { w, ok := o.(UInt64); return ok && v == w }

func (v UInt8) Text() string  { return strconv.FormatUint(uint64(v), 10) }
func (v UInt16) Text() string { return strconv.FormatUint(uint64(v), 10) }
func (v UInt32) Text() string { return strconv.FormatUint(uint64(v), 10) }
func (v UInt64) Text() string { return strconv.FormatUint(uint64(v), 10) }

func (v UInt8) JSON() interface{}  { return uint8(v) }
func (v UInt16) JSON() interface{} { return uint16(v) }
func (v UInt32) JSON() interface{} { return uint32(v) }

// JSON renders 64 bit integers as hex strings, since JSON numbers lose
// precision past 2^53.
func (v UInt64) JSON() interface{} { return fmt.Sprintf("%016X", uint64(v)) }

func (v UInt8) Clone() Value  { return v }
func (v UInt16) Clone() Value { return v }
func (v UInt32) Clone() Value { return v }
func (v UInt64) Clone() Value { return v }

func (v UInt8) IsDefault() bool  { return v == 0 }
func (v UInt16) IsDefault() bool { return v == 0 }
func (v UInt32) IsDefault() bool { return v == 0 }
func (v UInt64) IsDefault() bool { return v == 0 }

func (UInt8) isValue()  {}
func (UInt16) isValue() {}
func (UInt32) isValue() {}
func (UInt64) isValue() {}

func (Hash128) Type() sfield.SerializedType { return sfield.ST_HASH128 }
func (Hash160) Type() sfield.SerializedType { return sfield.ST_HASH160 }
func (Hash256) Type() sfield.SerializedType { return sfield.ST_HASH256 }

func (h Hash128) Serialize(s *serialize.Serializer) error { s.AddRaw(h[:]); return nil }
func (h Hash160) Serialize(s *serialize.Serializer) error { s.AddRaw(h[:]); return nil }
func (h Hash256) Serialize(s *serialize.Serializer) error { s.AddRaw(h[:]); return nil }

func (h Hash128) Equal(o Value) bool { w, ok := o.(Hash128); return ok && h == w }
func (h Hash160) Equal(o Value) bool { w, ok := o.(Hash160); return ok && h == w }
func (h Hash256) Equal(o Value) bool { w, ok := o.(Hash256); return ok && h == w }

func (h Hash128) Text() string { return b2h(h[:]) }
func (h Hash160) Text() string { return b2h(h[:]) }
func (h Hash256) Text() string { return b2h(h[:]) }

func (h Hash128) JSON() interface{} { return h.Text() }
func (h Hash160) JSON() interface{} { return h.Text() }
func (h Hash256) JSON() interface{} { return h.Text() }

func (h Hash128) Clone() Value { return h }
func (h Hash160) Clone() Value { return h }
func (h Hash256) Clone() Value { return h }

func (h Hash128) IsDefault() bool { return h == Hash128{} }
func (h Hash160) IsDefault() bool { return h == Hash160{} }
func (h Hash256) IsDefault() bool { return h == Hash256{} }

func (Hash128) isValue() {}
func (Hash160) isValue() {}
func (Hash256) isValue() {}

// String returns the upper case hex form of the hash.
func (h Hash256) String() string { return h.Text() }

// Bytes returns a copy of the hash as a slice.
func (h Hash256) Bytes() []byte {
	b := make([]byte, len(h))
	copy(b, h[:])
	return b
}

// NewHash256 parses a 64 character hex string.
func NewHash256(s string) (Hash256, error) {
	var h Hash256
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("bad hash256 length %d", len(b))
	}
	copy(h[:], b)
	return h, nil
}

func (Blob) Type() sfield.SerializedType { return sfield.ST_VL }

func (b Blob) Serialize(s *serialize.Serializer) error { return s.AddVL(b) }

func (b Blob) Equal(o Value) bool {
	w, ok := o.(Blob)
	return ok && bytes.Equal(b, w)
}

func (b Blob) Text() string      { return b2h(b) }
func (b Blob) JSON() interface{} { return b.Text() }
func (b Blob) IsDefault() bool   { return len(b) == 0 }
func (Blob) isValue()            {}

func (b Blob) Clone() Value {
	if b == nil {
		return Blob(nil)
	}
	return append(Blob{}, b...)
}

func (AccountID) Type() sfield.SerializedType { return sfield.ST_ACCOUNT }

// Serialize writes the account as a length prefixed 20 byte string.
func (a AccountID) Serialize(s *serialize.Serializer) error { return s.AddVL(a[:]) }

func (a AccountID) Equal(o Value) bool { w, ok := o.(AccountID); return ok && a == w }
func (a AccountID) Text() string       { return crypto.EncodeAccountID(a[:]) }
func (a AccountID) JSON() interface{}  { return a.Text() }
func (a AccountID) Clone() Value       { return a }
func (a AccountID) IsDefault() bool    { return a == AccountID{} }
func (AccountID) isValue()             {}

func (a AccountID) String() string { return a.Text() }

// NewAccountFromAddress decodes a base58 account address.
func NewAccountFromAddress(s string) (AccountID, error) {
	var a AccountID
	b, err := crypto.DecodeAccountID(s)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

// AccountFromPublicKey derives the account identifier of a public key.
func AccountFromPublicKey(pub []byte) AccountID {
	var a AccountID
	copy(a[:], crypto.Sha256RipeMD160(pub))
	return a
}

func (Vector256) Type() sfield.SerializedType { return sfield.ST_VECTOR256 }

// Serialize writes the hashes back to back behind a single length prefix.
func (v Vector256) Serialize(s *serialize.Serializer) error {
	b := make([]byte, 0, len(v)*32)
	for _, h := range v {
		b = append(b, h[:]...)
	}
	return s.AddVL(b)
}

func (v Vector256) Equal(o Value) bool {
	w, ok := o.(Vector256)
	if !ok || len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

func (v Vector256) Text() string {
	parts := make([]string, len(v))
	for i, h := range v {
		parts[i] = h.Text()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (v Vector256) JSON() interface{} {
	list := make([]interface{}, len(v))
	for i, h := range v {
		list[i] = h.Text()
	}
	return list
}

func (v Vector256) Clone() Value {
	if v == nil {
		return Vector256(nil)
	}
	return append(Vector256{}, v...)
}

func (v Vector256) IsDefault() bool { return len(v) == 0 }
func (Vector256) isValue()          {}
