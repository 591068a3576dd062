// Package sfield holds the catalog of named ledger fields. Every field has a
// wire type and a field code; together they form the sort key that fixes the
// canonical field order and the header written in front of each field.
package sfield

import (
	"errors"
	"fmt"
)

// SerializedType is the closed set of wire types.
type SerializedType int

// Wire types, values come from the network's serialized type ordinals.
const (
	ST_NOTPRESENT SerializedType = 0
	ST_UINT16     SerializedType = 1
	ST_UINT32     SerializedType = 2
	ST_UINT64     SerializedType = 3
	ST_HASH128    SerializedType = 4
	ST_HASH256    SerializedType = 5
	ST_AMOUNT     SerializedType = 6
	ST_VL         SerializedType = 7
	ST_ACCOUNT    SerializedType = 8
	ST_OBJECT     SerializedType = 14
	ST_ARRAY      SerializedType = 15
	ST_UINT8      SerializedType = 16
	ST_HASH160    SerializedType = 17
	ST_PATHSET    SerializedType = 18
	ST_VECTOR256  SerializedType = 19
)

var typeNames = map[SerializedType]string{
	ST_NOTPRESENT: "NotPresent",
	ST_UINT16:     "UInt16",
	ST_UINT32:     "UInt32",
	ST_UINT64:     "UInt64",
	ST_HASH128:    "Hash128",
	ST_HASH256:    "Hash256",
	ST_AMOUNT:     "Amount",
	ST_VL:         "Blob",
	ST_ACCOUNT:    "AccountID",
	ST_OBJECT:     "STObject",
	ST_ARRAY:      "STArray",
	ST_UINT8:      "UInt8",
	ST_HASH160:    "Hash160",
	ST_PATHSET:    "PathSet",
	ST_VECTOR256:  "Vector256",
}

func (t SerializedType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SerializedType(%d)", int(t))
}

// Valid reports whether t belongs to the wire type enumeration.
func (t SerializedType) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// registry errors
var (
	ErrDuplicateKey   = errors.New("duplicate field sort key")
	ErrRegistrySealed = errors.New("field registry is sealed")
	ErrInvalidField   = errors.New("invalid field definition")
)

// SortKey orders fields canonically: type ordinal first, field code second.
type SortKey uint32

// NewSortKey packs a type ordinal and a field code.
func NewSortKey(typ SerializedType, code int) SortKey {
	return SortKey(uint32(typ)<<16 | uint32(code))
}

// Type returns the type ordinal half of the key.
func (k SortKey) Type() SerializedType {
	return SerializedType(k >> 16)
}

// Code returns the field code half of the key.
func (k SortKey) Code() int {
	return int(k & 0xffff)
}

func (k SortKey) String() string {
	return fmt.Sprintf("%d:%d", int(k.Type()), k.Code())
}

// Field describes one named field. Fields are created by a Registry and
// compared by pointer or by sort key, never copied.
type Field struct {
	Name string
	Type SerializedType
	Code int

	key        SortKey
	notSigning bool
}

// SortKey returns the canonical ordering key of f.
func (f *Field) SortKey() SortKey {
	return f.key
}

// IsSigning reports whether f takes part in the signing encoding.
func (f *Field) IsSigning() bool {
	return !f.notSigning
}

// IsMarker reports whether f is an end-of-object or end-of-array marker.
func (f *Field) IsMarker() bool {
	return (f.Type == ST_OBJECT || f.Type == ST_ARRAY) && f.Code == 1
}

// IsBinary reports whether f can be written to the wire.
func (f *Field) IsBinary() bool {
	return f.Type != ST_NOTPRESENT && f.Code > 0 && f.Code < 256
}

func (f *Field) String() string {
	if f == nil {
		return "<nil field>"
	}
	return f.Name
}

// Less orders fields canonically.
func (f *Field) Less(other *Field) bool {
	return f.key < other.key
}
