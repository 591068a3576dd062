package stobject

import (
	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

// Value is the capability shared by every field variant. The set of
// implementations is closed: one per wire type, all in this package.
type Value interface {
	// Type returns the wire type tag of the variant.
	Type() sfield.SerializedType
	// Serialize writes the body of the value, without a field header.
	Serialize(s *serialize.Serializer) error
	// Equal reports deep structural equality.
	Equal(other Value) bool
	// Text renders the value for humans.
	Text() string
	// JSON returns a tree ready for JSON marshalling.
	JSON() interface{}
	// Clone returns a deep copy.
	Clone() Value
	// IsDefault reports whether the value equals its type's default.
	IsDefault() bool

	isValue()
}

// NotPresent marks an optional field that the template allows but that is
// currently absent. It is never serialized.
type NotPresent struct{}

func (NotPresent) Type() sfield.SerializedType           { return sfield.ST_NOTPRESENT }
func (NotPresent) Serialize(*serialize.Serializer) error { return nil }
func (NotPresent) Text() string                          { return "" }
func (NotPresent) JSON() interface{}                     { return nil }
func (NotPresent) Clone() Value                          { return NotPresent{} }
func (NotPresent) IsDefault() bool                       { return true }
func (NotPresent) isValue()                              {}

func (NotPresent) Equal(other Value) bool {
	_, ok := other.(NotPresent)
	return ok
}

func isPresent(v Value) bool {
	return v != nil && v.Type() != sfield.ST_NOTPRESENT
}

// DefaultValue returns the default of f's wire type: zero integers and
// hashes, empty blobs and collections, a native zero amount and an empty
// record named f.
func DefaultValue(f *sfield.Field) Value {
	switch f.Type {
	case sfield.ST_UINT8:
		return UInt8(0)
	case sfield.ST_UINT16:
		return UInt16(0)
	case sfield.ST_UINT32:
		return UInt32(0)
	case sfield.ST_UINT64:
		return UInt64(0)
	case sfield.ST_HASH128:
		return Hash128{}
	case sfield.ST_HASH160:
		return Hash160{}
	case sfield.ST_HASH256:
		return Hash256{}
	case sfield.ST_VL:
		return Blob(nil)
	case sfield.ST_ACCOUNT:
		return AccountID{}
	case sfield.ST_AMOUNT:
		return Amount{native: true}
	case sfield.ST_PATHSET:
		return PathSet(nil)
	case sfield.ST_VECTOR256:
		return Vector256(nil)
	case sfield.ST_OBJECT:
		return NewRecord(f)
	case sfield.ST_ARRAY:
		return Array(nil)
	default:
		return NotPresent{}
	}
}
