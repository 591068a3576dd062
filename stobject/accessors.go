package stobject

import (
	"github.com/anyswap/stobject/sfield"
)

// lookup returns the stored value of f checked against want. A NotPresent
// slot yields a nil value and no error so callers return the default.
func (r *Record) lookup(f *sfield.Field, want sfield.SerializedType) (Value, error) {
	i := r.FieldIndex(f)
	if i < 0 {
		return nil, fieldError(ErrFieldNotFound, f, "")
	}
	v := r.entries[i].value
	if !isPresent(v) {
		return nil, nil
	}
	if v.Type() != want {
		return nil, fieldError(ErrTypeMismatch, f, "want %s, got %s", want, v.Type())
	}
	return v, nil
}

func (r *Record) GetU8(f *sfield.Field) (uint8, error) {
	v, err := r.lookup(f, sfield.ST_UINT8)
	if v == nil {
		return 0, err
	}
	return uint8(v.(UInt8)), nil
}

func (r *Record) GetU16(f *sfield.Field) (uint16, error) {
	v, err := r.lookup(f, sfield.ST_UINT16)
	if v == nil {
		return 0, err
	}
	return uint16(v.(UInt16)), nil
}

func (r *Record) GetU32(f *sfield.Field) (uint32, error) {
	v, err := r.lookup(f, sfield.ST_UINT32)
	if v == nil {
		return 0, err
	}
	return uint32(v.(UInt32)), nil
}

func (r *Record) GetU64(f *sfield.Field) (uint64, error) {
	v, err := r.lookup(f, sfield.ST_UINT64)
	if v == nil {
		return 0, err
	}
	return uint64(v.(UInt64)), nil
}

func (r *Record) GetH128(f *sfield.Field) (Hash128, error) {
	v, err := r.lookup(f, sfield.ST_HASH128)
	if v == nil {
		return Hash128{}, err
	}
	return v.(Hash128), nil
}

func (r *Record) GetH160(f *sfield.Field) (Hash160, error) {
	v, err := r.lookup(f, sfield.ST_HASH160)
	if v == nil {
		return Hash160{}, err
	}
	return v.(Hash160), nil
}

func (r *Record) GetH256(f *sfield.Field) (Hash256, error) {
	v, err := r.lookup(f, sfield.ST_HASH256)
	if v == nil {
		return Hash256{}, err
	}
	return v.(Hash256), nil
}

// GetVL returns a copy of a variable length field.
func (r *Record) GetVL(f *sfield.Field) ([]byte, error) {
	v, err := r.lookup(f, sfield.ST_VL)
	if v == nil {
		return nil, err
	}
	return []byte(v.Clone().(Blob)), nil
}

func (r *Record) GetAccount(f *sfield.Field) (AccountID, error) {
	v, err := r.lookup(f, sfield.ST_ACCOUNT)
	if v == nil {
		return AccountID{}, err
	}
	return v.(AccountID), nil
}

// GetAmount returns the amount of f; an absent amount is native zero.
func (r *Record) GetAmount(f *sfield.Field) (Amount, error) {
	v, err := r.lookup(f, sfield.ST_AMOUNT)
	if v == nil {
		return Amount{native: true}, err
	}
	return v.(Amount), nil
}

func (r *Record) GetPathSet(f *sfield.Field) (PathSet, error) {
	v, err := r.lookup(f, sfield.ST_PATHSET)
	if v == nil {
		return nil, err
	}
	return v.Clone().(PathSet), nil
}

func (r *Record) GetV256(f *sfield.Field) (Vector256, error) {
	v, err := r.lookup(f, sfield.ST_VECTOR256)
	if v == nil {
		return nil, err
	}
	return v.Clone().(Vector256), nil
}

// GetArray returns a deep copy of an array field.
func (r *Record) GetArray(f *sfield.Field) (Array, error) {
	v, err := r.lookup(f, sfield.ST_ARRAY)
	if v == nil {
		return nil, err
	}
	return v.Clone().(Array), nil
}

// GetObject returns a deep copy of an inner object field. An absent object
// is an empty record named f.
func (r *Record) GetObject(f *sfield.Field) (*Record, error) {
	v, err := r.lookup(f, sfield.ST_OBJECT)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return NewRecord(f), nil
	}
	return v.(*Record).Copy(), nil
}

// PeekObject returns the stored inner object of f for in place mutation,
// materializing it when absent.
func (r *Record) PeekObject(f *sfield.Field) (*Record, error) {
	if f.Type != sfield.ST_OBJECT {
		return nil, fieldError(ErrTypeMismatch, f, "not an object field")
	}
	v, err := r.Field(f)
	if err != nil {
		if r.mode == Typed {
			return nil, err
		}
		v = NotPresent{}
	}
	if !isPresent(v) {
		if v, err = r.SetPresent(f); err != nil {
			return nil, err
		}
	}
	obj, ok := v.(*Record)
	if !ok {
		return nil, fieldError(ErrTypeMismatch, f, "slot holds %s", v.Type())
	}
	return obj, nil
}

// The setters below create a missing slot in free records and materialize
// NotPresent slots. Use Assign to forbid creation.

func (r *Record) SetU8(f *sfield.Field, v uint8) error   { return r.Assign(f, UInt8(v), true) }
func (r *Record) SetU16(f *sfield.Field, v uint16) error { return r.Assign(f, UInt16(v), true) }
func (r *Record) SetU32(f *sfield.Field, v uint32) error { return r.Assign(f, UInt32(v), true) }
func (r *Record) SetU64(f *sfield.Field, v uint64) error { return r.Assign(f, UInt64(v), true) }

func (r *Record) SetH128(f *sfield.Field, v Hash128) error { return r.Assign(f, v, true) }
func (r *Record) SetH160(f *sfield.Field, v Hash160) error { return r.Assign(f, v, true) }
func (r *Record) SetH256(f *sfield.Field, v Hash256) error { return r.Assign(f, v, true) }

// SetVL stores a copy of v.
func (r *Record) SetVL(f *sfield.Field, v []byte) error {
	return r.Assign(f, Blob(v).Clone(), true)
}

func (r *Record) SetAccount(f *sfield.Field, v AccountID) error { return r.Assign(f, v, true) }
func (r *Record) SetAmount(f *sfield.Field, v Amount) error     { return r.Assign(f, v, true) }
func (r *Record) SetPathSet(f *sfield.Field, v PathSet) error   { return r.Assign(f, v, true) }
func (r *Record) SetV256(f *sfield.Field, v Vector256) error    { return r.Assign(f, v, true) }
func (r *Record) SetArray(f *sfield.Field, v Array) error       { return r.Assign(f, v, true) }

// SetObject stores v under f. The stored record is renamed to f.
func (r *Record) SetObject(f *sfield.Field, v *Record) error {
	if v == nil {
		return fieldError(ErrTypeMismatch, f, "nil object")
	}
	c := v.Copy()
	c.name = f
	return r.Assign(f, c, true)
}

// Flags returns the Flags field, zero when absent.
func (r *Record) Flags() uint32 {
	flags, _ := r.GetU32(sfield.Flags)
	return flags
}

// IsFlag reports whether every bit of mask is set in Flags.
func (r *Record) IsFlag(mask uint32) bool {
	return r.Flags()&mask == mask
}

// SetFlag sets the bits of mask, reporting false when Flags cannot be held.
func (r *Record) SetFlag(mask uint32) bool {
	return r.SetU32(sfield.Flags, r.Flags()|mask) == nil
}

// ClearFlag clears the bits of mask.
func (r *Record) ClearFlag(mask uint32) bool {
	return r.SetU32(sfield.Flags, r.Flags()&^mask) == nil
}
