package stobject

import (
	"errors"
	"fmt"

	"github.com/anyswap/stobject/log"
	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

// DefaultMaxDepth bounds the nesting of decoded objects and arrays.
const DefaultMaxDepth = 10

var (
	errMissingEndOfObject = errors.New("missing end of object marker")
	errMissingEndOfArray  = errors.New("missing end of array marker")
	errStrayEndOfArray    = errors.New("end of array marker inside object")
	errStrayEndOfObject   = errors.New("end of object marker outside object")
	errNonObjectInArray   = errors.New("non object in array")
)

func writeField(s *serialize.Serializer, f *sfield.Field, v Value) error {
	if err := s.AddFieldID(int(f.Type), f.Code); err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}
	if err := v.Serialize(s); err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}
	switch f.Type {
	case sfield.ST_OBJECT:
		return s.AddFieldID(int(sfield.ST_OBJECT), 1)
	case sfield.ST_ARRAY:
		return s.AddFieldID(int(sfield.ST_ARRAY), 1)
	}
	return nil
}

func (r *Record) serializeFields(s *serialize.Serializer, skip func(*sfield.Field) bool) error {
	entries, err := r.canonical()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.field.IsBinary() || (skip != nil && skip(e.field)) {
			continue
		}
		if e.field.Type == sfield.ST_ARRAY {
			for _, obj := range e.value.(Array) {
				if obj.name.Type != sfield.ST_OBJECT {
					return fieldError(ErrTypeMismatch, e.field, "array element %s is not an object field", obj.name)
				}
			}
		}
		if err := writeField(s, e.field, e.value); err != nil {
			return err
		}
	}
	return nil
}

// Serialize writes the canonical encoding of r: present fields in sort key
// order, inner objects and arrays closed by their end markers.
func (r *Record) Serialize(s *serialize.Serializer) error {
	return r.serializeFields(s, nil)
}

// SerializeWithout writes the canonical encoding with the slot of skip left
// out. The record itself is not modified.
func (r *Record) SerializeWithout(s *serialize.Serializer, skip *sfield.Field) error {
	key := skip.SortKey()
	return r.serializeFields(s, func(f *sfield.Field) bool { return f.SortKey() == key })
}

// SerializeSigning writes the canonical encoding without the fields the
// registry marks as not signing.
func (r *Record) SerializeSigning(s *serialize.Serializer) error {
	return r.serializeFields(s, func(f *sfield.Field) bool { return !f.IsSigning() })
}

// SerializeVL writes the canonical encoding behind a length prefix, the
// form records take when nested in node blobs.
func (r *Record) SerializeVL(s *serialize.Serializer) error {
	inner := serialize.NewSerializer()
	if err := r.Serialize(inner); err != nil {
		return err
	}
	return s.AddVL(inner.Bytes())
}

// Bytes returns the canonical encoding of r.
func (r *Record) Bytes() ([]byte, error) {
	s := serialize.NewSerializer()
	if err := r.Serialize(s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// Decoder turns canonical encodings back into records.
type Decoder struct {
	// Registry resolves field headers.
	Registry *sfield.Registry
	// MaxDepth bounds nesting, the top level record is depth zero.
	MaxDepth int
	// Inner, when set, returns the template applied to a decoded inner
	// object of the given name.
	Inner func(name *sfield.Field) *Template
}

// NewDecoder returns a decoder over the default registry that applies the
// standard inner object templates.
func NewDecoder() *Decoder {
	return &Decoder{Registry: sfield.Default, MaxDepth: DefaultMaxDepth, Inner: InnerTemplate}
}

// Decode decodes b with a default decoder. A nil template yields a free
// record, otherwise the result is bound to t.
func Decode(b []byte, t *Template) (*Record, error) {
	return NewDecoder().Decode(b, t)
}

// Decode decodes the whole of b as one top level record.
func (d *Decoder) Decode(b []byte, t *Template) (*Record, error) {
	return d.DecodeFrom(serialize.NewSerialIter(b), sfield.Generic, t)
}

// DecodeVL decodes a length prefixed record from it.
func (d *Decoder) DecodeVL(it *serialize.SerialIter, t *Template) (*Record, error) {
	b, err := it.GetVL()
	if err != nil {
		return nil, malformed(nil, err)
	}
	return d.Decode(b, t)
}

// DecodeFrom consumes it to the end as a record called name.
func (d *Decoder) DecodeFrom(it *serialize.SerialIter, name *sfield.Field, t *Template) (*Record, error) {
	r := NewRecord(name)
	end, err := d.readObject(it, r, 0)
	if err != nil {
		log.Debug("decode record failed", "name", name, "offset", it.Pos(), "err", err)
		return nil, err
	}
	if end {
		return nil, malformed(nil, errStrayEndOfObject)
	}
	if t != nil {
		if err := r.SetTemplate(t); err != nil {
			return nil, malformed(nil, err)
		}
	}
	return r, nil
}

func (d *Decoder) field(typ, code int) (*sfield.Field, error) {
	f, ok := d.Registry.ByCode(sfield.SerializedType(typ), code)
	if !ok {
		log.Warn("unknown field in encoding", "type", typ, "code", code)
		return nil, fmt.Errorf("%w: type %d code %d", ErrUnknownField, typ, code)
	}
	return f, nil
}

// readObject reads fields into r until it is exhausted or an end of object
// marker is consumed, reporting which of the two happened.
func (d *Decoder) readObject(it *serialize.SerialIter, r *Record, depth int) (bool, error) {
	for !it.Empty() {
		typ, code, err := it.GetFieldID()
		if err != nil {
			return false, malformed(nil, err)
		}
		switch {
		case typ == int(sfield.ST_OBJECT) && code == 1:
			return true, nil
		case typ == int(sfield.ST_ARRAY) && code == 1:
			return false, malformed(nil, errStrayEndOfArray)
		}
		f, err := d.field(typ, code)
		if err != nil {
			return false, err
		}
		if r.FieldIndex(f) >= 0 {
			return false, malformed(f, ErrDuplicateField)
		}
		v, err := d.readValue(it, f, depth)
		if err != nil {
			return false, err
		}
		r.entries = append(r.entries, entry{field: f, value: v})
	}
	return false, nil
}

func (d *Decoder) readInner(it *serialize.SerialIter, name *sfield.Field, depth int) (*Record, error) {
	if depth > d.MaxDepth {
		return nil, fmt.Errorf("%w: %s at depth %d", ErrDepthExceeded, name, depth)
	}
	obj := NewRecord(name)
	end, err := d.readObject(it, obj, depth)
	if err != nil {
		return nil, err
	}
	if !end {
		return nil, malformed(name, errMissingEndOfObject)
	}
	if d.Inner != nil {
		if t := d.Inner(name); t != nil {
			if err := obj.SetTemplate(t); err != nil {
				return nil, malformed(name, err)
			}
		}
	}
	return obj, nil
}

func (d *Decoder) readArray(it *serialize.SerialIter, name *sfield.Field, depth int) (Array, error) {
	if depth > d.MaxDepth {
		return nil, fmt.Errorf("%w: %s at depth %d", ErrDepthExceeded, name, depth)
	}
	a := Array{}
	for {
		if it.Empty() {
			return nil, malformed(name, errMissingEndOfArray)
		}
		typ, code, err := it.GetFieldID()
		if err != nil {
			return nil, malformed(name, err)
		}
		switch {
		case typ == int(sfield.ST_ARRAY) && code == 1:
			return a, nil
		case typ == int(sfield.ST_OBJECT) && code == 1:
			return nil, malformed(name, errStrayEndOfObject)
		}
		f, err := d.field(typ, code)
		if err != nil {
			return nil, err
		}
		if f.Type != sfield.ST_OBJECT {
			return nil, malformed(f, errNonObjectInArray)
		}
		obj, err := d.readInner(it, f, depth+1)
		if err != nil {
			return nil, err
		}
		a = append(a, obj)
	}
}

func (d *Decoder) readValue(it *serialize.SerialIter, f *sfield.Field, depth int) (Value, error) {
	switch f.Type {
	case sfield.ST_OBJECT:
		return d.readInner(it, f, depth+1)
	case sfield.ST_ARRAY:
		return d.readArray(it, f, depth+1)
	}
	v, err := readScalar(it, f)
	if err != nil {
		return nil, malformed(f, err)
	}
	return v, nil
}

func readScalar(it *serialize.SerialIter, f *sfield.Field) (Value, error) {
	switch f.Type {
	case sfield.ST_UINT8:
		v, err := it.Get8()
		return UInt8(v), err
	case sfield.ST_UINT16:
		v, err := it.Get16()
		return UInt16(v), err
	case sfield.ST_UINT32:
		v, err := it.Get32()
		return UInt32(v), err
	case sfield.ST_UINT64:
		v, err := it.Get64()
		return UInt64(v), err
	case sfield.ST_HASH128:
		var h Hash128
		err := it.GetInto(h[:])
		return h, err
	case sfield.ST_HASH160:
		var h Hash160
		err := it.GetInto(h[:])
		return h, err
	case sfield.ST_HASH256:
		var h Hash256
		err := it.GetInto(h[:])
		return h, err
	case sfield.ST_VL:
		b, err := it.GetVL()
		return Blob(b), err
	case sfield.ST_ACCOUNT:
		var a AccountID
		b, err := it.GetVL()
		if err != nil {
			return nil, err
		}
		if len(b) != len(a) {
			return nil, fmt.Errorf("%w: account of %d bytes", serialize.ErrBadLength, len(b))
		}
		copy(a[:], b)
		return a, nil
	case sfield.ST_AMOUNT:
		return decodeAmount(it)
	case sfield.ST_PATHSET:
		return decodePathSet(it)
	case sfield.ST_VECTOR256:
		b, err := it.GetVL()
		if err != nil {
			return nil, err
		}
		if len(b)%32 != 0 {
			return nil, fmt.Errorf("%w: vector256 of %d bytes", serialize.ErrBadLength, len(b))
		}
		v := make(Vector256, len(b)/32)
		for i := range v {
			copy(v[i][:], b[i*32:])
		}
		return v, nil
	default:
		return nil, fmt.Errorf("cannot decode %s", f.Type)
	}
}
