package stobject

import (
	"strings"

	"github.com/anyswap/stobject/serialize"
	"github.com/anyswap/stobject/sfield"
)

// Array is an ordered list of inner objects. Each element is written under
// its own name, so the names must be object fields.
type Array []*Record

func (Array) Type() sfield.SerializedType { return sfield.ST_ARRAY }
func (Array) isValue()                    {}

// Serialize writes every element as header, fields and end-of-object
// marker. The closing end-of-array marker belongs to the enclosing record.
func (a Array) Serialize(s *serialize.Serializer) error {
	for _, obj := range a {
		if err := writeField(s, obj.name, obj); err != nil {
			return err
		}
	}
	return nil
}

func (a Array) Equal(o Value) bool {
	w, ok := o.(Array)
	if !ok || len(a) != len(w) {
		return false
	}
	for i := range a {
		if a[i].name.SortKey() != w[i].name.SortKey() || !a[i].Equal(w[i]) {
			return false
		}
	}
	return true
}

func (a Array) Text() string {
	parts := make([]string, len(a))
	for i, obj := range a {
		parts[i] = obj.FullText()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a Array) JSON() interface{} {
	list := make([]interface{}, len(a))
	for i, obj := range a {
		list[i] = map[string]interface{}{obj.name.Name: obj.JSON()}
	}
	return list
}

func (a Array) Clone() Value {
	if a == nil {
		return Array(nil)
	}
	c := make(Array, len(a))
	for i, obj := range a {
		c[i] = obj.Copy()
	}
	return c
}

func (a Array) IsDefault() bool { return len(a) == 0 }
