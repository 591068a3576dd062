package stobject

import (
	"fmt"
	"sort"

	"github.com/anyswap/stobject/log"
	"github.com/anyswap/stobject/sfield"
)

// Mode says whether a record is bound to a template.
type Mode int

// record modes
const (
	// Free records accept any field.
	Free Mode = iota
	// Typed records only hold the fields their template allows.
	Typed
)

func (m Mode) String() string {
	if m == Typed {
		return "typed"
	}
	return "free"
}

type entry struct {
	field *sfield.Field
	value Value
}

// Record is an ordered collection of (field, value) entries. Entries keep
// insertion order; encoding and hashing always use canonical sort key order.
// A Record is not safe for concurrent mutation.
type Record struct {
	name     *sfield.Field
	mode     Mode
	template *Template
	entries  []entry
}

// NewRecord returns an empty free record. A nil name means sfield.Generic.
func NewRecord(name *sfield.Field) *Record {
	if name == nil {
		name = sfield.Generic
	}
	return &Record{name: name, mode: Free}
}

// NewTypedRecord returns a record bound to t. Required fields hold their
// type's default value and optional fields hold NotPresent.
func NewTypedRecord(t *Template, name *sfield.Field) *Record {
	r := NewRecord(name)
	r.mode = Typed
	r.template = t
	r.entries = make([]entry, 0, len(t.elements))
	for _, elem := range t.elements {
		var v Value = NotPresent{}
		if elem.Style == Required {
			v = DefaultValue(elem.Field)
		}
		r.entries = append(r.entries, entry{field: elem.Field, value: v})
	}
	return r
}

// Name returns the field the record is stored under.
func (r *Record) Name() *sfield.Field { return r.name }

// Mode returns whether the record is free or typed.
func (r *Record) Mode() Mode { return r.mode }

// IsFree reports whether the record has no template.
func (r *Record) IsFree() bool { return r.mode == Free }

// Template returns the bound template, nil for free records.
func (r *Record) Template() *Template { return r.template }

// Len returns the number of entries, placeholders included.
func (r *Record) Len() int { return len(r.entries) }

// FieldIndex returns the insertion position of f or -1.
func (r *Record) FieldIndex(f *sfield.Field) int {
	key := f.SortKey()
	for i := range r.entries {
		if r.entries[i].field.SortKey() == key {
			return i
		}
	}
	return -1
}

// FieldAt returns the field at position i.
func (r *Record) FieldAt(i int) *sfield.Field { return r.entries[i].field }

// ValueAt returns the value at position i.
func (r *Record) ValueAt(i int) Value { return r.entries[i].value }

// Each calls fn for every entry in insertion order, stopping at the first
// error.
func (r *Record) Each(fn func(f *sfield.Field, v Value) error) error {
	for _, e := range r.entries {
		if err := fn(e.field, e.value); err != nil {
			return err
		}
	}
	return nil
}

// Field returns the value stored for f, which may be NotPresent.
func (r *Record) Field(f *sfield.Field) (Value, error) {
	i := r.FieldIndex(f)
	if i < 0 {
		return nil, fieldError(ErrFieldNotFound, f, "")
	}
	return r.entries[i].value, nil
}

// IsFieldPresent reports whether f holds a real value.
func (r *Record) IsFieldPresent(f *sfield.Field) bool {
	i := r.FieldIndex(f)
	return i >= 0 && isPresent(r.entries[i].value)
}

func (r *Record) checkAllowed(f *sfield.Field) error {
	if r.mode == Typed && !r.template.IsFieldAllowed(f) {
		return &ValidationError{Template: r.template.name, Field: f, Reason: "is not allowed", Err: ErrFieldNotFound}
	}
	return nil
}

func checkType(f *sfield.Field, v Value) error {
	if v == nil {
		return fieldError(ErrTypeMismatch, f, "nil value")
	}
	if v.Type() != sfield.ST_NOTPRESENT && v.Type() != f.Type {
		return fieldError(ErrTypeMismatch, f, "want %s, got %s", f.Type, v.Type())
	}
	if a, ok := v.(Array); ok {
		for i, obj := range a {
			if obj == nil {
				return fieldError(ErrTypeMismatch, f, "nil element %d", i)
			}
		}
	}
	return nil
}

// Append adds an entry at the end and returns its position. Typed records
// only accept allowed fields that have no slot yet.
func (r *Record) Append(f *sfield.Field, v Value) (int, error) {
	if err := checkType(f, v); err != nil {
		return -1, err
	}
	if r.mode == Typed {
		if err := r.checkAllowed(f); err != nil {
			return -1, err
		}
		if r.FieldIndex(f) >= 0 {
			return -1, fieldError(ErrDuplicateField, f, "")
		}
	}
	r.entries = append(r.entries, entry{field: f, value: v})
	return len(r.entries) - 1, nil
}

// Set stores v under f, replacing an existing slot or appending a new one.
func (r *Record) Set(f *sfield.Field, v Value) error {
	if err := checkType(f, v); err != nil {
		return err
	}
	if err := r.checkAllowed(f); err != nil {
		return err
	}
	if i := r.FieldIndex(f); i >= 0 {
		r.entries[i].value = v
		return nil
	}
	r.entries = append(r.entries, entry{field: f, value: v})
	return nil
}

// Assign is the checked setter behind the typed setters. A missing slot is
// created only when create is true and the record is free. A slot holding
// NotPresent takes v as its materialized value.
func (r *Record) Assign(f *sfield.Field, v Value, create bool) error {
	if err := checkType(f, v); err != nil {
		return err
	}
	i := r.FieldIndex(f)
	if i < 0 {
		if !create || r.mode == Typed {
			return fieldError(ErrFieldNotFound, f, "")
		}
		r.entries = append(r.entries, entry{field: f, value: v})
		return nil
	}
	cur := r.entries[i].value
	if isPresent(cur) && cur.Type() != v.Type() {
		return fieldError(ErrTypeMismatch, f, "slot holds %s", cur.Type())
	}
	r.entries[i].value = v
	return nil
}

// SetPresent makes f hold a real value, materializing its default when the
// slot holds NotPresent. Free records gain a slot when f is missing.
func (r *Record) SetPresent(f *sfield.Field) (Value, error) {
	i := r.FieldIndex(f)
	if i < 0 {
		if r.mode == Typed {
			return nil, fieldError(ErrFieldNotFound, f, "")
		}
		v := DefaultValue(f)
		r.entries = append(r.entries, entry{field: f, value: v})
		return v, nil
	}
	if !isPresent(r.entries[i].value) {
		r.entries[i].value = DefaultValue(f)
	}
	return r.entries[i].value, nil
}

// SetAbsent replaces the value of f with NotPresent.
func (r *Record) SetAbsent(f *sfield.Field) error {
	i := r.FieldIndex(f)
	if i < 0 {
		return fieldError(ErrFieldNotFound, f, "")
	}
	r.entries[i].value = NotPresent{}
	return nil
}

// Delete removes the slot of f, reporting whether one existed.
func (r *Record) Delete(f *sfield.Field) bool {
	i := r.FieldIndex(f)
	if i < 0 {
		return false
	}
	return r.DeleteAt(i)
}

// DeleteAt removes the slot at position i.
func (r *Record) DeleteAt(i int) bool {
	if i < 0 || i >= len(r.entries) {
		return false
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return true
}

// HasMatchingEntry reports whether f is present and equal to v.
func (r *Record) HasMatchingEntry(f *sfield.Field, v Value) bool {
	i := r.FieldIndex(f)
	return i >= 0 && isPresent(r.entries[i].value) && r.entries[i].value.Equal(v)
}

// SetTemplate binds r to t. The entries are validated, reordered into
// template order and padded with NotPresent for absent optional fields.
// On failure r is left unchanged.
func (r *Record) SetTemplate(t *Template) error {
	if err := t.Validate(r); err != nil {
		log.Debug("record does not match template", "record", r.name, "template", t.name, "err", err)
		return err
	}
	entries := make([]entry, len(t.elements))
	for i, elem := range t.elements {
		if j := r.FieldIndex(elem.Field); j >= 0 {
			entries[i] = r.entries[j]
		} else {
			entries[i] = entry{field: elem.Field, value: NotPresent{}}
		}
	}
	r.entries = entries
	r.template = t
	r.mode = Typed
	return nil
}

// ClearTemplate turns r back into a free record, dropping placeholders.
func (r *Record) ClearTemplate() {
	entries := r.entries[:0]
	for _, e := range r.entries {
		if isPresent(e.value) {
			entries = append(entries, e)
		}
	}
	r.entries = entries
	r.template = nil
	r.mode = Free
}

// IsValidForType reports whether a typed record still matches its template
// slot for slot. Free records never do.
func (r *Record) IsValidForType() bool {
	if r.mode != Typed || len(r.entries) != len(r.template.elements) {
		return false
	}
	for i, elem := range r.template.elements {
		if r.entries[i].field != elem.Field {
			return false
		}
	}
	return r.template.Validate(r) == nil
}

// canonical returns the present entries in sort key order, failing when a
// field occurs twice.
func (r *Record) canonical() ([]entry, error) {
	out := r.sortedPresent()
	for i := 1; i < len(out); i++ {
		if out[i].field.SortKey() == out[i-1].field.SortKey() {
			return nil, fieldError(ErrDuplicateField, out[i].field, "")
		}
	}
	return out, nil
}

func (r *Record) sortedPresent() []entry {
	out := make([]entry, 0, len(r.entries))
	for _, e := range r.entries {
		if isPresent(e.value) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].field.Less(out[j].field)
	})
	return out
}

// Equal reports whether other is a record with the same present fields
// holding deeply equal values. Placeholders, insertion order, names and
// templates are ignored.
func (r *Record) Equal(other Value) bool {
	o, ok := other.(*Record)
	if !ok || o == nil {
		return false
	}
	if r == o {
		return true
	}
	a, b := r.sortedPresent(), o.sortedPresent()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].field.SortKey() != b[i].field.SortKey() || !a[i].value.Equal(b[i].value) {
			return false
		}
	}
	return true
}

// IsEquivalent is Equal restricted to records.
func (r *Record) IsEquivalent(o *Record) bool {
	return o != nil && r.Equal(o)
}

// Clone returns a deep copy sharing only the immutable template.
func (r *Record) Clone() Value {
	return r.Copy()
}

// Copy is Clone with a concrete result type.
func (r *Record) Copy() *Record {
	c := &Record{name: r.name, mode: r.mode, template: r.template, entries: make([]entry, len(r.entries))}
	for i, e := range r.entries {
		c.entries[i] = entry{field: e.field, value: e.value.Clone()}
	}
	return c
}

// IsDefault reports whether the record holds no present field.
func (r *Record) IsDefault() bool {
	for _, e := range r.entries {
		if isPresent(e.value) {
			return false
		}
	}
	return true
}

func (*Record) Type() sfield.SerializedType { return sfield.ST_OBJECT }
func (*Record) isValue()                    {}

func (r *Record) String() string {
	return fmt.Sprintf("%s%s", r.name, r.Text())
}
