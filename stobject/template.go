package stobject

import (
	"fmt"
	"sort"

	"github.com/anyswap/stobject/sfield"
)

// Style says whether a template element must be present.
type Style int

// element styles
const (
	Required Style = iota
	Optional
)

func (s Style) String() string {
	if s == Required {
		return "required"
	}
	return "optional"
}

// Element is one allowed field of a template.
type Element struct {
	Field *sfield.Field
	Style Style
}

// Req and Opt build template elements.
func Req(f *sfield.Field) Element { return Element{Field: f, Style: Required} }
func Opt(f *sfield.Field) Element { return Element{Field: f, Style: Optional} }

// Template is an immutable schema naming the fields a record of some kind
// may or must carry. Elements are kept in sort key order.
type Template struct {
	name     string
	elements []Element
	index    map[sfield.SortKey]int
}

// NewTemplate builds a template, failing with ErrDuplicateField when a
// field is listed twice.
func NewTemplate(name string, elements ...Element) (*Template, error) {
	t := &Template{
		name:     name,
		elements: make([]Element, 0, len(elements)),
		index:    make(map[sfield.SortKey]int, len(elements)),
	}
	for _, e := range elements {
		if e.Field == nil {
			return nil, fmt.Errorf("template %s: nil field", name)
		}
		if _, exist := t.index[e.Field.SortKey()]; exist {
			return nil, fmt.Errorf("%w: template %s lists %s twice", ErrDuplicateField, name, e.Field)
		}
		t.index[e.Field.SortKey()] = -1
		t.elements = append(t.elements, e)
	}
	sort.SliceStable(t.elements, func(i, j int) bool {
		return t.elements[i].Field.Less(t.elements[j].Field)
	})
	for i, e := range t.elements {
		t.index[e.Field.SortKey()] = i
	}
	return t, nil
}

// MustTemplate is NewTemplate that panics on error.
func MustTemplate(name string, elements ...Element) *Template {
	t, err := NewTemplate(name, elements...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the template name.
func (t *Template) Name() string { return t.name }

// Len returns the number of elements.
func (t *Template) Len() int { return len(t.elements) }

// Elements returns a copy of the elements in sort key order.
func (t *Template) Elements() []Element {
	return append([]Element(nil), t.elements...)
}

// Index returns the position of f in the template or -1.
func (t *Template) Index(f *sfield.Field) int {
	if i, ok := t.index[f.SortKey()]; ok {
		return i
	}
	return -1
}

// IsFieldAllowed reports whether f is one of the template's elements.
func (t *Template) IsFieldAllowed(f *sfield.Field) bool {
	return t.Index(f) >= 0
}

// Style returns the style of f, which must be allowed.
func (t *Template) Style(f *sfield.Field) (Style, bool) {
	i := t.Index(f)
	if i < 0 {
		return Optional, false
	}
	return t.elements[i].Style, true
}

// Extend returns a new template holding t's elements plus extra.
func (t *Template) Extend(name string, extra ...Element) (*Template, error) {
	return NewTemplate(name, append(t.Elements(), extra...)...)
}

// Validate checks that every present field of r is allowed, carries the
// declared wire type and appears once, and that every required field is
// present.
// The first violation is returned as a *ValidationError.
func (t *Template) Validate(r *Record) error {
	seen := make(map[sfield.SortKey]bool, len(r.entries))
	for _, e := range r.entries {
		key := e.field.SortKey()
		if !t.IsFieldAllowed(e.field) {
			if !isPresent(e.value) {
				// leftover placeholder of a previous template
				continue
			}
			return &ValidationError{Template: t.name, Field: e.field, Reason: "is not allowed", Err: ErrFieldNotFound}
		}
		if seen[key] {
			return &ValidationError{Template: t.name, Field: e.field, Reason: "appears twice", Err: ErrDuplicateField}
		}
		seen[key] = true
		if isPresent(e.value) && e.value.Type() != e.field.Type {
			return &ValidationError{
				Template: t.name,
				Field:    e.field,
				Reason:   fmt.Sprintf("holds %s", e.value.Type()),
				Err:      ErrTypeMismatch,
			}
		}
	}
	for _, elem := range t.elements {
		if elem.Style != Required {
			continue
		}
		i := r.FieldIndex(elem.Field)
		if i < 0 || !isPresent(r.entries[i].value) {
			return &ValidationError{Template: t.name, Field: elem.Field, Reason: "is required", Err: ErrFieldNotFound}
		}
	}
	return nil
}
