package sfield

import (
	"fmt"
	"sort"
)

// Registry maps names and sort keys to fields. It is populated once and then
// sealed; a sealed registry is read only and may be shared between goroutines
// without locking.
type Registry struct {
	byName map[string]*Field
	byKey  map[SortKey]*Field
	fields []*Field
	sealed bool
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Field),
		byKey:  make(map[SortKey]*Field),
	}
}

// Option adjusts a field at registration.
type Option func(*Field)

// NotSigning excludes the field from signing encodings.
func NotSigning() Option {
	return func(f *Field) { f.notSigning = true }
}

// Register adds a field. Registering an identical definition again returns the
// existing field; any other collision on name or sort key is rejected.
func (r *Registry) Register(name string, typ SerializedType, code int, opts ...Option) (*Field, error) {
	if name == "" || !typ.Valid() || code < 0 || code > 0xffff {
		return nil, fmt.Errorf("%w: %q type %v code %d", ErrInvalidField, name, typ, code)
	}
	key := NewSortKey(typ, code)
	def := Field{Name: name, Type: typ, Code: code, key: key}
	for _, opt := range opts {
		opt(&def)
	}
	if existing, ok := r.byKey[key]; ok {
		if existing.Name == name && existing.notSigning == def.notSigning {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %v already registered as %s", ErrDuplicateKey, key, existing.Name)
	}
	if existing, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: name %s already registered as %v", ErrDuplicateKey, name, existing.key)
	}
	if r.sealed {
		return nil, fmt.Errorf("%w: cannot add %s", ErrRegistrySealed, name)
	}
	f := &def
	r.byName[name] = f
	r.byKey[key] = f
	r.fields = append(r.fields, f)
	return f, nil
}

// MustRegister is Register for package initialisation, it panics on error.
func (r *Registry) MustRegister(name string, typ SerializedType, code int, opts ...Option) *Field {
	f, err := r.Register(name, typ, code, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Seal freezes the registry.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether the registry is frozen.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// ByName looks a field up by its name.
func (r *Registry) ByName(name string) (*Field, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// BySortKey looks a field up by its sort key.
func (r *Registry) BySortKey(key SortKey) (*Field, bool) {
	f, ok := r.byKey[key]
	return f, ok
}

// ByCode looks a field up by the pair read from a field header.
func (r *Registry) ByCode(typ SerializedType, code int) (*Field, bool) {
	return r.BySortKey(NewSortKey(typ, code))
}

// Fields returns every registered field in canonical order.
func (r *Registry) Fields() []*Field {
	fields := make([]*Field, len(r.fields))
	copy(fields, r.fields)
	sort.Slice(fields, func(i, j int) bool { return fields[i].key < fields[j].key })
	return fields
}

// Len returns the number of registered fields.
func (r *Registry) Len() int {
	return len(r.fields)
}
