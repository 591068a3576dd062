package stobject

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/anyswap/stobject/sfield"
)

// Text renders the present fields in canonical order as
// {Name = value, ...}.
func (r *Record) Text() string {
	entries := r.sortedPresent()
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.field.Name + " = " + fieldText(e.field, e.value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FullText is Text prefixed with the record's own name.
func (r *Record) FullText() string {
	return r.name.Name + " = " + r.Text()
}

func fieldText(f *sfield.Field, v Value) string {
	if name, ok := formatName(f, v); ok {
		return name
	}
	return v.Text()
}

// formatName names the value of a type discriminator field.
func formatName(f *sfield.Field, v Value) (string, bool) {
	code, ok := v.(UInt16)
	if !ok {
		return "", false
	}
	var formats *Formats
	switch f {
	case sfield.TransactionType:
		formats = TxFormats
	case sfield.LedgerEntryType:
		formats = LedgerFormats
	default:
		return "", false
	}
	if format, ok := formats.ByCode(uint16(code)); ok {
		return format.Name, true
	}
	return "", false
}

// JSON returns the record as a map keyed by field name.
func (r *Record) JSON() interface{} {
	m := make(map[string]interface{}, len(r.entries))
	for _, e := range r.sortedPresent() {
		if name, ok := formatName(e.field, e.value); ok {
			m[e.field.Name] = name
			continue
		}
		m[e.field.Name] = e.value.JSON()
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.JSON())
}

// MarshalIndent renders the record as indented JSON.
func (r *Record) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r.JSON(), "", "  ")
}
