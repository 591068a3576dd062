// Package serialize implements the byte level primitives of the canonical
// ledger encoding: big-endian fixed width integers, variable length prefixes
// and packed field identifiers.
package serialize

import (
	"encoding/binary"
	"fmt"
)

// MaxVLLength is the largest blob a variable length prefix can describe.
const MaxVLLength = 918744

// Serializer accumulates a canonical encoding in memory.
type Serializer struct {
	data []byte
}

// NewSerializer returns an empty serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// NewSerializerSize returns an empty serializer with capacity preallocated.
func NewSerializerSize(n int) *Serializer {
	return &Serializer{data: make([]byte, 0, n)}
}

// Add8 appends one byte.
func (s *Serializer) Add8(v uint8) {
	s.data = append(s.data, v)
}

// Add16 appends a big-endian uint16.
func (s *Serializer) Add16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	s.data = append(s.data, b[:]...)
}

// Add32 appends a big-endian uint32.
func (s *Serializer) Add32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	s.data = append(s.data, b[:]...)
}

// Add64 appends a big-endian uint64.
func (s *Serializer) Add64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	s.data = append(s.data, b[:]...)
}

// AddRaw appends b without any prefix.
func (s *Serializer) AddRaw(b []byte) {
	s.data = append(s.data, b...)
}

// AddVL appends b preceded by its variable length prefix.
func (s *Serializer) AddVL(b []byte) error {
	prefix, err := EncodeVLLength(len(b))
	if err != nil {
		return err
	}
	s.data = append(s.data, prefix...)
	s.data = append(s.data, b...)
	return nil
}

// AddFieldID appends the packed header of a (type, field code) pair.
func (s *Serializer) AddFieldID(typ, name int) error {
	header, err := EncodeFieldID(typ, name)
	if err != nil {
		return err
	}
	s.data = append(s.data, header...)
	return nil
}

// Write implements io.Writer, it never fails.
func (s *Serializer) Write(p []byte) (int, error) {
	s.data = append(s.data, p...)
	return len(p), nil
}

// Bytes returns the accumulated encoding. The slice aliases the buffer.
func (s *Serializer) Bytes() []byte {
	return s.data
}

// Len returns the number of bytes written so far.
func (s *Serializer) Len() int {
	return len(s.data)
}

// Reset discards the accumulated encoding.
func (s *Serializer) Reset() {
	s.data = s.data[:0]
}

// EncodeFieldID packs a type ordinal and a field code. Values below 16 share
// a byte, larger values spill into a byte of their own.
func EncodeFieldID(typ, name int) ([]byte, error) {
	if typ <= 0 || typ > 255 || name <= 0 || name > 255 {
		return nil, fmt.Errorf("%w: type %d field %d", ErrBadFieldID, typ, name)
	}
	t, f := uint8(typ), uint8(name)
	switch {
	case t < 16 && f < 16:
		return []byte{t<<4 | f}, nil
	case t < 16:
		return []byte{t << 4, f}, nil
	case f < 16:
		return []byte{f, t}, nil
	default:
		return []byte{0, t, f}, nil
	}
}

// EncodeVLLength returns the variable length prefix for n bytes.
func EncodeVLLength(n int) ([]byte, error) {
	switch {
	case n < 0 || n > MaxVLLength:
		return nil, fmt.Errorf("%w: %d", ErrBadLength, n)
	case n <= 192:
		return []byte{uint8(n)}, nil
	case n <= 12480:
		n -= 193
		return []byte{193 + uint8(n>>8), uint8(n)}, nil
	default:
		n -= 12481
		return []byte{241 + uint8(n>>16), uint8(n >> 8), uint8(n)}, nil
	}
}
