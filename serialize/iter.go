package serialize

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SerialIter walks an in-memory encoding. It never copies the input except
// where a getter documents it.
type SerialIter struct {
	data []byte
	pos  int
}

// NewSerialIter returns an iterator positioned at the start of b.
func NewSerialIter(b []byte) *SerialIter {
	return &SerialIter{data: b}
}

// Empty reports whether every byte has been consumed.
func (it *SerialIter) Empty() bool {
	return it.pos >= len(it.data)
}

// Len returns the number of unread bytes.
func (it *SerialIter) Len() int {
	return len(it.data) - it.pos
}

// Pos returns the number of bytes consumed so far.
func (it *SerialIter) Pos() int {
	return it.pos
}

func (it *SerialIter) take(n int) ([]byte, error) {
	if n < 0 || it.Len() < n {
		return nil, fmt.Errorf("%w: want %d have %d", ErrShortRead, n, it.Len())
	}
	b := it.data[it.pos : it.pos+n]
	it.pos += n
	return b, nil
}

// Get8 reads one byte.
func (it *SerialIter) Get8() (uint8, error) {
	b, err := it.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Get16 reads a big-endian uint16.
func (it *SerialIter) Get16() (uint16, error) {
	b, err := it.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// Get32 reads a big-endian uint32.
func (it *SerialIter) Get32() (uint32, error) {
	b, err := it.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Get64 reads a big-endian uint64.
func (it *SerialIter) Get64() (uint64, error) {
	b, err := it.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// GetRaw reads n bytes into a fresh slice.
func (it *SerialIter) GetRaw(n int) ([]byte, error) {
	b, err := it.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// GetInto fills dest completely.
func (it *SerialIter) GetInto(dest []byte) error {
	b, err := it.take(len(dest))
	if err != nil {
		return err
	}
	copy(dest, b)
	return nil
}

// GetVLLength reads a variable length prefix.
func (it *SerialIter) GetVLLength() (int, error) {
	first, err := it.Get8()
	if err != nil {
		return 0, err
	}
	switch {
	case first <= 192:
		return int(first), nil
	case first <= 240:
		second, err := it.Get8()
		if err != nil {
			return 0, err
		}
		return 193 + int(first-193)*256 + int(second), nil
	case first <= 254:
		rest, err := it.take(2)
		if err != nil {
			return 0, err
		}
		return 12481 + int(first-241)*65536 + int(rest[0])*256 + int(rest[1]), nil
	}
	return 0, fmt.Errorf("%w: prefix byte %d", ErrBadLength, first)
}

// GetVL reads a length prefixed blob.
func (it *SerialIter) GetVL() ([]byte, error) {
	n, err := it.GetVLLength()
	if err != nil {
		return nil, err
	}
	return it.GetRaw(n)
}

// GetFieldID reads a packed field header. Extended forms carrying values
// that fit the compact form are rejected.
func (it *SerialIter) GetFieldID() (typ, name int, err error) {
	b, err := it.Get8()
	if err != nil {
		return 0, 0, err
	}
	typ = int(b >> 4)
	name = int(b & 0x0f)
	if typ == 0 {
		t, err := it.Get8()
		if err != nil {
			return 0, 0, err
		}
		if t < 16 {
			return 0, 0, fmt.Errorf("%w: uncommon type %d", ErrNonCanonicalFieldID, t)
		}
		typ = int(t)
	}
	if name == 0 {
		f, err := it.Get8()
		if err != nil {
			return 0, 0, err
		}
		if f < 16 {
			return 0, 0, fmt.Errorf("%w: uncommon field %d", ErrNonCanonicalFieldID, f)
		}
		name = int(f)
	}
	return typ, name, nil
}

// Read implements io.Reader.
func (it *SerialIter) Read(p []byte) (int, error) {
	if it.Empty() {
		return 0, io.EOF
	}
	n := copy(p, it.data[it.pos:])
	it.pos += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (it *SerialIter) ReadByte() (byte, error) {
	if it.Empty() {
		return 0, io.EOF
	}
	return it.Get8()
}
