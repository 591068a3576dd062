package serialize

import "errors"

// codec errors
var (
	ErrShortRead           = errors.New("short read")
	ErrBadLength           = errors.New("unsupported variable length encoding")
	ErrBadFieldID          = errors.New("field id out of range")
	ErrNonCanonicalFieldID = errors.New("non canonical field id")
)
