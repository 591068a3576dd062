package stobject

import (
	"errors"
	"fmt"

	"github.com/anyswap/stobject/sfield"
)

// record errors
var (
	ErrFieldNotFound     = errors.New("field not found")
	ErrTypeMismatch      = errors.New("wrong field type")
	ErrDuplicateField    = errors.New("duplicate field")
	ErrUnknownField      = errors.New("unknown field")
	ErrMalformedEncoding = errors.New("malformed encoding")
	ErrDepthExceeded     = errors.New("maximum nesting depth exceeded")
	ErrSchemaViolation   = errors.New("schema violation")
	ErrUnknownFormat     = errors.New("unknown format")
)

// ValidationError reports the first template violation found in a record.
type ValidationError struct {
	Template string
	Field    *sfield.Field
	Reason   string
	Err      error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%v: %s: %s %s", ErrSchemaViolation, e.Template, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match ErrSchemaViolation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// codecError tags a decode failure with its kind while keeping the cause
// reachable through errors.Is.
type codecError struct {
	kind  error
	field *sfield.Field
	cause error
}

func malformed(field *sfield.Field, cause error) error {
	return &codecError{kind: ErrMalformedEncoding, field: field, cause: cause}
}

func (e *codecError) Error() string {
	if e.field != nil {
		return fmt.Sprintf("%v: %s: %v", e.kind, e.field, e.cause)
	}
	return fmt.Sprintf("%v: %v", e.kind, e.cause)
}

func (e *codecError) Unwrap() error {
	return e.cause
}

func (e *codecError) Is(target error) bool {
	return target == e.kind
}

func fieldError(kind error, f *sfield.Field, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%w: %s", kind, f)
	}
	return fmt.Errorf("%w: %s: %s", kind, f, fmt.Sprintf(format, args...))
}
