package decoder

import (
	"errors"
	"fmt"
)

// ErrorKind classifies decode failures so callers can branch on the cause
// instead of matching message text.
type ErrorKind int

const (
	// ValueNotFound means a required destination had no value: either the
	// key was absent from the payload or the value was null.
	ValueNotFound ErrorKind = iota

	// TypeMismatch means a present value does not match the destination's
	// expected shape.
	TypeMismatch

	// UnsupportedType means the destination contains a type the decoder
	// cannot populate (channels, functions, non-string-keyed maps).
	UnsupportedType

	// InvalidTarget means the decode target was not a non-nil pointer.
	InvalidTarget
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ValueNotFound:
		return "value not found"
	case TypeMismatch:
		return "type mismatch"
	case UnsupportedType:
		return "unsupported type"
	case InvalidTarget:
		return "invalid target"
	default:
		return "unknown"
	}
}

// Error describes a decode failure. Path is a JSON Pointer to the failing
// field; the empty path refers to the whole payload.
type Error struct {
	Kind     ErrorKind
	Path     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ValueNotFound:
		if e.Path == "" {
			return "value not found"
		}
		return fmt.Sprintf("value not found at %q", e.Path)
	case TypeMismatch:
		if e.Path == "" {
			return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
		}
		return fmt.Sprintf("type mismatch at %q: expected %s, got %s", e.Path, e.Expected, e.Actual)
	case UnsupportedType:
		if e.Path == "" {
			return fmt.Sprintf("unsupported type %s", e.Expected)
		}
		return fmt.Sprintf("unsupported type %s at %q", e.Expected, e.Path)
	case InvalidTarget:
		return "decode target must be a non-nil pointer"
	default:
		return "decode error"
	}
}

// NotFound creates a ValueNotFound error at the given path.
func NotFound(path string) *Error {
	return &Error{Kind: ValueNotFound, Path: path}
}

// Mismatch creates a TypeMismatch error at the given path.
func Mismatch(path, expected, actual string) *Error {
	return &Error{Kind: TypeMismatch, Path: path, Expected: expected, Actual: actual}
}

// IsNotFound reports whether err is (or wraps) a ValueNotFound decode error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ValueNotFound
}

// IsMismatch reports whether err is (or wraps) a TypeMismatch decode error.
func IsMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == TypeMismatch
}
