package strictenv

import (
	"errors"
	"fmt"
)

var (
	ErrMissing      = errors.New("strictenv: missing or empty")
	ErrInvalidUTF8  = errors.New("strictenv: invalid utf-8")
	ErrInvalidValue = errors.New("strictenv: invalid value")

	// Returned (wrapped) by the document path parsers.
	ErrNotFound = errors.New("strictenv: not found")
	ErrBadPath  = errors.New("strictenv: bad path")
)

// Kind classifies why an environment variable could not be resolved.
type Kind int

const (
	KindMissing Kind = iota + 1
	KindInvalidUTF8
	KindInvalidValue
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInvalidUTF8:
		return "invalid utf-8"
	case KindInvalidValue:
		return "invalid value"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every resolve function.
//
// Only the fields relevant to Kind are set: Raw for KindInvalidUTF8,
// Value and Err for KindInvalidValue. All data is owned by the Error.
//
// errors.Is also walks into Err, so a parser failure that itself wraps a
// Missing error matches ErrMissing too. Kind of the returned *Error is what
// the resolve functions act on.
type Error struct {
	Kind  Kind
	Name  string // name of the environment variable
	Raw   []byte // exact bytes of a value that is not valid UTF-8
	Value string // text that the parser rejected
	Err   error  // parser failure
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissing:
		return fmt.Sprintf("Missing or empty environment variable %q", e.Name)
	case KindInvalidUTF8:
		return fmt.Sprintf("Invalid UTF-8 in environment variable %q", e.Name)
	case KindInvalidValue:
		return fmt.Sprintf("Error parsing environment variable %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s: environment variable %q", e.Kind, e.Name)
}

// Unwrap returns the parser failure of a KindInvalidValue error.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's Kind, so callers can write
// errors.Is(err, ErrMissing).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMissing:
		return e.Kind == KindMissing
	case ErrInvalidUTF8:
		return e.Kind == KindInvalidUTF8
	case ErrInvalidValue:
		return e.Kind == KindInvalidValue
	}
	return false
}

func missing(name string) *Error {
	return &Error{Kind: KindMissing, Name: name}
}

func invalidUTF8(name, raw string) *Error {
	return &Error{Kind: KindInvalidUTF8, Name: name, Raw: []byte(raw)}
}

func invalidValue(name, value string, err error) *Error {
	return &Error{Kind: KindInvalidValue, Name: name, Value: value, Err: err}
}
