package strictenv

import (
	"encoding"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// Parser converts the text of an environment variable into a T.
// Any func(string) (T, error) qualifies; wrap types you do not own in a
// parser of your own.
type Parser[T any] func(string) (T, error)

// TextUnmarshaler is satisfied by *T when T implements encoding.TextUnmarshaler.
type TextUnmarshaler[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Text returns a Parser for any type whose pointer implements
// encoding.TextUnmarshaler, e.g. Text[netip.Addr]() or Text[time.Time]().
func Text[T any, PT TextUnmarshaler[T]]() Parser[T] {
	return func(s string) (T, error) {
		var v T
		if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
			return v, err
		}
		return v, nil
	}
}

type (
	Signed   interface{ ~int | ~int8 | ~int16 | ~int32 | ~int64 }
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}
	Floating interface{ ~float32 | ~float64 }
)

// String returns s unchanged.
func String(s string) (string, error) { return s, nil }

// Bool accepts the values strconv.ParseBool accepts.
func Bool(s string) (bool, error) { return strconv.ParseBool(s) }

// Int parses a base 10 integer that fits into T.
func Int[T Signed](s string) (T, error) {
	n, err := strconv.ParseInt(s, 10, bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

// Uint parses a base 10 unsigned integer that fits into T.
func Uint[T Unsigned](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

// Float parses a floating point number with the precision of T.
func Float[T Floating](s string) (T, error) {
	f, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(f), nil
}

// Duration accepts the format of time.ParseDuration, e.g. "1m30s".
func Duration(s string) (time.Duration, error) { return time.ParseDuration(s) }

// URL parses s with url.Parse.
func URL(s string) (*url.URL, error) { return url.Parse(s) }

func bitSize[T any]() int {
	var zero T
	return reflect.TypeOf(zero).Bits()
}
