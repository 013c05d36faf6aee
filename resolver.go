// Package strictenv parses environment variables into typed values.
//
// A variable that is unset or empty is missing, a value that is not valid
// UTF-8 is rejected before parsing, and every failure is reported as an
// *Error naming the variable. Types without a parser of their own can be
// wrapped:
//
//	type cacheTTL time.Duration
//
//	func (d *cacheTTL) UnmarshalText(b []byte) error { ... }
//
//	ttl, err := strictenv.Parse("CACHE_TTL", strictenv.Text[cacheTTL]())
package strictenv

// Parse reads the process environment variable name and converts it with
// parse.
//
// Examples:
//
//	port, err := strictenv.Parse("PORT", strictenv.Uint[uint16])
//	addr, err := strictenv.Parse("LISTEN", strictenv.Text[netip.AddrPort]())
//
// The returned error is always an *Error: KindMissing when the variable is
// unset or empty, KindInvalidUTF8 when its value is not valid UTF-8 and
// KindInvalidValue when parse rejects it.
func Parse[T any](name string, parse Parser[T]) (T, error) {
	return ParseFrom(OS, name, parse)
}

// ParseFrom is Parse against env.
func ParseFrom[T any](env Env, name string, parse Parser[T]) (T, error) {
	v, err := parseFrom(env, name, parse)
	if err != nil {
		return v, err
	}
	return v, nil
}

func parseFrom[T any](env Env, name string, parse Parser[T]) (T, *Error) {
	var zero T
	text, lerr := lookup(env, name)
	if lerr != nil {
		return zero, lerr
	}
	v, err := parse(text)
	if err != nil {
		return zero, invalidValue(name, text, err)
	}
	return v, nil
}

// ParseOptional is like Parse but treats an unset or empty variable as
// absent: it returns the zero value, false and no error.
// Invalid UTF-8 and values rejected by parse are still reported.
func ParseOptional[T any](name string, parse Parser[T]) (T, bool, error) {
	return ParseOptionalFrom(OS, name, parse)
}

// ParseOptionalFrom is ParseOptional against env.
func ParseOptionalFrom[T any](env Env, name string, parse Parser[T]) (T, bool, error) {
	v, err := parseFrom(env, name, parse)
	switch {
	case err == nil:
		return v, true, nil
	// Only the variable itself being missing counts, not a Missing error
	// wrapped by parse.
	case err.Kind == KindMissing:
		return v, false, nil
	}
	return v, false, err
}

// ParseOrDefault is like ParseOptional but returns the zero value of T when
// the variable is unset or empty.
func ParseOrDefault[T any](name string, parse Parser[T]) (T, error) {
	return ParseOrDefaultFrom(OS, name, parse)
}

// ParseOrDefaultFrom is ParseOrDefault against env.
func ParseOrDefaultFrom[T any](env Env, name string, parse Parser[T]) (T, error) {
	var zero T
	return ParseOrFrom(env, name, parse, zero)
}

// ParseOr is like ParseOrDefault with fallback in place of the zero value.
func ParseOr[T any](name string, parse Parser[T], fallback T) (T, error) {
	return ParseOrFrom(OS, name, parse, fallback)
}

// ParseOrFrom is ParseOr against env.
func ParseOrFrom[T any](env Env, name string, parse Parser[T], fallback T) (T, error) {
	v, ok, err := ParseOptionalFrom(env, name, parse)
	if err != nil {
		return v, err
	}
	if !ok {
		return fallback, nil
	}
	return v, nil
}

// Must returns v or panics with err. It is meant for program start-up:
//
//	var port = strictenv.Must(strictenv.Parse("PORT", strictenv.Uint[uint16]))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
