package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// Navigate follows tokens through nested map[string]any and []any values.
//
// A token is a map key, a slice index ("0") or a filter ("[name=api]") that
// selects the first slice element that is a map whose field equals the
// value. Filter values are compared against numbers and booleans by their
// parsed value, so "[id=2]" matches both int 2 and float64 2.
func Navigate(data any, tokens []string) (any, error) {
	current := data
	for i, tok := range tokens {
		next, err := step(current, tok)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.Join(tokens[:i+1], "."), err)
		}
		current = next
	}
	return current, nil
}

func step(current any, tok string) (any, error) {
	switch curr := current.(type) {
	case map[string]any:
		v, ok := curr[tok]
		if !ok {
			return nil, fmt.Errorf("%w: key %q", ErrNoMatch, tok)
		}
		return v, nil
	case []any:
		f, isFilter, err := parseFilter(tok)
		if err != nil {
			return nil, err
		}
		if isFilter {
			return f.first(curr)
		}
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is neither an index nor a filter", ErrSyntax, tok)
		}
		if idx < 0 || idx >= len(curr) {
			return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrNoMatch, idx, len(curr))
		}
		return curr[idx], nil
	default:
		return nil, fmt.Errorf("%w: cannot descend into %T with %q", ErrNoMatch, current, tok)
	}
}

func (f filter) first(elems []any) (any, error) {
	for _, elem := range elems {
		m, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		if got, ok := m[f.field]; ok && f.matches(got) {
			return elem, nil
		}
	}
	return nil, fmt.Errorf("%w: no element where %s=%s", ErrNoMatch, f.field, f.value)
}

// matches compares v with the filter value interpreted in v's type.
// "1" and "0" never match booleans.
func (f filter) matches(v any) bool {
	switch got := v.(type) {
	case string:
		return got == f.value
	case bool:
		want, err := strconv.ParseBool(f.value)
		return err == nil && f.value != "1" && f.value != "0" && got == want
	case int:
		want, err := strconv.ParseInt(f.value, 10, 64)
		return err == nil && int64(got) == want
	case int64:
		want, err := strconv.ParseInt(f.value, 10, 64)
		return err == nil && got == want
	case uint64:
		want, err := strconv.ParseUint(f.value, 10, 64)
		return err == nil && got == want
	case float64:
		want, err := strconv.ParseFloat(f.value, 64)
		return err == nil && got == want
	}
	return fmt.Sprint(v) == f.value
}
