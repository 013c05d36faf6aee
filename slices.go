package strictenv

import (
	"fmt"
	"strings"
)

// Split returns a Parser for sep-separated lists whose elements are
// converted with parse. Surrounding whitespace of each element is trimmed.
//
//	hosts, err := strictenv.Parse("HOSTS", strictenv.Split(",", strictenv.String))
func Split[T any](sep string, parse Parser[T]) Parser[[]T] {
	return func(s string) ([]T, error) {
		return MapWithError(strings.Split(s, sep), func(i int, item string) (T, error) {
			v, err := parse(strings.TrimSpace(item))
			if err != nil {
				return v, fmt.Errorf("element %d (%q): %w", i, item, err)
			}
			return v, nil
		})
	}
}

// MapWithError applies fn to each item of in, passing the item's index.
// The operation stops on the first error and returns no partial result.
func MapWithError[T, U any](in []T, fn func(int, T) (U, error)) ([]U, error) {
	out := make([]U, 0, len(in))
	for i, item := range in {
		v, err := fn(i, item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
