package strictenv

import (
	"fmt"
	"strings"

	"github.com/containeroo/strictenv/selector"
)

// pathParser builds a Parser[string] that decodes a document with decode,
// selects keyPath in it and renders non-string results with encode. encode
// receives the last path token as the key the value was found under.
func pathParser(format, keyPath string, decode func([]byte) (any, error), encode func(string, any) (string, error)) Parser[string] {
	return func(s string) (string, error) {
		if strings.TrimSpace(keyPath) == "" {
			return "", fmt.Errorf("%w: empty %s key path", ErrBadPath, format)
		}
		content, err := decode([]byte(s))
		if err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", format, err)
		}
		tokens := selector.ParsePath(keyPath)
		val, err := selector.Navigate(content, tokens)
		if err != nil {
			return "", fmt.Errorf("%w: key path %q in %s: %w", ErrNotFound, keyPath, format, err)
		}
		if str, ok := val.(string); ok {
			return str, nil
		}
		return encode(tokens[len(tokens)-1], val)
	}
}
