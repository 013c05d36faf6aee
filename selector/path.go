// Package selector navigates decoded JSON, YAML and TOML documents with
// dotted path expressions such as "servers.[name=api].port".
package selector

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMatch = errors.New("selector: no match")
	ErrSyntax  = errors.New("selector: syntax error")
)

// ParsePath splits a dotted path into tokens for Navigate. Dots inside a
// bracketed filter are kept:
//
//	"servers.0.host"                → ["servers", "0", "host"]
//	"servers.[host=example.org].ip" → ["servers", "[host=example.org]", "ip"]
func ParsePath(s string) []string {
	var tokens []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '.':
			if depth == 0 {
				tokens = append(tokens, s[start:i])
				start = i + 1
			}
		}
	}
	return append(tokens, s[start:])
}

// filter is a parsed "[field=value]" token.
type filter struct {
	field string
	value string
}

// parseFilter reports ok=false when tok is not shaped like a filter.
func parseFilter(tok string) (f filter, ok bool, err error) {
	inner, hasPrefix := strings.CutPrefix(tok, "[")
	inner, hasSuffix := strings.CutSuffix(inner, "]")
	if !hasPrefix || !hasSuffix {
		return filter{}, false, nil
	}
	field, value, found := strings.Cut(inner, "=")
	if !found {
		return filter{}, false, nil
	}
	f.field = strings.TrimSpace(field)
	if f.field == "" {
		return filter{}, true, fmt.Errorf("%w: empty field in filter %q", ErrSyntax, tok)
	}
	f.value = unquote(strings.TrimSpace(value))
	return f, true, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
