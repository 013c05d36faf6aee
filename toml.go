package strictenv

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOML decodes the whole value as a TOML document into a T.
func TOML[T any](s string) (T, error) {
	var v T
	err := toml.Unmarshal([]byte(s), &v)
	return v, err
}

// TOMLPath returns a Parser that extracts keyPath from a TOML document.
// Non-string values are returned re-encoded as TOML: tables and arrays of
// tables as documents, other values in their inline form ("8080",
// "[1, 2]").
func TOMLPath(keyPath string) Parser[string] {
	return pathParser("TOML", keyPath, decodeTOML, encodeTOML)
}

func decodeTOML(data []byte) (any, error) {
	var content map[string]any
	if err := toml.Unmarshal(data, &content); err != nil {
		return nil, err
	}
	return content, nil
}

func encodeTOML(key string, v any) (string, error) {
	if table, ok := v.(map[string]any); ok {
		data, err := toml.Marshal(table)
		if err != nil {
			return "", fmt.Errorf("failed to encode TOML value: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if isTableArray(v) {
		data, err := toml.Marshal(map[string]any{key: v})
		if err != nil {
			return "", fmt.Errorf("failed to encode TOML value: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	// Inline values are encoded as "v = <value>" and cut after the "=".
	data, err := toml.Marshal(map[string]any{"v": v})
	if err != nil {
		return "", fmt.Errorf("failed to encode TOML value: %w", err)
	}
	_, inline, found := strings.Cut(string(data), "=")
	if !found {
		return "", fmt.Errorf("failed to encode TOML value of type %T", v)
	}
	return strings.TrimSpace(inline), nil
}

// isTableArray reports whether v is a non-empty array whose elements are all
// tables.
func isTableArray(v any) bool {
	elems, ok := v.([]any)
	if !ok || len(elems) == 0 {
		return false
	}
	for _, elem := range elems {
		if _, ok := elem.(map[string]any); !ok {
			return false
		}
	}
	return true
}
