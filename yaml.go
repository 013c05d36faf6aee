package strictenv

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML decodes the whole value as a YAML document into a T.
func YAML[T any](s string) (T, error) {
	var v T
	err := yaml.Unmarshal([]byte(s), &v)
	return v, err
}

// YAMLPath returns a Parser that extracts keyPath from a YAML document.
// Non-string values are returned re-encoded as YAML.
func YAMLPath(keyPath string) Parser[string] {
	return pathParser("YAML", keyPath, decodeYAML, encodeYAML)
}

func decodeYAML(data []byte) (any, error) {
	var content any
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, err
	}
	return normalizeYAML(content), nil
}

func encodeYAML(_ string, v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// normalizeYAML rewrites map[any]any (produced for non-string keys) into
// map[string]any, recursively, so selector can walk the result.
func normalizeYAML(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		for k, elem := range vv {
			vv[k] = normalizeYAML(elem)
		}
		return vv
	case map[any]any:
		out := make(map[string]any, len(vv))
		for k, elem := range vv {
			out[fmt.Sprint(k)] = normalizeYAML(elem)
		}
		return out
	case []any:
		for i, elem := range vv {
			vv[i] = normalizeYAML(elem)
		}
		return vv
	default:
		return vv
	}
}
