package strictenv

import (
	"encoding/json"
	"strings"
)

// JSON decodes the whole value as a JSON document into a T.
//
//	cfg, err := strictenv.Parse("APP_CONFIG", strictenv.JSON[Config])
func JSON[T any](s string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

// JSONPath returns a Parser that extracts keyPath from a JSON document,
// e.g. JSONPath("servers.[name=api].host"). Non-string values are
// returned re-encoded as JSON.
func JSONPath(keyPath string) Parser[string] {
	return pathParser("JSON", keyPath, decodeJSON, encodeJSON)
}

func decodeJSON(data []byte) (any, error) {
	var content any
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, err
	}
	return content, nil
}

func encodeJSON(_ string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
