package strictenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `server:
  host: localhost
  port: 8080
  nested:
    key: value
servers:
  - name: web
    host: example.com
  - name: api
    host: example.org
    enabled: true
ports:
  80: http
  443: https
`

func TestYAML(t *testing.T) {
	t.Parallel()

	type limits struct {
		CPU    string `yaml:"cpu"`
		Memory string `yaml:"memory"`
	}

	t.Run("Decode into struct", func(t *testing.T) {
		t.Parallel()
		got, err := YAML[limits]("cpu: 500m\nmemory: 128Mi\n")
		require.NoError(t, err)
		assert.Equal(t, limits{CPU: "500m", Memory: "128Mi"}, got)
	})

	t.Run("Flow style", func(t *testing.T) {
		t.Parallel()
		got, err := ParseFrom(Map{"LIMITS": "{cpu: 250m, memory: 1Gi}"}, "LIMITS", YAML[limits])
		require.NoError(t, err)
		assert.Equal(t, limits{CPU: "250m", Memory: "1Gi"}, got)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := ParseFrom(Map{"LIMITS": "cpu: [1"}, "LIMITS", YAML[limits])
		require.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestYAMLPath(t *testing.T) {
	t.Parallel()

	t.Run("Nested key", func(t *testing.T) {
		t.Parallel()
		got, err := YAMLPath("server.nested.key")(yamlDoc)
		require.NoError(t, err)
		assert.Equal(t, "value", got)
	})

	t.Run("Filter by bool", func(t *testing.T) {
		t.Parallel()
		got, err := YAMLPath("servers.[enabled=true].name")(yamlDoc)
		require.NoError(t, err)
		assert.Equal(t, "api", got)
	})

	t.Run("Non-string keys", func(t *testing.T) {
		t.Parallel()
		got, err := YAMLPath("ports.443")(yamlDoc)
		require.NoError(t, err)
		assert.Equal(t, "https", got)
	})

	t.Run("Mapping is re-encoded", func(t *testing.T) {
		t.Parallel()
		got, err := YAMLPath("server.nested")(yamlDoc)
		require.NoError(t, err)
		assert.Equal(t, "key: value", got)
	})

	t.Run("Number is re-encoded", func(t *testing.T) {
		t.Parallel()
		got, err := YAMLPath("server.port")(yamlDoc)
		require.NoError(t, err)
		assert.Equal(t, "8080", got)
	})

	t.Run("Missing key", func(t *testing.T) {
		t.Parallel()
		_, err := ParseFrom(Map{"CONFIG": yamlDoc}, "CONFIG", YAMLPath("server.nope"))
		require.ErrorIs(t, err, ErrInvalidValue)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNormalizeYAML(t *testing.T) {
	t.Parallel()

	in := map[any]any{
		1:     "one",
		"two": []any{map[any]any{true: "yes"}},
	}
	got := normalizeYAML(in)
	assert.Equal(t, map[string]any{
		"1":   "one",
		"two": []any{map[string]any{"true": "yes"}},
	}, got)
}
