package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Extensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"yaml", "yml"}, NewParser().Extensions())
}

func TestParser_Parse_NestedDocument(t *testing.T) {
	t.Parallel()

	data := []byte(`
name: test-app
version: "1.0"
server:
  host: localhost
  port: 8080
  tls: true
hosts:
  - host1.example.com
  - host2.example.com
`)

	tree, err := NewParser().Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "test-app", tree["name"])
	assert.Equal(t, "1.0", tree["version"])

	server, ok := tree["server"].(map[string]any)
	require.True(t, ok, "server should decode into a map")
	assert.Equal(t, "localhost", server["host"])
	assert.EqualValues(t, 8080, server["port"])
	assert.Equal(t, true, server["tls"])

	assert.Equal(t, []any{"host1.example.com", "host2.example.com"}, tree["hosts"])
}

func TestParser_Parse_FloatValue(t *testing.T) {
	t.Parallel()

	tree, err := NewParser().Parse([]byte("ratio: 3.14159\n"))
	require.NoError(t, err)

	ratio, ok := tree["ratio"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 3.14159, ratio, 0.00001)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "whitespace", data: []byte("  \n\t\n")},
		{name: "comment only", data: []byte("# nothing here\n")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tree, err := NewParser().Parse(testCase.data)
			require.NoError(t, err)
			assert.Empty(t, tree)
			assert.NotNil(t, tree)
		})
	}
}

func TestParser_Parse_NotMapping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		data string
	}{
		{name: "sequence root", data: "- a\n- b\n"},
		{name: "scalar root", data: "just a string\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tree, err := NewParser().Parse([]byte(testCase.data))
			require.ErrorIs(t, err, ErrNotMapping)
			assert.Nil(t, tree)
		})
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := NewParser().Parse([]byte("invalid: yaml: content: [\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal error")
}

func TestNormalize_ConvertsInterfaceKeys(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"ports": map[any]any{80: "http", "tls": map[any]any{443: "https"}},
		"list":  []any{map[any]any{true: "yes"}},
	}

	expected := map[string]any{
		"ports": map[string]any{"80": "http", "tls": map[string]any{"443": "https"}},
		"list":  []any{map[string]any{"true": "yes"}},
	}

	assert.Equal(t, expected, normalize(input))
}
