package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/hjarta-config/config"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
		require.NoError(t, err)
	}

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestDump_JSON(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, map[string]string{
		"server.yaml":   "host: localhost\nport: 8080\n",
		"app.json.dist": `{"name": "billing"}`,
	})

	out, err := execute(t, "dump", dir)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tree))

	assert.Equal(t, map[string]any{
		"app":    map[string]any{"name": "billing"},
		"server": map[string]any{"host": "localhost", "port": float64(8080)},
	}, tree)
}

func TestDump_YAML(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, map[string]string{"app.json": `{"name": "billing"}`})

	out, err := execute(t, "dump", "--format", "yaml", filepath.Join(dir, "app.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "name: billing")
}

func TestDump_UnknownFormat(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, map[string]string{"app.json": `{}`})

	_, err := execute(t, "dump", "--format", "csv", dir)
	require.ErrorIs(t, err, errUnknownFormat)
}

func TestDump_NonFiniteFloat(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, map[string]string{"limits.yaml": "ceiling: .inf\n"})
	path := filepath.Join(dir, "limits.yaml")

	out, err := execute(t, "dump", path)
	require.ErrorIs(t, err, errNotJSON)
	assert.Contains(t, err.Error(), "--format yaml")
	assert.Empty(t, out)

	out, err = execute(t, "dump", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ceiling:")
	assert.Contains(t, out, "inf")
}

func TestDump_OptionalPathSkipped(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, map[string]string{"app.json": `{"debug": true}`})

	out, err := execute(t, "dump", filepath.Join(dir, "app.json"), "?"+filepath.Join(dir, "local.yaml"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"debug": true}`, out)
}

func TestDump_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "dump", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrFileNotFound)
}

func TestDump_ExtrasRequiredForTOML(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, map[string]string{"app.toml": "name = \"billing\"\n"})
	path := filepath.Join(dir, "app.toml")

	_, err := execute(t, "dump", path)
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	out, err := execute(t, "dump", "--with-extras", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "billing"}`, out)
}

func TestGet(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, map[string]string{
		"server.yaml": "host: localhost\nhosts:\n  - a.example.com\n  - b.example.com\n",
	})
	path := filepath.Join(dir, "server.yaml")

	testCases := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "scalar", key: "host", expected: "localhost\n"},
		{name: "list index", key: "hosts.1", expected: "b.example.com\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, "get", testCase.key, path)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, out)
		})
	}

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "get", "hosts", path)
		require.NoError(t, err)
		assert.JSONEq(t, `["a.example.com", "b.example.com"]`, out)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "get", "port", path)
		require.ErrorIs(t, err, config.ErrKeyNotFound)
	})
}

func TestKeys(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, map[string]string{
		"app.json": `{"server": {"port": 8080}, "tags": ["a"], "empty": {}}`,
	})

	out, err := execute(t, "keys", filepath.Join(dir, "app.json"))
	require.NoError(t, err)

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "server.port")
	assert.Contains(t, out, "float64")
	assert.Contains(t, out, "tags.0")
	assert.Contains(t, out, "empty")
}

func TestFormats(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "*yaml.Parser")
	assert.NotContains(t, out, "*toml.Parser")

	out, err = execute(t, "formats", "--with-extras")
	require.NoError(t, err)
	assert.Contains(t, out, "*toml.Parser")
	assert.Contains(t, out, "*jsonc.Parser")
}

func TestSpecFromArgs(t *testing.T) {
	t.Parallel()

	spec, err := specFromArgs([]string{"config/app.yaml"})
	require.NoError(t, err)
	assert.Equal(t, config.File("config/app.yaml"), spec)

	spec, err = specFromArgs([]string{"?config/local.yaml"})
	require.NoError(t, err)
	assert.Equal(t, config.Group{config.Optional("config/local.yaml")}, spec)

	spec, err = specFromArgs([]string{"a.yaml", "?b.yaml"})
	require.NoError(t, err)
	assert.Equal(t, config.Group{config.File("a.yaml"), config.Optional("b.yaml")}, spec)

	_, err = specFromArgs(nil)
	require.ErrorIs(t, err, errNoPaths)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	leaves := map[string]any{}
	flatten("", map[string]any{
		"a": map[string]any{"b": 1, "c": []any{"x", map[string]any{"d": nil}}},
		"e": []any{},
	}, leaves)

	assert.Equal(t, map[string]any{
		"a.b":     1,
		"a.c.0":   "x",
		"a.c.1.d": nil,
		"e":       []any{},
	}, leaves)
}
