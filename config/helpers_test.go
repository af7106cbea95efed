package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFiles creates files under dir. Keys are slash-separated relative
// paths; parent directories are created as needed.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))

		err := os.MkdirAll(filepath.Dir(path), 0o700)
		require.NoError(t, err)

		err = os.WriteFile(path, []byte(content), 0o600)
		require.NoError(t, err)
	}
}
