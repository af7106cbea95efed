package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// resolver turns a Spec into the ordered list of files to load.
type resolver struct {
	logger *slog.Logger
}

// resolve expands spec into concrete file paths. Groups keep element order,
// directories expand to the files they contain.
func (r resolver) resolve(spec Spec) ([]string, error) {
	switch typed := spec.(type) {
	case Group:
		return r.resolveGroup(typed)
	case Path:
		return r.resolvePath(typed.Value)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidSpec, spec)
	}
}

func (r resolver) resolveGroup(group Group) ([]string, error) {
	files := make([]string, 0, len(group))

	for _, element := range group {
		resolved, err := r.resolve(element)
		if err != nil {
			path, isPath := element.(Path)
			if isPath && path.Optional && errors.Is(err, ErrFileNotFound) {
				r.logger.Debug("optional config path skipped", slog.String("path", path.Value))

				continue
			}

			return nil, err
		}

		files = append(files, resolved...)
	}

	return files, nil
}

func (r resolver) resolvePath(path string) ([]string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("path %q: %w", path, ErrFileNotFound)
		}

		return nil, fmt.Errorf("path %q: %w: %w", path, ErrFileNotFound, err)
	}

	if stat.IsDir() {
		return listDirectory(path)
	}

	return []string{path}, nil
}

// listDirectory returns the files in dir whose name has an extension.
// Hidden files, subdirectories and symlinks to directories are skipped. Entries come back sorted by name.
func listDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	files := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.Contains(name, ".") || entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, name)
		if entry.Type()&fs.ModeSymlink != 0 && isDirectory(path) {
			continue
		}

		files = append(files, path)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("directory %q: %w", dir, ErrEmptyDirectory)
	}

	return files, nil
}

func isDirectory(path string) bool {
	stat, err := os.Stat(path)

	return err == nil && stat.IsDir()
}
