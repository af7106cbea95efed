package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/0xalexb/hjarta-config/config/fetcher/file"
)

// DistSuffix marks a distributed template such as app.json.dist. It is
// ignored when choosing a parser.
const DistSuffix = "dist"

// Loader resolves a Spec, parses every resolved file and merges the results.
type Loader struct {
	registry    *Registry
	logger      *slog.Logger
	concurrency int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRegistry replaces the parser registry.
func WithRegistry(registry *Registry) LoaderOption {
	return func(l *Loader) {
		l.registry = registry
	}
}

// WithParsers appends parsers after the ones already registered.
func WithParsers(parsers ...Parser) LoaderOption {
	return func(l *Loader) {
		l.registry = l.registry.With(parsers...)
	}
}

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithConcurrency parses up to n files at once. Values below 2 keep the
// load sequential. Results are merged in resolution order either way.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		l.concurrency = n
	}
}

// NewLoader creates a Loader backed by DefaultRegistry unless overridden.
func NewLoader(opts ...LoaderOption) *Loader {
	loader := &Loader{
		registry:    DefaultRegistry(),
		logger:      slog.Default(),
		concurrency: 1,
	}

	for _, apply := range opts {
		apply(loader)
	}

	if loader.logger == nil {
		loader.logger = slog.Default()
	}

	return loader
}

// Load builds the configuration tree described by spec.
//
// A nil spec yields an empty tree. When spec resolves to exactly one file,
// that file's contents are the tree. Otherwise every file is stored under
// its Stem, and a later file replaces an earlier one with the same stem.
// Any failure aborts the load and no partial tree is returned.
func (l *Loader) Load(spec Spec) (map[string]any, error) {
	tree := make(map[string]any)

	if spec == nil {
		return tree, nil
	}

	files, err := resolver{logger: l.logger}.resolve(spec)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("config paths resolved", slog.Int("files", len(files)))

	parsers := make([]Parser, len(files))

	for i, path := range files {
		parser, err := l.registry.Lookup(Extension(path))
		if err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}

		parsers[i] = parser
	}

	fragments, err := l.parseAll(files, parsers)
	if err != nil {
		return nil, err
	}

	if len(fragments) == 1 {
		return fragments[0], nil
	}

	for i, path := range files {
		tree[Stem(path)] = fragments[i]
	}

	return tree, nil
}

func (l *Loader) parseAll(files []string, parsers []Parser) ([]map[string]any, error) {
	fragments := make([]map[string]any, len(files))

	if l.concurrency < 2 || len(files) < 2 {
		for i, path := range files {
			fragment, err := l.parseFile(path, parsers[i])
			if err != nil {
				return nil, err
			}

			fragments[i] = fragment
		}

		return fragments, nil
	}

	var group errgroup.Group

	group.SetLimit(l.concurrency)

	for i, path := range files {
		group.Go(func() error {
			fragment, err := l.parseFile(path, parsers[i])
			if err != nil {
				return err
			}

			fragments[i] = fragment

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return fragments, nil
}

func (l *Loader) parseFile(path string, parser Parser) (map[string]any, error) {
	data, err := file.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	fragment, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	if fragment == nil {
		fragment = make(map[string]any)
	}

	l.logger.Debug("config file parsed", slog.String("path", path), slog.String("extension", Extension(path)))

	return fragment, nil
}

// Load is a shorthand for NewLoader(opts...).Load(spec).
func Load(spec Spec, opts ...LoaderOption) (map[string]any, error) {
	return NewLoader(opts...).Load(spec)
}

// New loads spec and wraps the resulting tree in a Config.
func New(spec Spec, opts ...LoaderOption) (*Config, error) {
	tree, err := Load(spec, opts...)
	if err != nil {
		return nil, err
	}

	return NewConfig(tree), nil
}

// MustLoad is like New but panics if the configuration cannot be loaded.
func MustLoad(spec Spec, opts ...LoaderOption) *Config {
	cfg, err := New(spec, opts...)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Extension returns the format key of path: the last dot-separated
// component of the base name, skipping one trailing DistSuffix.
// A name without dots has no extension.
func Extension(path string) string {
	parts := strings.Split(filepath.Base(path), ".")
	if len(parts) < 2 {
		return ""
	}

	ext := parts[len(parts)-1]
	if ext == DistSuffix {
		ext = parts[len(parts)-2]
	}

	return ext
}

// Stem returns the base name of path with every extension removed.
func Stem(path string) string {
	stem, _, _ := strings.Cut(filepath.Base(path), ".")

	return stem
}
