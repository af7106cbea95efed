package config

import (
	"fmt"
	"slices"

	"github.com/0xalexb/hjarta-config/config/parser/ini"
	"github.com/0xalexb/hjarta-config/config/parser/json"
	"github.com/0xalexb/hjarta-config/config/parser/native"
	"github.com/0xalexb/hjarta-config/config/parser/xml"
	"github.com/0xalexb/hjarta-config/config/parser/yaml"
)

// Parser decodes the contents of one configuration file into a tree.
//
// Extensions lists the file extensions, without the leading dot, that the
// parser claims. Parse must return a non-nil map for valid input.
type Parser interface {
	Extensions() []string
	Parse(data []byte) (map[string]any, error)
}

// Registry selects a Parser by file extension. Parsers are consulted in
// registration order and the first one claiming an extension wins.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates a registry holding parsers in the given order.
func NewRegistry(parsers ...Parser) *Registry {
	return &Registry{parsers: slices.Clone(parsers)}
}

// DefaultRegistry returns a registry with the native-code, INI, XML, JSON
// and YAML parsers, in that order.
func DefaultRegistry() *Registry {
	return NewRegistry(
		native.NewParser(),
		ini.NewParser(),
		xml.NewParser(),
		json.NewParser(),
		yaml.NewParser(),
	)
}

// With returns a new registry with parsers appended after the existing ones.
// The receiver is left unchanged.
func (r *Registry) With(parsers ...Parser) *Registry {
	combined := make([]Parser, 0, len(r.parsers)+len(parsers))
	combined = append(combined, r.parsers...)
	combined = append(combined, parsers...)

	return &Registry{parsers: combined}
}

// Lookup returns the first parser claiming ext.
func (r *Registry) Lookup(ext string) (Parser, error) {
	for _, parser := range r.parsers {
		if slices.Contains(parser.Extensions(), ext) {
			return parser, nil
		}
	}

	return nil, fmt.Errorf("extension %q: %w", ext, ErrUnsupportedFormat)
}

// Parsers returns the registered parsers in lookup order.
func (r *Registry) Parsers() []Parser {
	return slices.Clone(r.parsers)
}

// Extensions returns every claimed extension in lookup order.
func (r *Registry) Extensions() []string {
	var extensions []string

	for _, parser := range r.parsers {
		extensions = append(extensions, parser.Extensions()...)
	}

	return extensions
}
