// Package toml provides a TOML parser for the config loader.
//
// Decoding is delegated to github.com/pelletier/go-toml/v2. Integers decode
// as int64, floats as float64 and date-time values as time.Time. The parser
// is not part of the default registry; add it with config.WithParsers.
package toml

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Parser turns TOML documents into configuration trees.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions handled by the parser.
func (p *Parser) Extensions() []string {
	return []string{"toml"}
}

// Parse decodes data into a map. Empty documents produce an empty map.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var tree map[string]any

	err := toml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if tree == nil {
		return map[string]any{}, nil
	}

	return tree, nil
}
