// Package jsonc provides a JSON-with-comments parser for the config loader.
//
// Comments and trailing commas are stripped with github.com/tailscale/hujson
// and the standardized bytes are decoded like plain JSON. The parser is not
// part of the default registry; add it with config.WithParsers.
package jsonc

import (
	"bytes"
	"fmt"

	"github.com/tailscale/hujson"

	jsonparser "github.com/0xalexb/hjarta-config/config/parser/json"
)

// Parser turns JSONC documents into configuration trees.
type Parser struct{}

// NewParser creates a new JSONC parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions handled by the parser.
func (p *Parser) Extensions() []string {
	return []string{"jsonc"}
}

// Parse standardizes data and decodes it into a map.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	// hujson needs a newline to close a line comment on the last line.
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data[:len(data):len(data)], '\n')
	}

	value, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse jsonc: %w", err)
	}

	value.Standardize()

	return jsonparser.Decode(value.Pack())
}
