// Package json provides the JSON parser for the config loader.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotMapping is returned when the document root is not a JSON object.
var ErrNotMapping = errors.New("json document root is not an object")

// Parser turns JSON documents into configuration trees.
// Numbers decode as float64.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions handled by the parser.
func (p *Parser) Extensions() []string {
	return []string{"json"}
}

// Parse decodes data into a map. Empty documents produce an empty map.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}

	return Decode(trimmed)
}

// Decode unmarshals standard JSON bytes into an object tree.
// It is shared with formats that standardize to JSON first.
func Decode(data []byte) (map[string]any, error) {
	var raw any

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if raw == nil {
		return map[string]any{}, nil
	}

	tree, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}

	return tree, nil
}
