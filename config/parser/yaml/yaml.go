package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when the document root is not a YAML mapping.
var ErrNotMapping = errors.New("yaml document root is not a mapping")

// Parser turns YAML documents into configuration trees.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions handled by the parser.
func (p *Parser) Extensions() []string {
	return []string{"yaml", "yml"}
}

// Parse decodes data into a map. Empty documents produce an empty map.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if raw == nil {
		return map[string]any{}, nil
	}

	tree, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}

	return tree, nil
}

// normalize rewrites map[any]any mappings (non-string keys) into
// map[string]any so every tree has the same shape.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			typed[key] = normalize(child)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[fmt.Sprint(key)] = normalize(child)
		}

		return out
	case []any:
		for i, child := range typed {
			typed[i] = normalize(child)
		}

		return typed
	default:
		return value
	}
}
