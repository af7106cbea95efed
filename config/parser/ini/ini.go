// Package ini provides the INI parser for the config loader.
//
// Keys of the default (unnamed) section are placed at the top level of the
// tree and every named section becomes a nested map. Values are kept as
// strings. Top-level names that contain dots, whether section names or
// default-section keys, are expanded into nested maps:
//
//	[database.primary]
//	host = db1
//
// produces {"database": {"primary": {"host": "db1"}}}.
package ini

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// Parser turns INI documents into configuration trees.
type Parser struct {
	options ini.LoadOptions
}

// NewParser creates a new INI parser instance.
func NewParser() *Parser {
	return &Parser{
		options: ini.LoadOptions{
			SpaceBeforeInlineComment: true,
		},
	}
}

// Extensions returns the file extensions handled by the parser.
func (p *Parser) Extensions() []string {
	return []string{"ini"}
}

// Parse decodes data into a map. Empty documents produce an empty map.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	file, err := ini.LoadSources(p.options, data)
	if err != nil {
		return nil, fmt.Errorf("load ini: %w", err)
	}

	flat := make(map[string]any)

	for _, section := range file.Sections() {
		values := make(map[string]any, len(section.Keys()))
		for _, key := range section.Keys() {
			values[key.Name()] = key.Value()
		}

		if section.Name() == ini.DefaultSection {
			for name, value := range values {
				flat[name] = value
			}

			continue
		}

		flat[section.Name()] = values
	}

	return expandDottedKeys(flat), nil
}

func expandDottedKeys(flat map[string]any) map[string]any {
	out := make(map[string]any, len(flat))

	dotted := make([]string, 0)

	for key, value := range flat {
		if strings.Contains(key, ".") {
			dotted = append(dotted, key)

			continue
		}

		out[key] = value
	}

	sort.Strings(dotted)

	for _, key := range dotted {
		head, rest, _ := strings.Cut(key, ".")
		expanded := expandDottedKeys(map[string]any{rest: flat[key]})

		existing, ok := out[head].(map[string]any)
		if !ok {
			out[head] = expanded

			continue
		}

		mergeInto(existing, expanded)
	}

	return out
}

// mergeInto copies src into dst, descending into maps present on both sides.
func mergeInto(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)

		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)

			continue
		}

		dst[key] = value
	}
}
