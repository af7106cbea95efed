// Package xml provides the XML parser for the config loader.
//
// The root element is dropped and its children form the tree:
//   - an element with child elements becomes a map
//   - a leaf with text only becomes a string
//   - an empty leaf becomes an empty map
//   - attributes are collected under the "@attributes" key
//   - the text of a leaf that also has attributes is stored under "@value"
//   - repeated sibling elements become a list in document order
package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// AttributesKey holds the attributes of an element.
	AttributesKey = "@attributes"
	// ValueKey holds the text of a leaf element that also carries attributes.
	ValueKey = "@value"
)

// ErrNotMapping is returned when the root element holds only text.
var ErrNotMapping = errors.New("xml root element does not contain a mapping")

// Parser turns XML documents into configuration trees.
type Parser struct{}

// NewParser creates a new XML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions handled by the parser.
func (p *Parser) Extensions() []string {
	return []string{"xml"}
}

type element struct {
	name     string
	attrs    map[string]any
	children []*element
	text     strings.Builder
}

// Parse decodes data into a map. Empty documents produce an empty map.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	root, err := readTree(data)
	if err != nil {
		return nil, err
	}

	if root == nil {
		return map[string]any{}, nil
	}

	tree, ok := root.value().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrNotMapping, root.name)
	}

	return tree, nil
}

func readTree(data []byte) (*element, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *element
		stack []*element
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decode xml: %w", err)
		}

		switch typed := token.(type) {
		case xml.StartElement:
			current := &element{name: typed.Name.Local}

			if len(typed.Attr) > 0 {
				current.attrs = make(map[string]any, len(typed.Attr))
				for _, attr := range typed.Attr {
					current.attrs[attr.Name.Local] = attr.Value
				}
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("decode xml: second root element <%s>", current.name)
				}

				root = current
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, current)
			}

			stack = append(stack, current)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(typed)
			}
		}
	}

	return root, nil
}

func (e *element) value() any {
	text := strings.TrimSpace(e.text.String())

	if len(e.children) == 0 {
		if e.attrs == nil {
			if text == "" {
				return map[string]any{}
			}

			return text
		}

		out := map[string]any{AttributesKey: e.attrs}
		if text != "" {
			out[ValueKey] = text
		}

		return out
	}

	out := make(map[string]any, len(e.children)+1)
	if e.attrs != nil {
		out[AttributesKey] = e.attrs
	}

	for _, child := range e.children {
		value := child.value()

		existing, seen := out[child.name]
		if !seen {
			out[child.name] = value

			continue
		}

		if list, ok := existing.([]any); ok {
			out[child.name] = append(list, value)
		} else {
			out[child.name] = []any{existing, value}
		}
	}

	return out
}
