package config

import (
	"fmt"
	"strings"
)

// OptionalMarker prefixes a group element whose absence is tolerated.
const OptionalMarker = "?"

// Spec describes where configuration files live. It is either a Path or a
// Group of specs.
type Spec interface {
	spec()
}

// Path names a configuration file or a directory of configuration files.
// Which of the two it is gets decided when the Spec is resolved.
//
// Optional is only honoured when the Path is an element of a Group: a
// missing optional path is skipped instead of failing the load.
type Path struct {
	Value    string
	Optional bool
}

// Group is an ordered sequence of specs. Files are loaded in group order.
type Group []Spec

func (Path) spec()  {}
func (Group) spec() {}

// File returns a required Path.
func File(path string) Path {
	return Path{Value: path}
}

// Optional returns a Path that may be missing when used inside a Group.
func Optional(path string) Path {
	return Path{Value: path, Optional: true}
}

// ParseSpec normalizes raw path input into a Spec.
//
// Accepted input:
//   - nil, which yields a nil Spec (an empty configuration)
//   - a Spec, returned as is
//   - a string naming a file or directory
//   - a []string or []any group, whose string elements may carry the
//     OptionalMarker prefix and whose []any elements may nest further groups
//
// The marker is only recognized on string elements of a group. A top-level
// string is always taken literally and nested groups are never optional.
func ParseSpec(raw any) (Spec, error) {
	switch typed := raw.(type) {
	case nil:
		return nil, nil
	case Spec:
		return typed, nil
	case string:
		return File(typed), nil
	case []string:
		group := make(Group, 0, len(typed))
		for _, element := range typed {
			group = append(group, parseElement(element))
		}

		return group, nil
	case []any:
		group := make(Group, 0, len(typed))

		for i, element := range typed {
			if str, ok := element.(string); ok {
				group = append(group, parseElement(str))

				continue
			}

			if element == nil {
				return nil, fmt.Errorf("%w: element %d is nil", ErrInvalidSpec, i)
			}

			nested, err := ParseSpec(element)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			group = append(group, nested)
		}

		return group, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidSpec, raw)
	}
}

// MustParseSpec is like ParseSpec but panics on error.
func MustParseSpec(raw any) Spec {
	spec, err := ParseSpec(raw)
	if err != nil {
		panic(err)
	}

	return spec
}

func parseElement(element string) Path {
	if !strings.HasPrefix(element, OptionalMarker) {
		return File(element)
	}

	return Optional(strings.TrimLeft(element, OptionalMarker))
}
