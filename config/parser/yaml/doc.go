// Package yaml provides the YAML parser for the config loader.
//
// This package uses github.com/goccy/go-yaml. It claims the "yaml" and "yml"
// extensions and decodes a document into a map[string]any tree. Mappings
// with non-string keys are converted to string keys so that every tree has
// the same shape regardless of the source format.
//
// Usage:
//
//	parser := yaml.NewParser()
//	tree, err := parser.Parse([]byte("server:\n  port: 8080\n"))
package yaml
