// Package native provides the native-code parser for the config loader.
//
// A native configuration file holds a single Go expression: a composite
// literal describing the tree. The expression is parsed with go/parser and
// evaluated structurally; nothing is compiled or executed.
//
//	map[string]any{
//	    "server": map[string]any{
//	        "host":  "0.0.0.0",
//	        "port":  8080,
//	        "ratio": 0.75,
//	    },
//	    "tags": []any{"api", "public"},
//	    "debug": false,
//	}
//
// Supported forms:
//   - map literals with string keys, any value type (map[string]any,
//     map[string]interface{}, map[string]string, ...)
//   - slice and array literals
//   - nested literals with the type elided ({"k": "v"} or {1, 2})
//   - string, rune, integer and float literals, optionally negated
//   - the identifiers true, false and nil
//
// Integers decode as int64 (uint64 when they do not fit), floats as float64
// and rune literals as one-character strings.
package native
