package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
)

// KeySeparator separates the segments of a dotted key.
const KeySeparator = "."

// TagName is the struct tag consulted by Unmarshal.
const TagName = "config"

// Config gives dotted-key access to a loaded configuration tree.
//
// Keys address nested maps segment by segment; a numeric segment indexes
// into a list. "database.replicas.0.host" reads the host of the first
// replica. The empty key addresses the whole tree.
type Config struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewConfig wraps data. A nil map is replaced by an empty one.
func NewConfig(data map[string]any) *Config {
	if data == nil {
		data = make(map[string]any)
	}

	return &Config{data: data}
}

// Get returns the value at key, or def when the key is absent.
// A key that exists with a nil value returns nil.
func (c *Config) Get(key string, def any) any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := lookup(c.data, key)
	if !ok {
		return def
	}

	return value
}

// Has reports whether key exists in the tree.
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := lookup(c.data, key)

	return ok
}

// Set stores value at key, creating intermediate maps as needed. Scalars
// found along the way are replaced by maps. A numeric segment past the end
// of a list extends it, and a non-numeric one converts the list into a map
// that keeps the existing elements under their indices. Setting the empty
// key is a no-op.
func (c *Config) Set(key string, value any) {
	if key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	assign(c.data, strings.Split(key, KeySeparator), value)
}

// All returns a deep copy of the tree.
func (c *Config) All() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	copied, _ := deepCopy(c.data).(map[string]any)

	return copied
}

// Sub returns a Config over a copy of the map found at key.
func (c *Config) Sub(key string) (*Config, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := lookup(c.data, key)
	if !ok {
		return nil, false
	}

	section, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}

	copied, _ := deepCopy(section).(map[string]any)

	return NewConfig(copied), true
}

// Unmarshal decodes the whole tree into target.
func (c *Config) Unmarshal(target any) error {
	return c.UnmarshalKey("", target)
}

// UnmarshalKey decodes the value at key into target using the "config"
// struct tag. Strings are converted to numbers, booleans, durations and
// encoding.TextUnmarshaler implementations where the target asks for them.
func (c *Config) UnmarshalKey(key string, target any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := lookup(c.data, key)
	if !ok {
		return fmt.Errorf("key %q: %w", key, ErrKeyNotFound)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(value)
	if err != nil {
		return fmt.Errorf("decoding key %q: %w", key, err)
	}

	return nil
}

func lookup(data map[string]any, key string) (any, bool) {
	if key == "" {
		return data, true
	}

	var current any = data

	for _, segment := range strings.Split(key, KeySeparator) {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}

			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}

			current = node[index]
		default:
			return nil, false
		}
	}

	return current, true
}

// assign stores value under segments inside node and returns the node to
// keep in the parent. Lists grow to fit a numeric index, padding with nil;
// any other segment turns the list into a map keyed by the element indices.
func assign(node any, segments []string, value any) any {
	if len(segments) == 0 {
		return value
	}

	head := segments[0]

	switch typed := node.(type) {
	case map[string]any:
		typed[head] = assign(typed[head], segments[1:], value)

		return typed
	case []any:
		index, err := strconv.Atoi(head)
		if err != nil || index < 0 {
			converted := listToMap(typed)
			converted[head] = assign(converted[head], segments[1:], value)

			return converted
		}

		for len(typed) <= index {
			typed = append(typed, nil)
		}

		typed[index] = assign(typed[index], segments[1:], value)

		return typed
	default:
		return assign(make(map[string]any), segments, value)
	}
}

func listToMap(list []any) map[string]any {
	out := make(map[string]any, len(list)+1)
	for i, element := range list {
		out[strconv.Itoa(i)] = element
	}

	return out
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[key] = deepCopy(child)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, child := range typed {
			out[i] = deepCopy(child)
		}

		return out
	default:
		return value
	}
}
