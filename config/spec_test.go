package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      any
		expected Spec
	}{
		{
			name:     "nil",
			raw:      nil,
			expected: nil,
		},
		{
			name:     "single path",
			raw:      "config/app.yaml",
			expected: File("config/app.yaml"),
		},
		{
			name:     "top-level marker is literal",
			raw:      "?config/app.yaml",
			expected: File("?config/app.yaml"),
		},
		{
			name:     "string group with optional element",
			raw:      []string{"app.json", "?local.json"},
			expected: Group{File("app.json"), Optional("local.json")},
		},
		{
			name:     "every leading marker is stripped",
			raw:      []string{"??local.json"},
			expected: Group{Optional("local.json")},
		},
		{
			name:     "marker in the middle is kept",
			raw:      []string{"conf?.d/app.json"},
			expected: Group{File("conf?.d/app.json")},
		},
		{
			name: "nested groups are never optional",
			raw:  []any{"app.json", []string{"?a.ini", "b.ini"}, []any{"?c.xml"}},
			expected: Group{
				File("app.json"),
				Group{Optional("a.ini"), File("b.ini")},
				Group{Optional("c.xml")},
			},
		},
		{
			name:     "spec values pass through",
			raw:      []any{Optional("x.yaml"), Group{File("y.yaml")}},
			expected: Group{Optional("x.yaml"), Group{File("y.yaml")}},
		},
		{
			name:     "existing spec is returned as is",
			raw:      Group{File("z.go")},
			expected: Group{File("z.go")},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			spec, err := ParseSpec(testCase.raw)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, spec)
		})
	}
}

func TestParseSpec_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  any
	}{
		{name: "number", raw: 42},
		{name: "map", raw: map[string]string{"a": "b"}},
		{name: "nil element", raw: []any{"a.json", nil}},
		{name: "nested invalid element", raw: []any{[]any{true}}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			spec, err := ParseSpec(testCase.raw)
			require.ErrorIs(t, err, ErrInvalidSpec)
			assert.Nil(t, spec)
		})
	}
}

func TestMustParseSpec_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParseSpec(3.14) })
	assert.NotPanics(t, func() { MustParseSpec([]string{"a.json"}) })
}
