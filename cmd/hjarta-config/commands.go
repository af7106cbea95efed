package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/0xalexb/hjarta-config/config"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	errUnknownFormat = errors.New("unknown output format")
	errNotJSON       = errors.New("value cannot be encoded as JSON")
)

func newDumpCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump <path>...",
		Short: "Print the merged configuration tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args)
			if err != nil {
				return err
			}

			return writeTree(cmd.OutOrStdout(), cfg.All(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format (json, yaml)")

	return cmd
}

func newGetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key> <path>...",
		Short: "Print a single value addressed by a dotted key",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			cfg, err := opts.load(cmd, args[1:])
			if err != nil {
				return err
			}

			if !cfg.Has(key) {
				return fmt.Errorf("%w: %s", config.ErrKeyNotFound, key)
			}

			value := cfg.Get(key, nil)

			switch value.(type) {
			case map[string]any, []any:
				return writeTree(cmd.OutOrStdout(), value, formatJSON)
			default:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), formatScalar(value))

				return err
			}
		},
	}
}

func newKeysCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <path>...",
		Short: "List every leaf key with its type and value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args)
			if err != nil {
				return err
			}

			leaves := map[string]any{}
			flatten("", cfg.All(), leaves)

			keys := make([]string, 0, len(leaves))
			for key := range leaves {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				value := leaves[key]
				rows = append(rows, []string{key, typeName(value), formatScalar(value)})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"KEY", "TYPE", "VALUE"}, rows))

			return err
		},
	}
}

func newFormatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List registered parsers in lookup order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsers := opts.registry().Parsers()

			rows := make([][]string, 0, len(parsers))
			for i, parser := range parsers {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					fmt.Sprintf("%T", parser),
					strings.Join(parser.Extensions(), ", "),
				})
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "PARSER", "EXTENSIONS"}, rows))

			return err
		},
	}
}

func writeTree(w io.Writer, tree any, format string) error {
	var (
		out []byte
		err error
	)

	switch format {
	case formatJSON:
		out, err = json.MarshalIndent(tree, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case formatYAML:
		out, err = yaml.Marshal(tree)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	var unsupported *json.UnsupportedValueError
	if errors.As(err, &unsupported) {
		return fmt.Errorf("%w: %s has no JSON form, use --format yaml", errNotJSON, unsupported.Str)
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	_, err = w.Write(out)

	return err
}

// flatten collects the leaves of tree under dotted keys, using list indices
// as segments the same way Config.Get addresses them.
func flatten(prefix string, value any, out map[string]any) {
	switch typed := value.(type) {
	case map[string]any:
		if len(typed) == 0 && prefix != "" {
			out[prefix] = typed
		}

		for key, child := range typed {
			flatten(join(prefix, key), child, out)
		}
	case []any:
		if len(typed) == 0 && prefix != "" {
			out[prefix] = typed
		}

		for i, child := range typed {
			flatten(join(prefix, strconv.Itoa(i)), child, out)
		}
	default:
		out[prefix] = value
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + config.KeySeparator + key
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "map"
	case []any:
		return "list"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func formatScalar(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case map[string]any:
		return "{}"
	case []any:
		return "[]"
	default:
		return fmt.Sprint(typed)
	}
}
