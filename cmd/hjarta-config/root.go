package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/parser/jsonc"
	"github.com/0xalexb/hjarta-config/config/parser/toml"
	"github.com/0xalexb/hjarta-config/logging"
)

var errNoPaths = errors.New("at least one configuration path is required")

type rootOptions struct {
	logLevel    string
	logFormat   string
	withExtras  bool
	concurrency int
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "hjarta-config",
		Short:         "Load and inspect multi-format configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", logging.FormatText, "Log format (text, json)")
	flags.BoolVar(&opts.withExtras, "with-extras", false, "Also accept TOML and JSONC files")
	flags.IntVar(&opts.concurrency, "concurrency", 1, "Number of files parsed in parallel")

	rootCmd.AddCommand(newDumpCommand(opts))
	rootCmd.AddCommand(newGetCommand(opts))
	rootCmd.AddCommand(newKeysCommand(opts))
	rootCmd.AddCommand(newFormatsCommand(opts))

	return rootCmd
}

func (o *rootOptions) registry() *config.Registry {
	registry := config.DefaultRegistry()
	if o.withExtras {
		registry = registry.With(toml.NewParser(), jsonc.NewParser())
	}

	return registry
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logging.NewLogger(logging.LoggerConfig{Level: o.logLevel, Format: o.logFormat}, cmd.ErrOrStderr())
}

func (o *rootOptions) load(cmd *cobra.Command, paths []string) (*config.Config, error) {
	spec, err := specFromArgs(paths)
	if err != nil {
		return nil, err
	}

	return config.New(spec,
		config.WithRegistry(o.registry()),
		config.WithLogger(o.logger(cmd)),
		config.WithConcurrency(o.concurrency),
	)
}

// specFromArgs treats one plain path as a single spec and anything else as a group.
func specFromArgs(paths []string) (config.Spec, error) {
	if len(paths) == 0 {
		return nil, errNoPaths
	}

	if len(paths) == 1 && !strings.HasPrefix(paths[0], config.OptionalMarker) {
		return config.File(paths[0]), nil
	}

	return config.ParseSpec(paths)
}
