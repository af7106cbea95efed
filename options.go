package hjarta

import (
	"io"

	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules       []fx.Option
	LogLevel      string
	LogFormat     string
	LogOutput     io.Writer
	ConfigSpec    config.Spec
	LoaderOptions []config.LoaderOption
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfig loads spec at startup and provides *config.Config to the container.
// The application logger is passed to the loader.
func WithConfig(spec config.Spec, loaderOpts ...config.LoaderOption) Option {
	return func(opts *Options) {
		opts.ConfigSpec = spec
		opts.LoaderOptions = append(opts.LoaderOptions, loaderOpts...)
	}
}

// WithConfigSection provides *T decoded from the configuration section at key.
// It requires WithConfig.
func WithConfigSection[T any](key string, providerOpts ...config.ProviderOption) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, config.ProvideSection[T](key, providerOpts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects log output. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
