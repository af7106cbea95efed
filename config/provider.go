package config

import (
	"fmt"
	"log/slog"

	"dario.cat/mergo"
)

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

type providerOptions struct {
	defaults any
	logger   *slog.Logger
}

// ProviderOption configures Provider.
type ProviderOption func(*providerOptions)

// WithDefaults fills zero-valued fields of the decoded target from defaults.
// defaults must be a value of, or a pointer to, the target's type.
func WithDefaults(defaults any) ProviderOption {
	return func(opts *providerOptions) {
		opts.defaults = defaults
	}
}

// WithProviderLogger sets the logger that reports applied defaults.
// slog.Default() is used when unset.
func WithProviderLogger(logger *slog.Logger) ProviderOption {
	return func(opts *providerOptions) {
		opts.logger = logger
	}
}

// Provider returns a function that decodes the section at key into target,
// applies defaults and validates the result. An empty key decodes the whole tree.
//
// The returned function is Fx-friendly:
//
//	fx.Provide(config.Provider(new(DatabaseConfig), "database"))
func Provider[T any](target *T, key string, opts ...ProviderOption) func(*Config) (*T, error) {
	var options providerOptions

	for _, apply := range opts {
		apply(&options)
	}

	if options.logger == nil {
		options.logger = slog.Default()
	}

	return func(cfg *Config) (*T, error) {
		err := cfg.UnmarshalKey(key, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		if options.defaults != nil {
			err = mergo.Merge(target, options.defaults)
			if err != nil {
				return nil, fmt.Errorf("merging defaults error: %w", err)
			}
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				options.logger.Info("defaults applied", slog.String("key", key))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
