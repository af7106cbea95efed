package config

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule.
const ModuleName = "config"

type moduleParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// NewModule creates an Fx module that loads spec once and provides *Config.
// A *slog.Logger present in the container is used for loader output.
// A load failure fails application startup.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(spec Spec, opts ...LoaderOption) fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(func(params moduleParams) (*Config, error) {
			loaderOpts := opts
			if params.Logger != nil {
				loaderOpts = append([]LoaderOption{WithLogger(params.Logger)}, opts...)
			}

			cfg, err := New(spec, loaderOpts...)
			if err != nil {
				return nil, fmt.Errorf("loading configuration: %w", err)
			}

			return cfg, nil
		}),
	)
}

type sectionParams struct {
	fx.In

	Config *Config
	Logger *slog.Logger `optional:"true"`
}

// ProvideSection creates an Fx option that provides *T decoded from key.
// A *slog.Logger present in the container reports applied defaults.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ProvideSection[T any](key string, opts ...ProviderOption) fx.Option {
	return fx.Provide(func(params sectionParams) (*T, error) {
		providerOpts := opts
		if params.Logger != nil {
			providerOpts = append([]ProviderOption{WithProviderLogger(params.Logger)}, opts...)
		}

		return Provider(new(T), key, providerOpts...)(params.Config)
	})
}
