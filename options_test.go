package hjarta_test

import (
	"bytes"
	"testing"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		var opts hjarta.Options

		hjarta.WithLogLevel(level)(&opts)

		require.Equal(t, level, opts.LogLevel)
	}
}

func TestWithLogFormatAndOutput(t *testing.T) {
	t.Parallel()

	var (
		opts hjarta.Options
		buf  bytes.Buffer
	)

	hjarta.WithLogFormat("text")(&opts)
	hjarta.WithLogOutput(&buf)(&opts)

	require.Equal(t, "text", opts.LogFormat)
	require.Same(t, &buf, opts.LogOutput)
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts hjarta.Options

	hjarta.WithModules(fx.Module("test1"))(&opts)
	require.Len(t, opts.Modules, 1)

	hjarta.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	require.Len(t, opts.Modules, 3)
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	var opts hjarta.Options

	spec := config.Group{config.File("app.yaml"), config.Optional("local.yaml")}

	hjarta.WithConfig(spec, config.WithConcurrency(2))(&opts)

	require.Equal(t, spec, opts.ConfigSpec)
	require.Len(t, opts.LoaderOptions, 1)
}

func TestWithConfigSection(t *testing.T) {
	t.Parallel()

	var opts hjarta.Options

	hjarta.WithConfigSection[workerConfig]("workers")(&opts)

	require.Len(t, opts.Modules, 1)
}
