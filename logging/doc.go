// Package logging builds the structured slog loggers used by the loader, the
// Fx application and the CLI. JSON output is the default; text output is
// available for interactive use.
package logging
