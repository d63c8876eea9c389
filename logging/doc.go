// Package logging builds the slog loggers used by jsonconfig.
// Output is JSON by default; a text handler is available for terminals.
package logging
