// Package logging provides giffer's slog construction and attribute helpers.
//
// New builds a logger with either a compact console handler (colorized when
// the writer is a terminal) or a JSON handler. Log output goes to stderr so
// stdout stays reserved for pipeline results.
package logging
