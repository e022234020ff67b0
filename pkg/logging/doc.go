// Package logging provides structured logging utilities for recipesnap
// components.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, module/version context on every record, LOG_LEVEL
// environment configuration, and source location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("recipesnap", version)
//
//	    slog.Info("snapshot complete", "recipes", n)
//	    slog.Warn("skipping faulty recipe record", "error", err)
//	}
//
// The LOG_LEVEL environment variable controls verbosity (DEBUG, INFO, WARN,
// ERROR; case-insensitive, defaults to INFO):
//
//	LOG_LEVEL=debug recipesnap snapshot --file recipes.yaml
package logging
