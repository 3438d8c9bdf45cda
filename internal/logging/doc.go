// Package logging assembles the structured slog loggers used by dicomtags.
//
// It owns the console and JSON handlers, maps configured level names onto slog
// levels, and fans output to stdout plus an optional log file. A no-op logger
// is provided for tests and wiring code that cannot fail.
//
// ProgressSampler decides when a running file count deserves a log line so the
// traversal code never formats progress output itself.
package logging
