// Package logger provides the process-wide Logger, backed by log/slog and writing
// either to the console or to a size-rotated file.
package logger
