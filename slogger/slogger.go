// Package slogger provides structured logging for the Zava agent service.
// The Logger interface keeps packages decoupled from the underlying handler;
// the default implementation is slog with a tint console handler.
package slogger

import "strings"

// DefaultLogger is used when no logger is supplied explicitly.
var DefaultLogger Logger = NewDevNullLogger()

// Logger is the structured logging interface used throughout the service.
type Logger interface {
	// Debug logs a message at debug level with optional key-value pairs
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level with optional key-value pairs
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level with optional key-value pairs
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level with optional key-value pairs
	Error(msg string, keysAndValues ...any)

	// With returns a Logger that includes the given key-value pairs in every entry
	With(keysAndValues ...any) Logger
}

// LevelFromString converts a string to a LogLevel. Unknown values map to the
// default level.
func LevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return DefaultLogLevel
	}
}
