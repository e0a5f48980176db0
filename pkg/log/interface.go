// Package log defines the structured logging interface used across the
// module, with a zap-backed implementation. Library code accepts a Logger and
// stays silent by default; binaries pick a concrete configuration.
package log

// Logger defines the interface for structured logging operations.
//
// Example usage:
//
//	logger.Info("registered metric", log.String("field", "requests"))
//	child := logger.With(log.String("component", "schema"))
type Logger interface {
	// Debug logs a debug message with optional structured fields.
	Debug(msg string, fields ...Field)

	// Info logs an informational message with optional structured fields.
	Info(msg string, fields ...Field)

	// Warn logs a warning message with optional structured fields.
	Warn(msg string, fields ...Field)

	// Error logs an error message with optional structured fields.
	Error(msg string, fields ...Field)

	// With creates a new logger instance with additional structured fields
	// included in all subsequent log entries.
	With(fields ...Field) Logger
}

// Field represents a structured logging field with a key-value pair.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field for structured logging.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field for structured logging.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field for structured logging.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field for structured logging.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Strings creates a string-slice field for structured logging.
func Strings(key string, value []string) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field under the key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value type for structured logging.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
