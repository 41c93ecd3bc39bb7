// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define what the application needs from the outside world; adapters in
// the infrastructure layer implement them.
package port

import "context"

// Logger defines the interface for structured logging.
// The infrastructure adapter wraps pkg/logger (zap).
//
// Example usage:
//
//	log.Info("Shipment calculated", "items", 3, "unit_system", "metric")
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a logger with additional context fields.
	With(keysAndValues ...any) Logger

	// WithContext returns a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}
