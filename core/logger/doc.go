// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production). Console encoding writes to the
// error stream, keeping stdout free for machine-readable output.
//
// # Context Awareness
//
// Reconciliation runs concurrently across many auto-attendants, so log
// lines must be attributable to the entity they concern. The
// WithAutoAttendant helper attaches the location and auto-attendant name to
// the log entry, ensuring that all lines related to one reconciliation can
// be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("resolved auto attendants", zap.Int("count", n))
//
//	// Per auto-attendant:
//	l := logger.WithAutoAttendant(log, aa)
//	l.Info("uploaded new greeting")
package logger
