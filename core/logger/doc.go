// Package logger provides a structured logging facility based on Zap.
//
// It builds a logger for either development (debug level, human friendly) or
// production (json, sampled) use and integrates with the Fiber web framework.
//
// # Request Correlation
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so every line written while
// serving a request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("File not found", zap.String("path", c.Path()))
package logger
