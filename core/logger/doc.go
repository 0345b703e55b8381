// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for development (console, debug) or production
// (json) use and integrates with the Fiber web framework.
//
// # Context Awareness
//
// Every request carries a RayID set by the rayid middleware. WithRayID attaches
// it to a logger so that all entries emitted while reconciling one payload can
// be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//   - Service: value of the "service" field on every entry
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Receive failed", zap.Error(err))
package logger
