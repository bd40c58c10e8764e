// Package logging provides structured logging for the deckd daemon.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the daemon. It provides both general logging
// functions and specialized functions for key-event and render logging.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (key events, render passes, key dumps)
//   - Info: Normal operations (key fires, page switches, device setup)
//   - Warn: Non-fatal issues (presses on empty slots, dropped config keys)
//   - Error: Fatal issues (startup failures, render aborts)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Key fired",
//	    zap.String("key", "spotify"),
//	    zap.String("page", "main"),
//	    zap.Bool("pressed", true),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogKeyEvent(page, index, pressed)
//	logging.LogPageSwitch("main", "media")
//	logging.LogRender("media", 15)
//
// # Configuration
//
// Initialize logging at daemon startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When no level is given and DECKD_LOG_LEVEL is unset, the logger is a nop,
// keeping CLI command output clean.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
