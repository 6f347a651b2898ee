// Package logging provides structured logging for the elysium dashboard.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent by default: nothing is written unless a level is requested with
// -v/--verbose, --log-level or the ELYSIUM_LOG_LEVEL environment variable.
//
// # Output
//
// While the dashboard runs it owns the terminal, so log lines are appended to
// a file in the data directory instead of stdout:
//
//	if err := logging.Initialize("debug", filepath.Join(dataDir, logging.LogFileName)); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Specialized Logging
//
// Dispatch loop:
//
//	logging.LogAction("mode_change", "input")
//
// Background refresh:
//
//	logging.LogRefresh("completed", time.Since(start), err)
//
// Remote listing calls:
//
//	logging.LogAPICall("greengrassv2", "ListCoreDevices", pages, len(rows), elapsed)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The refresh goroutine
// and the event loop log through the same logger.
package logging
