// Package logging provides the process-wide zap logger.
//
// The terminal is owned by the UI, so entries never go to stdout. They are
// kept in a Buffer of recent lines that the diagnostics tab renders, and
// optionally copied to a file.
//
// # Configuration
//
// Initialize logging once at startup:
//
//	if err := logging.Initialize(logging.Options{Level: "debug", Lines: 500}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// When Options.Level is empty the TUIB_LOG_LEVEL environment variable is
// used, and info when that is unset too.
//
// # Output Format
//
// Entries use the console encoder:
//
//	2025-11-25T10:30:45.123-0800	INFO	xrandr/backend.go:69	applied display settings	{"output": "HDMI-1"}
//
// Components receive a *zap.Logger by injection; GetLogger returns the
// global one for wiring in main.
package logging
