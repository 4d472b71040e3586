// Package xrandr implements display.Backend on top of the xrandr utility.
//
// Two invocations are used:
//
//	xrandr --query
//	xrandr --output <name> --brightness <ratio> --gamma <r:g:b>
//
// Connected outputs are the --query lines whose second field is
// "connected". Every call runs synchronously with the caller's context and
// no timeout of its own; a hung xrandr blocks only the calling goroutine.
//
// Failures are returned as *ExecutionError carrying the exit code and
// stderr of the process.
package xrandr
