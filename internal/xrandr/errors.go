package xrandr

import "fmt"

// ExecutionError represents a failed xrandr invocation.
type ExecutionError struct {
	// Args are the arguments xrandr was started with
	Args []string
	// ExitCode is the process exit code, -1 if it never ran
	ExitCode int
	// Stderr is the captured error output
	Stderr string
	// Underlying error if any
	Err error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("xrandr %v failed (exit code %d): %v\nstderr: %s",
			e.Args, e.ExitCode, e.Err, e.Stderr)
	}
	return fmt.Sprintf("xrandr %v failed (exit code %d)\nstderr: %s",
		e.Args, e.ExitCode, e.Stderr)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
