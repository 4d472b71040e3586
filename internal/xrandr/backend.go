package xrandr

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/tuib/internal/display"
)

// DefaultPath is the xrandr binary looked up on PATH when none is configured.
const DefaultPath = "xrandr"

// runFunc executes a command and returns its captured output.
type runFunc func(ctx context.Context, path string, args ...string) (stdout, stderr string, exitCode int, err error)

// Backend runs xrandr via os/exec.
type Backend struct {
	path   string
	logger *zap.Logger
	run    runFunc
}

// NewBackend creates a backend for the xrandr binary at path.
func NewBackend(path string, logger *zap.Logger) *Backend {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{
		path:   path,
		logger: logger,
		run:    runCommand,
	}
}

// Outputs lists connected outputs in xrandr order.
func (b *Backend) Outputs(ctx context.Context) ([]string, error) {
	stdout, err := b.exec(ctx, "--query")
	if err != nil {
		return nil, err
	}

	outputs := ParseConnected(stdout)
	b.logger.Debug("enumerated xrandr outputs",
		zap.Strings("outputs", outputs),
	)
	return outputs, nil
}

// Apply sets brightness and gamma of one output.
func (b *Backend) Apply(ctx context.Context, output string, settings display.Settings) error {
	_, err := b.exec(ctx,
		"--output", output,
		"--brightness", settings.Brightness,
		"--gamma", settings.Gamma,
	)
	if err != nil {
		return err
	}

	b.logger.Info("applied display settings",
		zap.String("output", output),
		zap.String("brightness", settings.Brightness),
		zap.String("gamma", settings.Gamma),
	)
	return nil
}

func (b *Backend) exec(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, exitCode, err := b.run(ctx, b.path, args...)

	b.logger.Debug("xrandr execution complete",
		zap.Strings("args", args),
		zap.Int("exit_code", exitCode),
		zap.Int("stdout_size", len(stdout)),
		zap.String("stderr", stderr),
	)

	if err != nil || exitCode != 0 {
		return "", &ExecutionError{
			Args:     args,
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr),
			Err:      err,
		}
	}
	return stdout, nil
}

// ParseConnected extracts the names of connected outputs from xrandr --query
// output.
func ParseConnected(output string) []string {
	var names []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[1] == "connected" {
			names = append(names, fields[0])
		}
	}
	return names
}

func runCommand(ctx context.Context, path string, args ...string) (stdout, stderr string, exitCode int, err error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err = cmd.Run()

	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			// Command failed to start
			exitCode = -1
		}
	}

	return stdout, stderr, exitCode, err
}
