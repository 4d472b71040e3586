package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/tuib/internal/app"
	"github.com/muurk/tuib/internal/config"
	"github.com/muurk/tuib/internal/dispatch"
	"github.com/muurk/tuib/internal/display"
	"github.com/muurk/tuib/internal/logging"
	"github.com/muurk/tuib/internal/tui"
	"github.com/muurk/tuib/internal/xrandr"
)

func runPanel(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.LoggingOptions()); err != nil {
		return err
	}
	defer logging.Sync()
	logger := logging.GetLogger()

	if err := checkTerminal(int(os.Stdout.Fd())); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	backend := xrandr.NewBackend(cfg.XrandrPath, logger.Named("xrandr"))
	registry, err := display.Enumerate(ctx, backend, display.WithStep(cfg.Step))
	if err != nil {
		return fmt.Errorf("failed to list outputs: %w", err)
	}
	logger.Info("outputs found", zap.Strings("outputs", registry.Names()))

	queue := dispatch.NewQueue(cfg.QueueCapacity)
	panel, err := app.New(queue, logger.Named("app"), app.WithKeyOverrides(cfg.Keys))
	if err != nil {
		return err
	}

	worker := dispatch.NewWorker(queue, panel, registry, logger.Named("worker"))
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	if err := panel.Dispatch(dispatch.InitializeIntent()); err != nil {
		return err
	}

	runErr := tui.Run(tui.NewModel(panel, logging.GetBuffer(), cfg.TickRate))

	cancel()
	queue.Close()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("dispatch worker stopped with error", zap.Error(err))
	}
	return runErr
}

// checkTerminal fails unless fd is a terminal at least the minimum size.
func checkTerminal(fd int) error {
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	return tui.CheckSize(width, height)
}
