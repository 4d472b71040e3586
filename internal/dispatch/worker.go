package dispatch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/tuib/internal/display"
)

// Sink receives the results of the worker. Every method is called without
// any backend call in flight.
type Sink interface {
	// Initialize publishes the first registry snapshot.
	Initialize(registry *display.Registry) error
	// SetRegistry publishes a snapshot after a successful device change.
	SetRegistry(registry *display.Registry)
	// Reload publishes a snapshot after re-enumeration.
	Reload(registry *display.Registry)
	// Loaded clears the busy flag set when the intent was dispatched.
	Loaded()
}

// Worker applies intents to the registry it owns.
type Worker struct {
	queue    *Queue
	sink     Sink
	registry *display.Registry
	logger   *zap.Logger
}

// NewWorker creates a worker draining queue. registry is the working copy
// built at startup; only clones of it are ever handed to sink.
func NewWorker(queue *Queue, sink Sink, registry *display.Registry, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		queue:    queue,
		sink:     sink,
		registry: registry,
		logger:   logger,
	}
}

// Run handles intents one at a time until ctx is cancelled or the queue is
// closed and drained.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Debug("dispatch worker started", zap.Int("capacity", w.queue.Cap()))
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("dispatch worker stopped", zap.Error(ctx.Err()))
			return ctx.Err()
		case intent, ok := <-w.queue.Receive():
			if !ok {
				w.logger.Debug("dispatch queue closed, worker exiting")
				return nil
			}
			w.Handle(ctx, intent)
		}
	}
}

// Handle performs one intent. Failures are logged, never returned: the busy
// flag is cleared either way and the render loop is unaffected.
func (w *Worker) Handle(ctx context.Context, intent Intent) {
	defer w.sink.Loaded()

	if err := w.handle(ctx, intent); err != nil {
		w.logger.Error("intent failed",
			zap.Stringer("intent", intent),
			zap.Error(err),
		)
	}
}

func (w *Worker) handle(ctx context.Context, intent Intent) error {
	if intent.targetsDevice() && (intent.Device < 0 || intent.Device >= w.registry.Len()) {
		// The diagnostics tab index, or an index that went stale on reload.
		w.logger.Debug("ignoring intent outside device range",
			zap.Stringer("intent", intent),
			zap.Int("devices", w.registry.Len()),
		)
		return nil
	}

	var err error
	switch intent.Kind {
	case Initialize:
		w.logger.Info("initializing", zap.Int("devices", w.registry.Len()))
		return w.sink.Initialize(w.registry.Clone())

	case Increment:
		err = w.registry.Increment(ctx, intent.Device, intent.Property)

	case Decrement:
		err = w.registry.Decrement(ctx, intent.Device, intent.Property)

	case ScaleTo:
		err = w.registry.ScaleTo(ctx, intent.Device, intent.Property, intent.Level)

	case Reload:
		if err := w.registry.Reload(ctx); err != nil {
			return err
		}
		w.logger.Info("reloaded outputs", zap.Strings("outputs", w.registry.Names()))
		w.sink.Reload(w.registry.Clone())
		return nil

	default:
		return fmt.Errorf("unknown intent kind %d", int(intent.Kind))
	}

	if err != nil {
		return err
	}

	if d, ok := w.registry.Device(intent.Device); ok {
		w.logger.Debug("device updated",
			zap.String("output", d.Name),
			zap.Stringer("property", intent.Property),
			zap.Int("value", d.Value(intent.Property)),
		)
	}
	w.sink.SetRegistry(w.registry.Clone())
	return nil
}
