package dispatch

import (
	"errors"
	"sync"
)

// DefaultCapacity is large relative to how fast a user can press keys while
// xrandr calls are in flight.
const DefaultCapacity = 256

var (
	// ErrQueueClosed is returned by Send after Close.
	ErrQueueClosed = errors.New("dispatch queue closed")
	// ErrQueueFull is returned by Send when the queue is at capacity.
	ErrQueueFull = errors.New("dispatch queue full")
)

// Queue is a bounded multi-producer/single-consumer FIFO of intents.
type Queue struct {
	mu     sync.Mutex
	ch     chan Intent
	closed bool
}

// NewQueue creates a queue; capacity below 1 uses DefaultCapacity.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Queue{
		ch: make(chan Intent, capacity),
	}
}

// Send enqueues intent without blocking.
func (q *Queue) Send(intent Intent) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.ch <- intent:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops further sends. Intents already queued can still be received.
// Calling Close more than once is harmless.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.ch)
	}
}

// Len returns the number of queued intents.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return cap(q.ch)
}

// Receive returns the consumer side of the queue.
func (q *Queue) Receive() <-chan Intent {
	return q.ch
}
