// Package dispatch carries device work from the render loop to a worker.
//
// The render side enqueues Intents on a Queue; a single Worker drains the
// queue in FIFO order, runs the matching display.Registry operation and
// publishes a fresh registry snapshot to its Sink. Intents carry no reply
// channel: completion is observed through the published snapshot and the
// Sink's busy flag being cleared.
//
// # Flow
//
//	render loop                queue                 worker
//	-----------                -----                 ------
//	Send(Increment(0,Red)) --> [ ... ] --> Handle --> registry.Increment (xrandr)
//	                                                  sink.SetRegistry(clone)
//	                                                  sink.Loaded()
//
// The worker owns the working registry and never touches the sink while a
// backend call is in flight, so a slow or hung xrandr only stalls the
// worker.
//
// # Capacity
//
// Send never blocks. A full queue returns ErrQueueFull and a closed one
// ErrQueueClosed; the caller reports the failure and keeps rendering.
package dispatch
