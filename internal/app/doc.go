// Package app holds the navigation state of the panel and the lock that
// guards everything shared between the render loop and the dispatch worker.
//
// State is a sum type with two variants, Uninitialized and *Initialized.
// The only transition between them is Initialize; every other operation is
// a self-loop on *Initialized and a no-op while uninitialized.
//
// App wraps the state together with the active keymap table and an advisory
// busy flag behind a single sync.Mutex. All access, from the render loop or
// from the worker, takes that lock for the duration of one read or one
// transition and releases it immediately. Device mutations are never
// performed here: MoveRight, MoveLeft and the scale actions only produce a
// dispatch.Intent for the worker, whose result comes back through
// SetRegistry.
package app
