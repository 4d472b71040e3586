// Package keymap resolves raw key symbols to semantic Actions.
//
// A Table is built from the set of currently enabled Actions. Build is the
// only place key conflicts are checked: if any symbol is claimed by more
// than one distinct Action the whole table is rejected with a
// *ConflictError naming every conflicting symbol and every Action that
// claims it. A Table that was built successfully resolves each symbol to
// at most one Action.
//
// Key symbols use the Bubble Tea spelling of tea.KeyMsg.String(), for
// example "q", "L", ">", "left" or "ctrl+c".
//
// The active action set grows once the application is initialized:
//
//	keymap.Build(keymap.BaseActions())                  // Quit only
//	keymap.Build(keymap.FullActions(), keymap.WithOverrides(cfg.Keys))
//
// Overrides are keyed by action name. An unknown name is rejected, with
// the closest known name offered as a hint.
//
// Table also implements help.KeyMap so it can be passed straight to the
// bubbles help component.
package keymap
