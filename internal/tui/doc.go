// Package tui is the Bubble Tea front end of the panel.
//
// The model owns no panel state of its own. Every key press and every
// tick goes through app.App.Step, which returns the snapshot the next
// frame is drawn from, so View never touches the shared lock.
//
// Screens:
//   - one tab per output with a gauge for brightness and each gamma channel
//   - a Diagnostics tab with the recent log lines and the full key table
//
// Components used:
//   - bubbles/progress: gauges
//   - bubbles/spinner: busy indicator while intents are in flight
//   - bubbles/viewport: scrolling log pane
//   - bubbles/help: key tables built from the active keymap
package tui
