// Package config loads the user configuration for tuib.
//
// The configuration is a YAML file that tunes the backend, the render loop,
// logging and keybindings. It is only ever read; the panel never writes it.
//
// # Configuration File Location
//
//   - $XDG_CONFIG_HOME/tuib/config.yaml, or
//   - $HOME/.config/tuib/config.yaml
//
// A different file can be given with --config.
//
// # Example
//
//	version: 1
//	xrandr_path: /usr/bin/xrandr
//	tick_rate: 50ms
//	step: 5
//	log_level: debug
//	keys:
//	  Quit: [q, esc]
//	  Reload: [r]
//
// Omitted fields keep their defaults.
package config
