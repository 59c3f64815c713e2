// Package config defines cellvim's settings.
//
// Settings come from a TOML file, CELLVIM_ environment variables and
// command line flags, merged by viper in cmd/cellvim and decoded into a
// Config. This package owns the defaults, validation and the default file
// written on first run.
//
// Example file:
//
//	watch = true
//
//	[editor]
//	wrap_width = 30
//	history_size = 1000
//	clipboard = false
//
//	[history]
//	file = ""
//
//	[log]
//	level = "info"
//	file = "/home/me/.local/state/cellvim/cellvim.log"
package config
