// Package config loads editor settings.
//
// Settings are grouped in three sections and addressed by "section.name"
// paths:
//
//	[log]
//	level = "debug"          # debug, info, warn, error
//	file = "/tmp/lx.log"
//
//	[input]
//	prefix_timeout = "1s"    # or integer milliseconds
//	history_size = 16
//	keymap = "~/.config/lx/keys.toml"
//	watch_keymap = true
//
//	[view]
//	page_size = 8
//	tab_width = 4
//
// Sources are applied in order: built-in defaults, then a TOML or INI
// file chosen by extension, then LX_* environment variables
// (LX_LOG_LEVEL, LX_VIEW_TAB_WIDTH, LX_KEYMAP, LX_PREFIX_TIMEOUT), then
// command-line flags. Call Validate after the last source.
package config
