// Package keymap holds the validated binding table that drives dispatch.
//
// A Table maps named actions, grouped in sections, to key events:
//
//	[modes]       insert, edit, command, overview   global mode switches
//	[prefixes]    leader, buffer, tab, find, window, motion, search
//	[cursor]      up, down, left, right             Edit-mode motion keys
//	[navigation]  next, previous                    buffer cycling
//	[editor]      quit
//
// Tables are immutable once built. New starts from the built-in defaults and
// applies overrides; every spec must parse and no two actions may share a
// key. Load and LoadFile read overrides from TOML, YAML or JSON-with-comments
// files, and Watcher rebuilds the table whenever its file changes.
package keymap
