// Package key provides key event types and key specification parsing for lx.
//
// This package defines the fundamental values the input core consumes:
//
//   - Key: identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: the modifier set (Ctrl, Alt, Shift, Meta), combinable
//   - Event: a single immutable key press
//   - History: a bounded record of the most recent events
//
// # Key Specifications
//
// Key-binding tables describe keys textually. Parse accepts:
//
//   - Simple keys: "a", "X", "1", "enter", "esc", "space", "tab"
//   - Short modifier prefixes: "c-f", "a-x", "c-s-x", "s-a-x", "c-a-x", "c-space"
//   - Vim notation: "<C-f>", "<A-S-x>", "<CR>", "<Esc>"
//   - Plus notation: "Ctrl+F", "Alt+Shift+X"
//
// Character events are compared in canonical form (see Event.Canonical), where
// Shift is folded into the rune's case.
package key
