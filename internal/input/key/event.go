package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press. It is an immutable value produced by
// the terminal backend and consumed by the dispatcher.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Ctrl is shorthand for a Ctrl+rune event.
func Ctrl(r rune) Event {
	return NewRuneEvent(r, ModCtrl)
}

// Rune is shorthand for an unmodified rune event.
func Rune(r rune) Event {
	return NewRuneEvent(r, ModNone)
}

// Special is shorthand for an unmodified special key event.
func Special(k Key) Event {
	return NewSpecialEvent(k, ModNone)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if Ctrl, Alt or Meta is pressed.
// Shift alone does not count for characters since it changes the character.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsPrintable returns true for an unmodified, printable character.
func (e Event) IsPrintable() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// Digit returns the value of an unmodified '1'..'9' key.
func (e Event) Digit() (int, bool) {
	if !e.IsRune() || e.IsModified() || e.Rune < '1' || e.Rune > '9' {
		return 0, false
	}
	return int(e.Rune - '0'), true
}

// Canonical returns the comparison form of the event. For characters, Shift
// is folded into the rune: Shift+x becomes X and Shift is dropped.
func (e Event) Canonical() Event {
	if e.Key != KeyRune {
		return e
	}
	r, mods := e.Rune, e.Modifiers
	if mods.HasShift() {
		r = unicode.ToUpper(r)
		mods = mods.Without(ModShift)
	}
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// Equals returns true if two events represent the same key press after
// canonicalization.
func (e Event) Equals(other Event) bool {
	a, b := e.Canonical(), other.Canonical()
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}

// IsEscape returns true if this is the Escape key with no modifiers.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsEnter returns true if this is the Enter key with no modifiers.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Modifiers == ModNone
}

// IsBackspace returns true if this is Backspace with no modifiers.
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace && e.Modifiers == ModNone
}

// String returns the keymap-file form of the event, e.g. "c-f", "a-X",
// "space", "enter". The result parses back to an equal event.
func (e Event) String() string {
	c := e.Canonical()
	var name string
	switch {
	case c.Key == KeyRune && c.Rune == ' ':
		name = "space"
	case c.Key == KeyRune && c.Rune == '-':
		name = "minus"
	case c.Key == KeyRune:
		name = string(c.Rune)
	default:
		name = strings.ToLower(c.Key.String())
	}
	if c.Modifiers == ModNone {
		return name
	}
	return c.Modifiers.ShortString() + "-" + name
}

// VimString returns a Vim-style representation such as "<C-f>" or "<CR>".
func (e Event) VimString() string {
	c := e.Canonical()
	if c.IsRune() && c.Modifiers == ModNone {
		if c.Rune == ' ' {
			return "<Space>"
		}
		return string(c.Rune)
	}

	var parts []string
	if c.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if c.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if c.Modifiers.HasMeta() {
		parts = append(parts, "D")
	}
	if c.Modifiers.HasShift() {
		parts = append(parts, "S")
	}

	switch {
	case c.Key == KeyRune && c.Rune == ' ':
		parts = append(parts, "Space")
	case c.Key == KeyRune:
		parts = append(parts, string(c.Rune))
	case c.Key == KeyEnter:
		parts = append(parts, "CR")
	default:
		parts = append(parts, c.Key.String())
	}
	return "<" + strings.Join(parts, "-") + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
