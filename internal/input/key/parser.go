package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	// ErrEmptySpec is returned when the key specification is blank.
	ErrEmptySpec = errors.New("empty key specification")

	// ErrInvalidSpec is returned when the key specification cannot be parsed.
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into an Event.
//
// Accepted forms:
//
//	"x", "X", "space", "enter", "tab"     single keys
//	"c-f", "a-x", "c-s-x", "s-a-x"        hyphen-separated modifiers
//	"c--"                                 Ctrl plus the '-' key
//	"<C-f>", "<CR>", "<S-Tab>"            Vim notation
//	"Ctrl+F", "Alt+Shift+x"               plus-separated modifiers
//
// Modifier order is irrelevant. A character is kept as written; Shift on a
// character is folded into its case when events are compared.
func Parse(spec string) (Event, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Event{}, ErrEmptySpec
	}

	if len(s) > 2 && strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		s = s[1 : len(s)-1]
	}

	for _, sep := range []string{"-", "+"} {
		if ev, ok := parseWith(s, sep); ok {
			return ev, nil
		}
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// MustParse is like Parse but panics on error. Intended for tables of
// built-in defaults.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}

// parseWith splits s into modifiers and a key name around sep.
func parseWith(s, sep string) (Event, bool) {
	if utf8.RuneCountInString(s) == 1 {
		return keyFromPart(s, ModNone)
	}

	var modPart, keyPart string
	switch {
	case strings.HasSuffix(s, sep+sep):
		modPart, keyPart = s[:len(s)-2*len(sep)], sep
	case strings.Contains(s, sep):
		i := strings.LastIndex(s, sep)
		modPart, keyPart = s[:i], s[i+len(sep):]
	default:
		keyPart = s
	}

	mods := ModNone
	if modPart != "" {
		for _, name := range strings.Split(modPart, sep) {
			m := ModifierFromName(name)
			if m == ModNone {
				return Event{}, false
			}
			mods |= m
		}
	}
	return keyFromPart(keyPart, mods)
}

func keyFromPart(part string, mods Modifier) (Event, bool) {
	if part == "" {
		return Event{}, false
	}
	if utf8.RuneCountInString(part) == 1 {
		r, _ := utf8.DecodeRuneInString(part)
		return NewRuneEvent(r, mods), true
	}
	lower := strings.ToLower(part)
	if r, ok := runeNameMap[lower]; ok {
		return NewRuneEvent(r, mods), true
	}
	if k := KeyFromName(lower); k != KeyNone {
		return NewSpecialEvent(k, mods), true
	}
	return Event{}, false
}
