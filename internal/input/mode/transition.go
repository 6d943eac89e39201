package mode

import (
	"github.com/lxedit/lx/internal/input/key"
	"github.com/lxedit/lx/internal/input/keymap"
)

// GlobalTransition returns the mode selected by a global switch key, valid
// from every mode.
func GlobalTransition(ev key.Event, t *keymap.Table) (Mode, bool) {
	a, ok := t.Match(keymap.SectionModes, ev)
	if !ok {
		return Mode{}, false
	}
	switch a {
	case keymap.ModeInsert:
		return Insert(), true
	case keymap.ModeEdit:
		return Edit(), true
	case keymap.ModeCommand:
		return Command(), true
	case keymap.ModeOverview:
		return Overview(PaneBuffers), true
	}
	return Mode{}, false
}

// LocalTransition returns the mode reached from current by its fixed
// escape, accept or prompt key.
func LocalTransition(current Mode, ev key.Event) (Mode, bool) {
	switch {
	case ev.IsEscape():
		switch current.kind {
		case KindInsert, KindCommand:
			return Edit(), true
		case KindEdit:
			return Overview(PaneBuffers), true
		}
	case ev.IsEnter():
		switch current.kind {
		case KindOverview:
			return Edit(), true
		case KindEdit:
			return Insert(), true
		}
	case current.kind == KindEdit && ev.Equals(key.Rune(':')):
		return Command(), true
	}
	return Mode{}, false
}

// Transition applies the global family first, then the local one.
func Transition(current Mode, ev key.Event, t *keymap.Table) (Mode, bool) {
	if next, ok := GlobalTransition(ev, t); ok {
		return next, true
	}
	return LocalTransition(current, ev)
}
