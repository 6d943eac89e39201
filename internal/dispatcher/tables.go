package dispatcher

import (
	"github.com/lxedit/lx/internal/editor"
	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/key"
	"github.com/lxedit/lx/internal/input/keymap"
	"github.com/lxedit/lx/internal/operation"
)

var arrowMotions = map[key.Key]buffer.Motion{
	key.KeyLeft:  buffer.MotionLeft,
	key.KeyRight: buffer.MotionRight,
	key.KeyUp:    buffer.MotionUp,
	key.KeyDown:  buffer.MotionDown,
	key.KeyHome:  buffer.MotionLineStart,
	key.KeyEnd:   buffer.MotionLineEnd,
}

var cursorMotions = map[keymap.Action]buffer.Motion{
	keymap.CursorLeft:  buffer.MotionLeft,
	keymap.CursorRight: buffer.MotionRight,
	keymap.CursorUp:    buffer.MotionUp,
	keymap.CursorDown:  buffer.MotionDown,
}

// Ctrl+h/j/k/l move the cursor without leaving Insert mode.
var insertMotions = map[rune]buffer.Motion{
	'h': buffer.MotionLeft,
	'j': buffer.MotionDown,
	'k': buffer.MotionUp,
	'l': buffer.MotionRight,
}

var editMotions = map[rune]buffer.Motion{
	'0': buffer.MotionLineStart,
	'$': buffer.MotionLineEnd,
	'w': buffer.MotionWordForward,
	'b': buffer.MotionWordBackward,
}

func insertTable(st *editor.State, ev key.Event) operation.Operation {
	if st.Keymap().Matches(keymap.EditorQuit, ev) {
		return operation.Quit{}
	}
	if op, ok := navigationKey(ev); ok {
		return op
	}
	if ev.Modifiers == key.ModCtrl && ev.IsRune() {
		if m, ok := insertMotions[ev.Rune]; ok {
			return move(m)
		}
		return nil
	}

	switch {
	case ev.IsEnter():
		return operation.InsertChar{Rune: '\n'}
	case ev.Key == key.KeyTab && ev.Modifiers == key.ModNone:
		return operation.InsertChar{Rune: '\t'}
	case ev.IsBackspace():
		return operation.DeleteBackward{}
	case ev.IsPrintable():
		return operation.InsertChar{Rune: ev.Canonical().Rune}
	}
	return nil
}

func editTable(st *editor.State, ev key.Event) operation.Operation {
	table := st.Keymap()
	if table.Matches(keymap.EditorQuit, ev) {
		return operation.Quit{}
	}
	if a, ok := table.Match(keymap.SectionNavigation, ev); ok {
		dir := buffer.Forward
		if a == keymap.NavigationPrevious {
			dir = buffer.Backward
		}
		return operation.CycleBuffer{Direction: dir}
	}
	if a, ok := table.Match(keymap.SectionCursor, ev); ok {
		return move(cursorMotions[a])
	}
	if op, ok := navigationKey(ev); ok {
		return op
	}
	if ev.IsModified() || !ev.IsRune() {
		return nil
	}

	r := ev.Canonical().Rune
	switch r {
	case 'q':
		return operation.CloseBuffer{}
	case 'c':
		return operation.CreateBuffer{}
	}
	if m, ok := editMotions[r]; ok {
		return move(m)
	}
	return nil
}

func commandTable(st *editor.State, ev key.Event) operation.Operation {
	switch {
	case st.Keymap().Matches(keymap.EditorQuit, ev):
		return operation.Quit{}
	case ev.IsEnter():
		return operation.ExecuteCommand{Command: st.Mode().CommandLine()}
	case ev.IsBackspace():
		return operation.CommandBackspace{}
	case ev.IsPrintable():
		return operation.CommandInput{Rune: ev.Canonical().Rune}
	}
	return nil
}

func overviewTable(st *editor.State, ev key.Event) operation.Operation {
	table := st.Keymap()
	if table.Matches(keymap.EditorQuit, ev) {
		return operation.Quit{}
	}
	if a, ok := table.Match(keymap.SectionNavigation, ev); ok {
		if a == keymap.NavigationPrevious {
			return operation.CyclePane{Direction: buffer.Backward}
		}
		return operation.CyclePane{Direction: buffer.Forward}
	}
	if a, ok := table.Match(keymap.SectionCursor, ev); ok {
		switch a {
		case keymap.CursorDown:
			return operation.CyclePane{Direction: buffer.Forward}
		case keymap.CursorUp:
			return operation.CyclePane{Direction: buffer.Backward}
		}
	}
	return nil
}

// navigationKey maps the unmodified arrow, Home/End and page keys.
func navigationKey(ev key.Event) (operation.Operation, bool) {
	if ev.Modifiers != key.ModNone {
		return nil, false
	}
	switch ev.Key {
	case key.KeyPageUp:
		return operation.Scroll{Direction: buffer.Backward}, true
	case key.KeyPageDown:
		return operation.Scroll{Direction: buffer.Forward}, true
	}
	if m, ok := arrowMotions[ev.Key]; ok {
		return move(m), true
	}
	return nil, false
}

func move(m buffer.Motion) operation.Operation {
	return operation.MoveCursor{Motion: m, Count: 1}
}
