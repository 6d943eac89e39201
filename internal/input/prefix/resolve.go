package prefix

import (
	"unicode"

	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/key"
	"github.com/lxedit/lx/internal/input/mode"
	"github.com/lxedit/lx/internal/operation"
)

// Outcome is the result of resolving a key under a prefix. At most one of
// Op and Next is set; neither set means the key had no meaning.
type Outcome struct {
	// Op is the operation to execute.
	Op operation.Operation

	// Next is a sub-prefix to arm.
	Next Kind
}

// Resolve maps ev under prefix kind.
func Resolve(kind Kind, ev key.Event) Outcome {
	if kind == Search {
		return resolveSearch(ev)
	}

	r, ok := plainRune(ev)
	if !ok {
		return Outcome{}
	}
	if d, ok := ev.Digit(); ok && (kind == Leader || kind == Buffer) {
		return op(operation.SwitchBuffer{Index: d - 1})
	}

	switch kind {
	case Leader:
		switch r {
		case 'b':
			return Outcome{Next: Buffer}
		case 'f':
			return Outcome{Next: Find}
		case 'w':
			return Outcome{Next: Window}
		case '/':
			return Outcome{Next: Search}
		case 't':
			return Outcome{Next: Tab}
		case 'g':
			return Outcome{Next: Motion}
		}

	case Buffer:
		switch r {
		case 'n':
			return op(operation.CycleBuffer{Direction: buffer.Forward})
		case 'p':
			return op(operation.CycleBuffer{Direction: buffer.Backward})
		case 'c':
			return op(operation.CreateBuffer{})
		case 'd', 'q':
			return op(operation.CloseBuffer{})
		}

	case Find:
		switch r {
		case 'f':
			return op(operation.Request{Name: operation.RequestFindFiles})
		case 'b':
			return op(operation.SwitchMode{Mode: mode.Overview(mode.PaneBuffers)})
		}

	case Tab:
		switch r {
		case 'o':
			return op(operation.SwitchMode{Mode: mode.Overview(mode.PaneTabs)})
		case 'n':
			return op(operation.Request{Name: operation.RequestTabNext})
		case 'p':
			return op(operation.Request{Name: operation.RequestTabPrevious})
		case 'c':
			return op(operation.Request{Name: operation.RequestTabNew})
		}

	case Window:
		switch r {
		case 's':
			return op(operation.Request{Name: operation.RequestSplitHorizon})
		case 'v':
			return op(operation.Request{Name: operation.RequestSplitVertical})
		case 'c':
			return op(operation.Request{Name: operation.RequestWindowClose})
		}

	case Motion:
		if m, ok := motions[r]; ok {
			return op(operation.MoveCursor{Motion: m, Count: 1})
		}
	}
	return Outcome{}
}

var motions = map[rune]buffer.Motion{
	'w': buffer.MotionWordForward,
	'b': buffer.MotionWordBackward,
	'0': buffer.MotionLineStart,
	'$': buffer.MotionLineEnd,
	'g': buffer.MotionBufferStart,
	'G': buffer.MotionBufferEnd,
}

func resolveSearch(ev key.Event) Outcome {
	c := ev.Canonical()
	if !c.IsRune() || c.Modifiers.HasCtrl() || c.Modifiers.HasMeta() || !unicode.IsPrint(c.Rune) {
		return Outcome{}
	}
	dir := buffer.Forward
	if c.Modifiers.HasAlt() {
		dir = buffer.Backward
	}
	return op(operation.SearchChar{Rune: c.Rune, Direction: dir})
}

// plainRune returns the character of an unmodified rune event, with Shift
// folded into its case.
func plainRune(ev key.Event) (rune, bool) {
	c := ev.Canonical()
	if !c.IsRune() || c.Modifiers != key.ModNone {
		return 0, false
	}
	return c.Rune, true
}

func op(o operation.Operation) Outcome {
	return Outcome{Op: o}
}
