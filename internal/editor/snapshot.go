package editor

import (
	"fmt"

	"github.com/lxedit/lx/internal/input/mode"
	"github.com/lxedit/lx/internal/input/prefix"
)

// Snapshot is a read-only copy of the state for rendering.
type Snapshot struct {
	Mode        mode.Mode
	Prefix      prefix.Kind
	ActiveIndex int
	BufferCount int
	BufferID    string
	Text        string
	CommandLine string
	Quit        bool

	Cursor      mode.Position
	CursorStyle mode.CursorStyle
	StatusRow   bool

	// LastKey is the most recent key in keymap notation, empty if none.
	LastKey string

	// History lists recent keys, oldest first.
	History []string

	Request string
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	active := s.registry.Active()
	pres := s.machine.Presentation()

	snap := Snapshot{
		Mode:        s.machine.Current(),
		Prefix:      s.prefix.Kind(),
		ActiveIndex: s.registry.ActiveIndex(),
		BufferCount: s.registry.Len(),
		BufferID:    active.ID().String(),
		Text:        active.Text(),
		CommandLine: s.machine.Current().CommandLine(),
		Quit:        s.quit,
		Cursor:      pres.Cursor,
		CursorStyle: pres.Style,
		StatusRow:   pres.StatusRow,
		Request:     s.request,
	}

	if last, ok := s.history.Last(); ok {
		snap.LastKey = last.String()
	}
	for _, ev := range s.history.Events() {
		snap.History = append(snap.History, ev.String())
	}
	return snap
}

// StatusLine returns the status bar text, e.g.
// "MODE: EDIT, PRE: Leader, B: 1/2 Q: false".
func (s Snapshot) StatusLine() string {
	return fmt.Sprintf("MODE: %s, PRE: %s, B: %d/%d Q: %t",
		s.Mode.DisplayName(), s.Prefix, s.ActiveIndex+1, s.BufferCount, s.Quit)
}

// DebugLine returns the line shown under the status bar: the command
// prompt in Command mode, otherwise the last key pressed.
func (s Snapshot) DebugLine() string {
	if s.Mode.Is(mode.KindCommand) {
		return "CMD: " + s.CommandLine
	}
	if s.LastKey == "" {
		return ""
	}
	return "KEY: " + s.LastKey
}
