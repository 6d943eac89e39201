package dispatcher

import (
	"github.com/lxedit/lx/internal/editor"
	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/mode"
	"github.com/lxedit/lx/internal/operation"
)

// Execute applies op to st. A nil operation does nothing. Buffer content
// only ever changes in the active buffer.
func (d *Dispatcher) Execute(st *editor.State, op operation.Operation) {
	if op == nil {
		return
	}
	reg := st.Registry()

	switch o := op.(type) {
	case operation.InsertChar:
		reg.Active().Insert(o.Rune)
	case operation.DeleteBackward:
		reg.Active().DeleteBackward()
	case operation.MoveCursor:
		reg.Active().Move(o.Motion, o.Count)
	case operation.Scroll:
		m := buffer.MotionDown
		if o.Direction == buffer.Backward {
			m = buffer.MotionUp
		}
		reg.Active().Move(m, st.PageSize())
	case operation.CreateBuffer:
		reg.Create()
	case operation.CloseBuffer:
		d.closeBuffer(st)
	case operation.SwitchBuffer:
		reg.SwitchTo(o.Index)
	case operation.CycleBuffer:
		reg.Cycle(o.Direction)
	case operation.SwitchMode:
		d.switchMode(st, o.Mode)
	case operation.CyclePane:
		cur := st.Mode()
		if cur.Is(mode.KindOverview) {
			next := cur.Pane().Next()
			if o.Direction == buffer.Backward {
				next = cur.Pane().Prev()
			}
			st.Machine().Update(cur.WithPane(next))
		}
	case operation.CommandInput:
		st.Machine().Update(st.Mode().AppendCommand(o.Rune))
	case operation.CommandBackspace:
		st.Machine().Update(st.Mode().BackspaceCommand())
	case operation.ExecuteCommand:
		d.executeCommand(st, o.Command)
	case operation.SearchChar:
		reg.Active().FindRune(o.Rune, o.Direction)
	case operation.Request:
		st.SetRequest(o.Name)
	case operation.Quit:
		d.quit(st)
	}

	st.Machine().Track(st.CursorPosition())
}

// switchMode changes the active mode. Selecting Overview while in Overview
// moves focus to the requested pane.
func (d *Dispatcher) switchMode(st *editor.State, to mode.Mode) {
	m := st.Machine()
	from := m.Current()
	if from.Is(mode.KindOverview) && to.Is(mode.KindOverview) {
		m.Update(to)
		return
	}
	if !m.Switch(to, st.CursorPosition()) {
		return
	}
	d.log.Debug("mode %s -> %s", from, to)
	if d.metrics != nil {
		d.metrics.RecordTransition()
	}
}

func (d *Dispatcher) closeBuffer(st *editor.State) {
	if st.Registry().Close() {
		d.quit(st)
	}
}

func (d *Dispatcher) quit(st *editor.State) {
	if st.Quit() {
		return
	}
	st.SetQuit()
	d.log.Debug("termination requested")
}
