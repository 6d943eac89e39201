package operation

import (
	"testing"

	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/mode"
)

func TestOperationStrings(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{InsertChar{Rune: 'a'}, "InsertChar('a')"},
		{MoveCursor{Motion: buffer.MotionDown, Count: 2}, "MoveCursor(down x2)"},
		{SwitchBuffer{Index: 1}, "SwitchBuffer(1)"},
		{CycleBuffer{Direction: buffer.Backward}, "CycleBuffer(backward)"},
		{SwitchMode{Mode: mode.Overview(mode.PaneTabs)}, "SwitchMode(overview)"},
		{ExecuteCommand{Command: "q"}, `ExecuteCommand("q")`},
		{SearchChar{Rune: 'x', Direction: buffer.Forward}, "SearchChar('x' forward)"},
		{Request{Name: RequestFindFiles}, "Request(find-files)"},
		{Quit{}, "Quit"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
