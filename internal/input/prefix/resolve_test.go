package prefix

import (
	"testing"

	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/key"
	"github.com/lxedit/lx/internal/input/mode"
	"github.com/lxedit/lx/internal/operation"
)

func TestResolveOperations(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		ev   key.Event
		want operation.Operation
	}{
		{"leader digit", Leader, key.Rune('2'), operation.SwitchBuffer{Index: 1}},
		{"leader nine", Leader, key.Rune('9'), operation.SwitchBuffer{Index: 8}},
		{"buffer next", Buffer, key.Rune('n'), operation.CycleBuffer{Direction: buffer.Forward}},
		{"buffer prev", Buffer, key.Rune('p'), operation.CycleBuffer{Direction: buffer.Backward}},
		{"buffer create", Buffer, key.Rune('c'), operation.CreateBuffer{}},
		{"buffer close d", Buffer, key.Rune('d'), operation.CloseBuffer{}},
		{"buffer close q", Buffer, key.Rune('q'), operation.CloseBuffer{}},
		{"buffer digit", Buffer, key.Rune('1'), operation.SwitchBuffer{Index: 0}},
		{"find files", Find, key.Rune('f'), operation.Request{Name: operation.RequestFindFiles}},
		{"find buffers", Find, key.Rune('b'), operation.SwitchMode{Mode: mode.Overview(mode.PaneBuffers)}},
		{"tab overview", Tab, key.Rune('o'), operation.SwitchMode{Mode: mode.Overview(mode.PaneTabs)}},
		{"tab next", Tab, key.Rune('n'), operation.Request{Name: operation.RequestTabNext}},
		{"tab new", Tab, key.Rune('c'), operation.Request{Name: operation.RequestTabNew}},
		{"window split", Window, key.Rune('s'), operation.Request{Name: operation.RequestSplitHorizon}},
		{"window vsplit", Window, key.Rune('v'), operation.Request{Name: operation.RequestSplitVertical}},
		{"window close", Window, key.Rune('c'), operation.Request{Name: operation.RequestWindowClose}},
		{"motion word", Motion, key.Rune('w'), operation.MoveCursor{Motion: buffer.MotionWordForward, Count: 1}},
		{"motion end", Motion, key.Rune('$'), operation.MoveCursor{Motion: buffer.MotionLineEnd, Count: 1}},
		{"motion shift g", Motion, key.NewRuneEvent('g', key.ModShift), operation.MoveCursor{Motion: buffer.MotionBufferEnd, Count: 1}},
		{"search forward", Search, key.Rune('x'), operation.SearchChar{Rune: 'x', Direction: buffer.Forward}},
		{"search backward", Search, key.NewRuneEvent('x', key.ModAlt), operation.SearchChar{Rune: 'x', Direction: buffer.Backward}},
		{"search space", Search, key.Rune(' '), operation.SearchChar{Rune: ' ', Direction: buffer.Forward}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.kind, tt.ev)
			if got.Next != None {
				t.Fatalf("Resolve armed %v, want operation", got.Next)
			}
			if got.Op != tt.want {
				t.Errorf("Resolve op = %v, want %v", got.Op, tt.want)
			}
		})
	}
}

func TestResolveSubPrefixes(t *testing.T) {
	tests := []struct {
		r    rune
		want Kind
	}{
		{'b', Buffer},
		{'f', Find},
		{'w', Window},
		{'/', Search},
		{'t', Tab},
		{'g', Motion},
	}
	for _, tt := range tests {
		got := Resolve(Leader, key.Rune(tt.r))
		if got.Op != nil || got.Next != tt.want {
			t.Errorf("Resolve(Leader, %q) = %+v, want Next %v", tt.r, got, tt.want)
		}
	}
}

func TestResolveNoMatch(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		ev   key.Event
	}{
		{"leader zero", Leader, key.Rune('0')},
		{"leader unknown", Leader, key.Rune('z')},
		{"leader ctrl", Leader, key.Ctrl('b')},
		{"find digit", Find, key.Rune('1')},
		{"window special", Window, key.Special(key.KeyEnter)},
		{"search ctrl", Search, key.Ctrl('x')},
		{"search special", Search, key.Special(key.KeyEscape)},
		{"none", None, key.Rune('n')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.kind, tt.ev)
			if got.Op != nil || got.Next != None {
				t.Errorf("Resolve = %+v, want empty outcome", got)
			}
		})
	}
}
