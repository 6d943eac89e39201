package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"x", Rune('x')},
		{"X", Rune('X')},
		{"-", Rune('-')},
		{"space", Rune(' ')},
		{"enter", Special(KeyEnter)},
		{"Esc", Special(KeyEscape)},
		{"c-f", Ctrl('f')},
		{"a-x", NewRuneEvent('x', ModAlt)},
		{"c-s-x", NewRuneEvent('X', ModCtrl)},
		{"s-c-x", NewRuneEvent('X', ModCtrl)},
		{"a-s-x", NewRuneEvent('X', ModAlt)},
		{"c-a-x", NewRuneEvent('x', ModCtrl|ModAlt)},
		{"a-c-x", NewRuneEvent('x', ModCtrl|ModAlt)},
		{"c-space", Ctrl(' ')},
		{"c-\\", Ctrl('\\')},
		{"c--", Ctrl('-')},
		{"s-tab", NewSpecialEvent(KeyTab, ModShift)},
		{"<C-f>", Ctrl('f')},
		{"<CR>", Special(KeyEnter)},
		{"<lt>", Rune('<')},
		{"<", Rune('<')},
		{"Ctrl+F", Ctrl('F')},
		{"Alt+Shift+x", NewRuneEvent('X', ModAlt)},
		{"c-+", Ctrl('+')},
		{" c-w ", Ctrl('w')},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("  "); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("Parse(blank) error = %v, want ErrEmptySpec", err)
	}
	for _, spec := range []string{"x-y", "c-", "ctrl+", "q-f", "bogus", "<>"} {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidSpec", spec, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("not-a-key")
}
