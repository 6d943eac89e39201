package buffer

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewBuffer(t *testing.T) {
	b := New()
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
	if b.ID() == uuid.Nil {
		t.Error("buffer should have an ID")
	}
	if New().ID() == b.ID() {
		t.Error("buffer IDs should be unique")
	}
}

func TestInsertAndBackspaceRoundTrip(t *testing.T) {
	b := New()
	for _, r := range "abc" {
		b.Insert(r)
	}
	if b.Text() != "abc" {
		t.Fatalf("Text() = %q, want %q", b.Text(), "abc")
	}
	for i := 0; i < 3; i++ {
		if !b.DeleteBackward() {
			t.Fatalf("DeleteBackward() #%d = false", i+1)
		}
	}
	if b.Text() != "" || b.Cursor() != 0 {
		t.Errorf("after backspaces Text() = %q, Cursor() = %d", b.Text(), b.Cursor())
	}
	if b.DeleteBackward() {
		t.Error("DeleteBackward on empty buffer should return false")
	}
}

func TestDeleteBackwardRune(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		want       string
		wantCursor int
	}{
		{"combining accent", "ae\u0301", "ae", 2},
		{"flag", "x🇩🇪", "x🇩", 5},
		{"zwj family", "👨\u200d👩", "👨\u200d", 7},
		{"multibyte", "日本", "日", 3},
		{"ascii", "ab", "a", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithText(tt.text))
			b.SetCursor(b.Len())
			b.DeleteBackward()
			if b.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.want)
			}
			if b.Cursor() != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", b.Cursor(), tt.wantCursor)
			}
		})
	}
}

func TestDeleteBackwardCursorInsideText(t *testing.T) {
	b := New(WithText("xe\u0301y"))
	b.SetCursor(4) // after the combining accent, before y
	b.DeleteBackward()

	if b.Text() != "xey" {
		t.Errorf("Text() = %q, want %q", b.Text(), "xey")
	}
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", b.Cursor())
	}
}

func TestInsertNormalizesCarriageReturn(t *testing.T) {
	b := New()
	b.Insert('a')
	b.Insert('\r')
	b.Insert('b')
	if b.Text() != "a\nb" {
		t.Errorf("Text() = %q, want %q", b.Text(), "a\nb")
	}
	if b.LineCount() != 2 || b.Line(1) != "b" {
		t.Errorf("LineCount() = %d, Line(1) = %q", b.LineCount(), b.Line(1))
	}
	if b.Line(5) != "" {
		t.Error("Line out of range should be empty")
	}
}

func TestPositionDisplayColumn(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Point
	}{
		{"ascii", "abc", Point{0, 3}},
		{"second line", "ab\ncd", Point{1, 2}},
		{"wide", "日本", Point{0, 4}},
		{"tab", "\tx", Point{0, 5}},
		{"tab after text", "ab\t", Point{0, 4}},
		{"combining", "e\u0301", Point{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithText(tt.text))
			b.SetCursor(b.Len())
			if got := b.Position(); got != tt.want {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetCursorSnaps(t *testing.T) {
	b := New(WithText("a\u00e9"))
	b.SetCursor(2) // inside the two-byte é
	if b.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", b.Cursor())
	}
	b.SetCursor(-5)
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", b.Cursor())
	}
	b.SetCursor(100)
	if b.Cursor() != b.Len() {
		t.Errorf("Cursor() = %d, want %d", b.Cursor(), b.Len())
	}
}

func TestFindRune(t *testing.T) {
	b := New(WithText("a.b.c"))

	if !b.FindRune('.', Forward) || b.Cursor() != 1 {
		t.Fatalf("first forward find: cursor = %d, want 1", b.Cursor())
	}
	if !b.FindRune('.', Forward) || b.Cursor() != 3 {
		t.Fatalf("second forward find: cursor = %d, want 3", b.Cursor())
	}
	if b.FindRune('z', Forward) {
		t.Error("find of missing rune should fail")
	}
	if b.Cursor() != 3 {
		t.Errorf("failed find moved cursor to %d", b.Cursor())
	}
	if !b.FindRune('.', Backward) || b.Cursor() != 1 {
		t.Errorf("backward find: cursor = %d, want 1", b.Cursor())
	}
}
