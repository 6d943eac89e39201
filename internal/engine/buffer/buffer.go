package buffer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Point is a line and display column. Both are 0-indexed.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Direction selects forward or backward traversal.
type Direction int8

const (
	// Forward moves toward the end.
	Forward Direction = 1

	// Backward moves toward the start.
	Backward Direction = -1
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Buffer is an editable text with a cursor.
type Buffer struct {
	id       uuid.UUID
	text     string
	cursor   int
	goal     int
	tabWidth int
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:       uuid.New(),
		goal:     -1,
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the buffer's stable identity.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Text returns the full content.
func (b *Buffer) Text() string {
	return b.text
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return b.text == ""
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// Cursor returns the cursor byte offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor places the cursor at offset, clamped to the text and moved back
// to the nearest grapheme boundary.
func (b *Buffer) SetCursor(offset int) {
	b.cursor = snapBoundary(b.text, offset)
	b.goal = -1
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}

// Line returns the text of line n without its newline.
func (b *Buffer) Line(n int) string {
	start, end, ok := lineBounds(b.text, n)
	if !ok {
		return ""
	}
	return b.text[start:end]
}

// Position returns the cursor's line and display column.
func (b *Buffer) Position() Point {
	line := strings.Count(b.text[:b.cursor], "\n")
	start := lineStart(b.text, b.cursor)
	return Point{
		Line:   line,
		Column: displayWidth(b.text[start:b.cursor], b.tabWidth),
	}
}

// Insert inserts r at the cursor and advances past it. A carriage return is
// stored as a newline.
func (b *Buffer) Insert(r rune) {
	if r == '\r' {
		r = '\n'
	}
	b.InsertString(string(r))
}

// InsertString inserts s at the cursor and advances past it.
func (b *Buffer) InsertString(s string) {
	s = normalizeLineEndings(s)
	b.text = b.text[:b.cursor] + s + b.text[b.cursor:]
	b.cursor += len(s)
	b.goal = -1
}

// DeleteBackward removes the rune before the cursor, undoing one Insert.
// The cursor then snaps back to a cluster boundary. It returns false at the
// start of the buffer.
func (b *Buffer) DeleteBackward() bool {
	if b.cursor == 0 {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.cursor])
	prev := b.cursor - size
	b.text = b.text[:prev] + b.text[b.cursor:]
	b.cursor = snapBoundary(b.text, prev)
	b.goal = -1
	return true
}

// FindRune moves the cursor to the next occurrence of r in direction dir,
// not counting the character under the cursor. It returns false and leaves
// the cursor in place when there is none.
func (b *Buffer) FindRune(r rune, dir Direction) bool {
	needle := string(r)
	var idx int
	if dir == Backward {
		idx = strings.LastIndex(b.text[:b.cursor], needle)
	} else {
		from := nextBoundary(b.text, b.cursor)
		idx = strings.Index(b.text[from:], needle)
		if idx >= 0 {
			idx += from
		}
	}
	if idx < 0 {
		return false
	}
	b.SetCursor(idx)
	return true
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
