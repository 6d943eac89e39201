package buffer

import (
	"unicode"
	"unicode/utf8"
)

// Motion is a cursor movement.
type Motion uint8

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionLineStart
	MotionLineEnd
	MotionWordForward
	MotionWordBackward
	MotionBufferStart
	MotionBufferEnd
)

var motionNames = map[Motion]string{
	MotionLeft:         "left",
	MotionRight:        "right",
	MotionUp:           "up",
	MotionDown:         "down",
	MotionLineStart:    "line-start",
	MotionLineEnd:      "line-end",
	MotionWordForward:  "word-forward",
	MotionWordBackward: "word-backward",
	MotionBufferStart:  "buffer-start",
	MotionBufferEnd:    "buffer-end",
}

// String returns the motion name.
func (m Motion) String() string {
	if name, ok := motionNames[m]; ok {
		return name
	}
	return "unknown"
}

// IsVertical returns true for motions that keep the goal column.
func (m Motion) IsVertical() bool {
	return m == MotionUp || m == MotionDown
}

// Move applies motion m count times. A count below one is treated as one.
// It returns false if the cursor did not move.
func (b *Buffer) Move(m Motion, count int) bool {
	if count < 1 {
		count = 1
	}
	before := b.cursor

	if m.IsVertical() {
		b.moveVertical(m, count)
		return b.cursor != before
	}

	for i := 0; i < count; i++ {
		switch m {
		case MotionLeft:
			if b.cursor > lineStart(b.text, b.cursor) {
				b.cursor = prevBoundary(b.text, b.cursor)
			}
		case MotionRight:
			if b.cursor < lineEnd(b.text, b.cursor) {
				b.cursor = nextBoundary(b.text, b.cursor)
			}
		case MotionLineStart:
			b.cursor = lineStart(b.text, b.cursor)
		case MotionLineEnd:
			b.cursor = lineEnd(b.text, b.cursor)
		case MotionWordForward:
			b.cursor = wordForward(b.text, b.cursor)
		case MotionWordBackward:
			b.cursor = wordBackward(b.text, b.cursor)
		case MotionBufferStart:
			b.cursor = 0
		case MotionBufferEnd:
			b.cursor = len(b.text)
		}
	}
	b.goal = -1
	return b.cursor != before
}

func (b *Buffer) moveVertical(m Motion, count int) {
	if b.goal < 0 {
		b.goal = b.Position().Column
	}

	line := b.Position().Line
	if m == MotionUp {
		line -= count
	} else {
		line += count
	}
	if line < 0 {
		line = 0
	}
	if last := b.LineCount() - 1; line > last {
		line = last
	}

	start, end, _ := lineBounds(b.text, line)
	b.cursor = start + offsetForColumn(b.text[start:end], b.goal, b.tabWidth)
}

type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// wordForward returns the start of the next word after offset.
func wordForward(s string, offset int) int {
	i := offset
	if i >= len(s) {
		return len(s)
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	cls := classOf(r)
	if cls != classSpace {
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if classOf(r) != cls {
				break
			}
			i += size
		}
	}
	for i < len(s) {
		r, size = utf8.DecodeRuneInString(s[i:])
		if classOf(r) != classSpace {
			break
		}
		i += size
	}
	return snapBoundary(s, i)
}

// wordBackward returns the start of the word before offset.
func wordBackward(s string, offset int) int {
	i := offset
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if classOf(r) != classSpace {
			break
		}
		i -= size
	}
	if i == 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	cls := classOf(r)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if classOf(r) != cls {
			break
		}
		i -= size
	}
	return snapBoundary(s, i)
}
