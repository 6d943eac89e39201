// Package buffer provides the text buffers edited by lx and the registry
// that orders them.
//
// A Buffer holds its text and a cursor stored as a byte offset that always
// sits on a grapheme cluster boundary. Editing happens at the cursor:
//
//	buf := buffer.New()
//	buf.InsertString("héllo")
//	buf.DeleteBackward()          // removes "o"
//	buf.Move(buffer.MotionLineStart, 1)
//
// Columns reported by Position are display columns: wide characters count
// two cells and tabs advance to the next tab stop.
//
// The Registry keeps an ordered, never-empty list of buffers and the index
// of the active one. Closing the last buffer reports termination instead of
// emptying the registry.
//
// Buffers and registries are not safe for concurrent use; the editor's event
// loop goroutine owns them.
package buffer
