// Package operation defines the closed set of editor mutations produced by
// key dispatch and applied by the executor.
package operation

import (
	"fmt"

	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/mode"
)

// Operation is one editor mutation. The set is closed: only types in this
// package implement it.
type Operation interface {
	fmt.Stringer
	isOperation()
}

// InsertChar inserts a character into the active buffer.
type InsertChar struct {
	Rune rune
}

// DeleteBackward removes the grapheme before the cursor.
type DeleteBackward struct{}

// MoveCursor moves the cursor of the active buffer.
type MoveCursor struct {
	Motion buffer.Motion
	Count  int
}

// Scroll moves the cursor by one page.
type Scroll struct {
	Direction buffer.Direction
}

// CreateBuffer opens a new empty buffer and makes it active.
type CreateBuffer struct{}

// CloseBuffer closes the active buffer.
type CloseBuffer struct{}

// SwitchBuffer activates the buffer at a zero-based index.
type SwitchBuffer struct {
	Index int
}

// CycleBuffer activates the next or previous buffer, wrapping around.
type CycleBuffer struct {
	Direction buffer.Direction
}

// SwitchMode changes the active mode.
type SwitchMode struct {
	Mode mode.Mode
}

// CyclePane moves Overview focus to the next or previous pane.
type CyclePane struct {
	Direction buffer.Direction
}

// CommandInput appends a character to the command line.
type CommandInput struct {
	Rune rune
}

// CommandBackspace removes the last command line character.
type CommandBackspace struct{}

// ExecuteCommand runs a command line.
type ExecuteCommand struct {
	Command string
}

// SearchChar moves the cursor to the next occurrence of a character.
type SearchChar struct {
	Rune      rune
	Direction buffer.Direction
}

// Request asks the host for something outside the core, such as a file
// picker or a window split.
type Request struct {
	Name string
}

// Quit requests termination.
type Quit struct{}

// Request names.
const (
	RequestFindFiles     = "find-files"
	RequestTabNew        = "tab-new"
	RequestTabNext       = "tab-next"
	RequestTabPrevious   = "tab-previous"
	RequestSplitVertical = "window-split-vertical"
	RequestSplitHorizon  = "window-split-horizontal"
	RequestWindowClose   = "window-close"
)

func (InsertChar) isOperation()       {}
func (DeleteBackward) isOperation()   {}
func (MoveCursor) isOperation()       {}
func (Scroll) isOperation()           {}
func (CreateBuffer) isOperation()     {}
func (CloseBuffer) isOperation()      {}
func (SwitchBuffer) isOperation()     {}
func (CycleBuffer) isOperation()      {}
func (SwitchMode) isOperation()       {}
func (CyclePane) isOperation()        {}
func (CommandInput) isOperation()     {}
func (CommandBackspace) isOperation() {}
func (ExecuteCommand) isOperation()   {}
func (SearchChar) isOperation()       {}
func (Request) isOperation()          {}
func (Quit) isOperation()             {}

func (o InsertChar) String() string     { return fmt.Sprintf("InsertChar(%q)", o.Rune) }
func (DeleteBackward) String() string   { return "DeleteBackward" }
func (o MoveCursor) String() string     { return fmt.Sprintf("MoveCursor(%s x%d)", o.Motion, o.Count) }
func (o Scroll) String() string         { return fmt.Sprintf("Scroll(%s)", o.Direction) }
func (CreateBuffer) String() string     { return "CreateBuffer" }
func (CloseBuffer) String() string      { return "CloseBuffer" }
func (o SwitchBuffer) String() string   { return fmt.Sprintf("SwitchBuffer(%d)", o.Index) }
func (o CycleBuffer) String() string    { return fmt.Sprintf("CycleBuffer(%s)", o.Direction) }
func (o SwitchMode) String() string     { return fmt.Sprintf("SwitchMode(%s)", o.Mode.Name()) }
func (o CyclePane) String() string      { return fmt.Sprintf("CyclePane(%s)", o.Direction) }
func (o CommandInput) String() string   { return fmt.Sprintf("CommandInput(%q)", o.Rune) }
func (CommandBackspace) String() string { return "CommandBackspace" }
func (o ExecuteCommand) String() string { return fmt.Sprintf("ExecuteCommand(%q)", o.Command) }
func (o SearchChar) String() string     { return fmt.Sprintf("SearchChar(%q %s)", o.Rune, o.Direction) }
func (o Request) String() string        { return fmt.Sprintf("Request(%s)", o.Name) }
func (Quit) String() string             { return "Quit" }
