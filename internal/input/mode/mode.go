package mode

import (
	"unicode/utf8"
)

// Kind identifies one of the editor modes.
type Kind uint8

const (
	// KindInsert is the text input mode.
	KindInsert Kind = iota

	// KindEdit is the navigation and buffer management mode.
	KindEdit

	// KindCommand is the command prompt mode.
	KindCommand

	// KindOverview is the pane focus mode.
	KindOverview
)

// String returns the lowercase mode name.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindEdit:
		return "edit"
	case KindCommand:
		return "command"
	case KindOverview:
		return "overview"
	default:
		return "unknown"
	}
}

// Pane is the focus target of Overview mode.
type Pane uint8

const (
	// PaneBuffers lists open buffers.
	PaneBuffers Pane = iota

	// PaneTabs lists tabs.
	PaneTabs

	// PaneHistory lists recent keys.
	PaneHistory

	paneCount
)

// String returns a human-readable pane name.
func (p Pane) String() string {
	switch p {
	case PaneBuffers:
		return "buffers"
	case PaneTabs:
		return "tabs"
	case PaneHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Next returns the following pane, wrapping around.
func (p Pane) Next() Pane {
	return (p + 1) % paneCount
}

// Prev returns the preceding pane, wrapping around.
func (p Pane) Prev() Pane {
	return (p + paneCount - 1) % paneCount
}

// Mode is the active editing mode. Command carries the prompt text and
// Overview carries the focused pane; other kinds have no payload.
// The zero value is Insert.
type Mode struct {
	kind    Kind
	command string
	pane    Pane
}

// Insert returns the Insert mode.
func Insert() Mode { return Mode{kind: KindInsert} }

// Edit returns the Edit mode.
func Edit() Mode { return Mode{kind: KindEdit} }

// Command returns the Command mode with an empty prompt.
func Command() Mode { return Mode{kind: KindCommand} }

// Overview returns the Overview mode focused on pane.
func Overview(pane Pane) Mode { return Mode{kind: KindOverview, pane: pane} }

// Kind returns the mode kind.
func (m Mode) Kind() Kind { return m.kind }

// Is reports whether the mode is of kind k.
func (m Mode) Is(k Kind) bool { return m.kind == k }

// Name returns the lowercase mode identifier.
func (m Mode) Name() string { return m.kind.String() }

// DisplayName returns the status line label.
func (m Mode) DisplayName() string {
	switch m.kind {
	case KindInsert:
		return "INSERT"
	case KindEdit:
		return "EDIT"
	case KindCommand:
		return "COMMAND"
	case KindOverview:
		return "OVERVIEW"
	default:
		return "UNKNOWN"
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return m.DisplayName()
}

// CursorStyle returns the cursor style shown in this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m.kind {
	case KindInsert, KindCommand:
		return CursorBar
	default:
		return CursorBlock
	}
}

// CommandLine returns the prompt text. Empty outside Command mode.
func (m Mode) CommandLine() string { return m.command }

// Pane returns the focused pane. Meaningful only in Overview mode.
func (m Mode) Pane() Pane { return m.pane }

// AppendCommand returns the mode with r appended to the prompt.
// Modes other than Command are returned unchanged.
func (m Mode) AppendCommand(r rune) Mode {
	if m.kind != KindCommand {
		return m
	}
	m.command += string(r)
	return m
}

// BackspaceCommand returns the mode with the last prompt rune removed.
func (m Mode) BackspaceCommand() Mode {
	if m.kind != KindCommand || m.command == "" {
		return m
	}
	_, size := utf8.DecodeLastRuneInString(m.command)
	m.command = m.command[:len(m.command)-size]
	return m
}

// WithPane returns the mode focused on pane.
// Modes other than Overview are returned unchanged.
func (m Mode) WithPane(p Pane) Mode {
	if m.kind != KindOverview {
		return m
	}
	m.pane = p
	return m
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor.
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Position is a cursor location. Lines and columns are 0-indexed;
// Column is a display column.
type Position struct {
	Line   int
	Column int
}
