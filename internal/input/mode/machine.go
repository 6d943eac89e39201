package mode

// Presentation describes how the renderer should show the cursor after the
// most recent mode switch.
type Presentation struct {
	// Style is the cursor shape.
	Style CursorStyle

	// Cursor is where the text cursor belongs.
	Cursor Position

	// StatusRow is true while the cursor lives on the status line.
	StatusRow bool
}

// ChangeCallback is called after the mode kind changes.
type ChangeCallback func(from, to Mode)

// Machine holds the active mode. It is not safe for concurrent use; the
// event loop goroutine owns it.
type Machine struct {
	current Mode

	// saved is the text cursor position recorded when leaving Insert or Edit.
	saved    Position
	hasSaved bool

	presentation Presentation

	callbacks []ChangeCallback
}

// NewMachine creates a machine in Insert mode.
func NewMachine() *Machine {
	return &Machine{
		current:      Insert(),
		presentation: Presentation{Style: CursorBar},
	}
}

// Current returns the active mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Presentation returns the cursor presentation for the active mode.
func (m *Machine) Presentation() Presentation {
	return m.presentation
}

// Saved returns the cursor position recorded when Insert or Edit was last left.
func (m *Machine) Saved() (Position, bool) {
	return m.saved, m.hasSaved
}

// Switch changes to mode to, with at being the current text cursor
// position. It returns false and does nothing when to has the kind already
// active.
func (m *Machine) Switch(to Mode, at Position) bool {
	from := m.current
	if from.kind == to.kind {
		return false
	}

	switch from.kind {
	case KindInsert, KindEdit:
		m.saved, m.hasSaved = at, true
	}

	restore := at
	if m.hasSaved {
		restore = m.saved
	}

	switch to.kind {
	case KindInsert:
		m.presentation = Presentation{Style: CursorBar, Cursor: restore}
	case KindEdit:
		m.presentation = Presentation{Style: CursorBlock, Cursor: restore}
	case KindCommand:
		m.presentation = Presentation{Style: CursorBar, Cursor: at, StatusRow: true}
	case KindOverview:
		m.presentation = Presentation{Style: CursorBlock, Cursor: at}
	}

	m.current = to
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	return true
}

// Update replaces the payload of the active mode (prompt text or pane)
// without side effects. It returns false if to is of a different kind.
func (m *Machine) Update(to Mode) bool {
	if m.current.kind != to.kind {
		return false
	}
	m.current = to
	return true
}

// Track moves the presented cursor without a mode change.
func (m *Machine) Track(at Position) {
	if !m.presentation.StatusRow {
		m.presentation.Cursor = at
	}
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Machine) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
