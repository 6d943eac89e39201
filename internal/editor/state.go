package editor

import (
	"time"

	"github.com/lxedit/lx/internal/engine/buffer"
	"github.com/lxedit/lx/internal/input/key"
	"github.com/lxedit/lx/internal/input/keymap"
	"github.com/lxedit/lx/internal/input/mode"
	"github.com/lxedit/lx/internal/input/prefix"
)

// Options configures a new State.
type Options struct {
	// HistorySize is the number of key events remembered.
	HistorySize int

	// PageSize is the number of lines a page scroll moves.
	PageSize int

	// PrefixTimeout is how long an armed prefix waits for its next key.
	PrefixTimeout time.Duration

	// TabWidth is the tab stop width of new buffers.
	TabWidth int

	// Keymap is the binding table. Nil selects the defaults.
	Keymap *keymap.Table
}

// DefaultOptions returns the default state options.
func DefaultOptions() Options {
	return Options{
		HistorySize:   16,
		PageSize:      8,
		PrefixTimeout: prefix.DefaultTimeout,
		TabWidth:      4,
	}
}

// State is the editor state threaded through dispatch and execution.
type State struct {
	machine  *mode.Machine
	prefix   prefix.State
	registry *buffer.Registry
	history  *key.History
	keymap   *keymap.Table

	pageSize      int
	prefixTimeout time.Duration

	request string
	quit    bool
}

// New creates the session state: one empty buffer, Insert mode, nothing
// armed.
func New(opts Options) *State {
	def := DefaultOptions()
	if opts.HistorySize <= 0 {
		opts.HistorySize = def.HistorySize
	}
	if opts.PageSize <= 0 {
		opts.PageSize = def.PageSize
	}
	if opts.PrefixTimeout <= 0 {
		opts.PrefixTimeout = def.PrefixTimeout
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = def.TabWidth
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.Default()
	}

	return &State{
		machine:       mode.NewMachine(),
		registry:      buffer.NewRegistry(buffer.WithTabWidth(opts.TabWidth)),
		history:       key.NewHistory(opts.HistorySize),
		keymap:        opts.Keymap,
		pageSize:      opts.PageSize,
		prefixTimeout: opts.PrefixTimeout,
	}
}

// Mode returns the active mode.
func (s *State) Mode() mode.Mode { return s.machine.Current() }

// Machine returns the mode state machine.
func (s *State) Machine() *mode.Machine { return s.machine }

// Prefix returns the pending prefix state.
func (s *State) Prefix() *prefix.State { return &s.prefix }

// Registry returns the buffer registry.
func (s *State) Registry() *buffer.Registry { return s.registry }

// History returns the recent key history.
func (s *State) History() *key.History { return s.history }

// Keymap returns the binding table.
func (s *State) Keymap() *keymap.Table { return s.keymap }

// SetKeymap replaces the binding table. Any armed prefix is dropped since
// its trigger may no longer exist.
func (s *State) SetKeymap(t *keymap.Table) {
	if t == nil {
		return
	}
	s.keymap = t
	s.prefix.Clear()
}

// PageSize returns the number of lines a page scroll moves.
func (s *State) PageSize() int { return s.pageSize }

// PrefixTimeout returns the prefix wait duration.
func (s *State) PrefixTimeout() time.Duration { return s.prefixTimeout }

// Quit reports whether termination was requested.
func (s *State) Quit() bool { return s.quit }

// SetQuit records a termination request. It is never cleared.
func (s *State) SetQuit() { s.quit = true }

// Request returns the last external request.
func (s *State) Request() string { return s.request }

// SetRequest records an external request.
func (s *State) SetRequest(name string) { s.request = name }

// TakeRequest returns the last external request and clears it.
func (s *State) TakeRequest() string {
	r := s.request
	s.request = ""
	return r
}

// CursorPosition returns the active buffer's cursor as a mode position.
func (s *State) CursorPosition() mode.Position {
	p := s.registry.Active().Position()
	return mode.Position{Line: p.Line, Column: p.Column}
}
