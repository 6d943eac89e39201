package prefix

import (
	"time"

	"github.com/lxedit/lx/internal/input/key"
	"github.com/lxedit/lx/internal/input/keymap"
)

// DefaultTimeout is how long an armed prefix waits for its next key.
const DefaultTimeout = 1000 * time.Millisecond

// Kind identifies a prefix.
type Kind uint8

const (
	None Kind = iota
	Leader
	Buffer
	Tab
	Find
	Window
	Motion
	Search
)

// String returns the status line label. Window, Motion and Search labels
// include their default split flag or direction.
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Leader:
		return "Leader"
	case Buffer:
		return "Buffer"
	case Tab:
		return "Tab"
	case Find:
		return "Find Files"
	case Window:
		return "Win (s: false)"
	case Motion:
		return "Move FWD"
	case Search:
		return "Search FWD"
	default:
		return "Unknown"
	}
}

var triggers = map[keymap.Action]Kind{
	keymap.PrefixLeader: Leader,
	keymap.PrefixBuffer: Buffer,
	keymap.PrefixTab:    Tab,
	keymap.PrefixFind:   Find,
	keymap.PrefixWindow: Window,
	keymap.PrefixMotion: Motion,
	keymap.PrefixSearch: Search,
}

// Trigger returns the prefix armed by ev, if ev is a trigger key.
func Trigger(ev key.Event, t *keymap.Table) (Kind, bool) {
	a, ok := t.Match(keymap.SectionPrefixes, ev)
	if !ok {
		return None, false
	}
	k, ok := triggers[a]
	return k, ok
}

// State holds the armed prefix and its deadline.
type State struct {
	kind     Kind
	deadline time.Time
}

// Arm arms kind until now+timeout, replacing any armed prefix.
func (s *State) Arm(kind Kind, now time.Time, timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s.kind = kind
	s.deadline = now.Add(timeout)
}

// Armed returns the armed prefix if its deadline has not passed at now.
func (s *State) Armed(now time.Time) (Kind, bool) {
	if s.kind == None || !now.Before(s.deadline) {
		return None, false
	}
	return s.kind, true
}

// Kind returns the armed prefix without checking the deadline.
func (s *State) Kind() Kind {
	return s.kind
}

// Deadline returns when the armed prefix expires.
func (s *State) Deadline() (time.Time, bool) {
	if s.kind == None {
		return time.Time{}, false
	}
	return s.deadline, true
}

// Clear disarms the prefix.
func (s *State) Clear() {
	s.kind = None
	s.deadline = time.Time{}
}

// Expire disarms the prefix if its deadline has passed at now and reports
// whether it did.
func (s *State) Expire(now time.Time) bool {
	if s.kind == None || now.Before(s.deadline) {
		return false
	}
	s.Clear()
	return true
}
