package key

// History is a bounded record of recently dispatched key events.
// When full, adding an event discards the oldest one.
type History struct {
	events []Event
	limit  int
}

// NewHistory creates a history holding at most limit events.
// A non-positive limit is treated as 1.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{
		events: make([]Event, 0, limit),
		limit:  limit,
	}
}

// Add appends an event, evicting the oldest if the history is full.
func (h *History) Add(ev Event) {
	if len(h.events) >= h.limit {
		copy(h.events, h.events[1:])
		h.events = h.events[:len(h.events)-1]
	}
	h.events = append(h.events, ev)
}

// Last returns the most recent event.
func (h *History) Last() (Event, bool) {
	if len(h.events) == 0 {
		return Event{}, false
	}
	return h.events[len(h.events)-1], true
}

// Len returns the number of recorded events.
func (h *History) Len() int {
	return len(h.events)
}

// Limit returns the capacity of the history.
func (h *History) Limit() int {
	return h.limit
}

// Events returns a copy of the recorded events, oldest first.
func (h *History) Events() []Event {
	out := make([]Event, len(h.events))
	copy(out, h.events)
	return out
}

// Clear removes all recorded events.
func (h *History) Clear() {
	h.events = h.events[:0]
}
