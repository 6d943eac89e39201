package buffer

import "github.com/google/uuid"

// Registry is an ordered, never-empty list of buffers with one active.
type Registry struct {
	buffers []*Buffer
	active  int
	opts    []Option
}

// NewRegistry creates a registry holding one empty buffer. The options are
// applied to every buffer the registry creates.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		buffers: []*Buffer{New(opts...)},
		opts:    opts,
	}
}

// Len returns the number of open buffers.
func (r *Registry) Len() int {
	return len(r.buffers)
}

// ActiveIndex returns the index of the active buffer.
func (r *Registry) ActiveIndex() int {
	return r.active
}

// Active returns the active buffer.
func (r *Registry) Active() *Buffer {
	return r.buffers[r.active]
}

// Buffers returns the open buffers in order.
func (r *Registry) Buffers() []*Buffer {
	out := make([]*Buffer, len(r.buffers))
	copy(out, r.buffers)
	return out
}

// Index returns the position of the buffer with the given ID, or -1.
func (r *Registry) Index(id uuid.UUID) int {
	for i, b := range r.buffers {
		if b.id == id {
			return i
		}
	}
	return -1
}

// Create appends an empty buffer and makes it active.
func (r *Registry) Create() *Buffer {
	b := New(r.opts...)
	r.buffers = append(r.buffers, b)
	r.active = len(r.buffers) - 1
	return b
}

// Close removes the active buffer. The buffer before it becomes active, or
// the first one if the removed buffer was first. Closing the only buffer
// leaves the registry untouched and returns true to request termination.
func (r *Registry) Close() (terminated bool) {
	if len(r.buffers) == 1 {
		return true
	}
	removed := r.active
	r.buffers = append(r.buffers[:removed], r.buffers[removed+1:]...)
	r.active = max(removed-1, 0)
	return false
}

// SwitchTo makes buffer n active. Out-of-range indices are ignored and
// reported with false.
func (r *Registry) SwitchTo(n int) bool {
	if n < 0 || n >= len(r.buffers) {
		return false
	}
	r.active = n
	return true
}

// Cycle moves the active index one step in dir, wrapping at either end.
func (r *Registry) Cycle(dir Direction) {
	n := len(r.buffers)
	r.active = ((r.active+int(dir))%n + n) % n
}
