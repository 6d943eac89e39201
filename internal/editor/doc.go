// Package editor holds the complete state of the input core and produces
// read-only snapshots of it for rendering.
//
// State is created once per session with one empty buffer in Insert mode.
// It is owned by a single goroutine; the dispatcher reads it and the
// executor mutates it, and nothing else touches it.
package editor
