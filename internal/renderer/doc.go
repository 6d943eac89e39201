// Package renderer draws editor snapshots onto a terminal backend.
//
// The screen is split into three regions:
//
//	┌─────────────────────────────────────────┐
//	│  Text area (active buffer or Overview)  │
//	├─────────────────────────────────────────┤
//	│  Status line: mode, prefix, buffers     │
//	├─────────────────────────────────────────┤
//	│  Command prompt or last key             │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(state.Snapshot())
//
// The renderer only reads snapshots; it never touches editor state.
package renderer
