// Package mode provides the modal state machine for lx.
//
// Exactly one Mode is active at any time:
//   - Insert: text input into the active buffer
//   - Edit: navigation and buffer management
//   - Command: a one-line command prompt
//   - Overview: a focus view over buffers, tabs or history
//
// Modes change in two ways. Global switches are bound in the keymap
// ([modes] section) and jump to any mode. Local transitions are fixed:
// Esc steps back (Insert to Edit to Overview, Command cancels to Edit),
// Enter steps forward (Overview to Edit, Edit to Insert) and ':' opens the
// prompt from Edit.
//
// # Machine
//
// Machine holds the current mode and applies the side effects of a switch:
//
//	leave Insert/Edit   save the cursor position
//	enter Insert        bar cursor, restore position
//	enter Edit          block cursor, restore position
//	enter Command       cursor moves to the status row
//	enter Overview      block cursor
//
// Side effects are recorded as a Presentation for the renderer; switching to
// the mode kind already active does nothing.
package mode
