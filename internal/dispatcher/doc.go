// Package dispatcher turns key events into editor operations and applies
// them.
//
// Dispatch is the resolution step. It appends the key to the history and
// walks a fixed priority order:
//
//  1. Armed prefix: the key is consumed by the prefix. It yields an
//     operation, arms a sub-prefix, or does nothing. The prefix is cleared
//     in every case.
//  2. Prefix trigger: the key arms its prefix with a deadline taken from
//     the configured clock.
//  3. Global mode switch keys (keymap section "modes").
//  4. The escape, accept and prompt keys of the current mode.
//  5. The table of the current mode.
//
// An armed prefix whose deadline has passed is dropped before step 2, so the
// key that arrives late is dispatched as if no prefix had been armed.
//
// Execute is the application step. It applies one operation to the editor
// state: buffer edits and motions, registry changes, mode changes and
// command line execution.
//
// Basic use:
//
//	d := dispatcher.New(dispatcher.DefaultConfig().WithLogger(logger))
//	st := editor.New(editor.DefaultOptions())
//
//	op := d.Dispatch(st, ev)
//	d.Execute(st, op)
//
// The dispatcher is not safe for concurrent use with the same state; the
// host serializes calls on its event loop.
package dispatcher
