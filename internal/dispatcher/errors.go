package dispatcher

import (
	"errors"
	"fmt"
)

// Command errors.
var (
	// ErrEmptyCommand indicates an empty command line.
	ErrEmptyCommand = errors.New("dispatcher: empty command")

	// ErrUnknownCommand indicates a command outside the vocabulary.
	ErrUnknownCommand = errors.New("dispatcher: unknown command")

	// ErrBadArgument indicates a missing or malformed command argument.
	ErrBadArgument = errors.New("dispatcher: bad command argument")
)

// CommandError describes a command line that could not be parsed.
type CommandError struct {
	Line string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Line)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
