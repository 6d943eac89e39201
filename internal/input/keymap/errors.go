package keymap

import (
	"errors"
	"fmt"
)

// Errors returned when building a table.
var (
	// ErrUnknownSection indicates a section name that has no actions.
	ErrUnknownSection = errors.New("unknown section")

	// ErrUnknownEntry indicates an entry name not defined in its section.
	ErrUnknownEntry = errors.New("unknown entry")

	// ErrConflict indicates two actions bound to the same key.
	ErrConflict = errors.New("conflicting binding")

	// ErrUnsupportedFormat indicates a keymap file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported keymap format")
)

// ConfigError describes a rejected keymap entry.
type ConfigError struct {
	// Section is the section containing the entry.
	Section string
	// Entry is the entry name within the section.
	Entry string
	// Spec is the key specification as written.
	Spec string
	// Other names the action already holding the key, for conflicts.
	Other string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("keymap [%s] %s = %q: %v", e.Section, e.Entry, e.Spec, e.Err)
	if e.Other != "" {
		msg += " with " + e.Other
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ParseError represents a keymap file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
