package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the runtime settings of the editor.
type Config struct {
	Log   LogConfig
	Input InputConfig
	View  ViewConfig
}

// LogConfig controls the log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string

	// File is the log file path. The terminal belongs to the editor, so
	// logs never go to stderr while it runs.
	File string
}

// InputConfig controls key resolution.
type InputConfig struct {
	// PrefixTimeout is how long an armed prefix waits for its next key.
	PrefixTimeout time.Duration

	// HistorySize is the number of key events remembered.
	HistorySize int

	// Keymap is an optional keymap file (.toml, .yaml or .json).
	Keymap string

	// WatchKeymap reloads the keymap file when it changes.
	WatchKeymap bool
}

// ViewConfig controls presentation.
type ViewConfig struct {
	PageSize int
	TabWidth int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogFile(),
		},
		Input: InputConfig{
			PrefixTimeout: time.Second,
			HistorySize:   16,
			WatchKeymap:   true,
		},
		View: ViewConfig{
			PageSize: 8,
			TabWidth: 4,
		},
	}
}

// DefaultLogFile returns $XDG_STATE_HOME/lx/lx.log, falling back to
// ~/.local/state and then the temp directory.
func DefaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "state")
		} else {
			dir = os.TempDir()
		}
	}
	return filepath.Join(dir, "lx", "lx.log")
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks every setting and returns the first invalid one as a
// *ValidationError.
func (c Config) Validate() error {
	level := strings.ToLower(c.Log.Level)
	valid := false
	for _, l := range logLevels {
		if l == level || (level == "warning" && l == "warn") {
			valid = true
		}
	}
	if !valid {
		return &ValidationError{Path: "log.level", Message: "must be one of " + strings.Join(logLevels, ", "), Value: c.Log.Level, Code: ErrCodeInvalidEnum}
	}
	if c.Log.File == "" {
		return &ValidationError{Path: "log.file", Message: "must not be empty", Value: c.Log.File, Code: ErrCodeRequiredMissing}
	}
	if c.Input.PrefixTimeout <= 0 {
		return &ValidationError{Path: "input.prefix_timeout", Message: "must be positive", Value: c.Input.PrefixTimeout, Code: ErrCodeOutOfRange}
	}
	if c.Input.HistorySize < 1 || c.Input.HistorySize > 1024 {
		return &ValidationError{Path: "input.history_size", Message: "must be between 1 and 1024", Value: c.Input.HistorySize, Code: ErrCodeOutOfRange}
	}
	if c.View.PageSize < 1 {
		return &ValidationError{Path: "view.page_size", Message: "must be at least 1", Value: c.View.PageSize, Code: ErrCodeOutOfRange}
	}
	if c.View.TabWidth < 1 || c.View.TabWidth > 16 {
		return &ValidationError{Path: "view.tab_width", Message: "must be between 1 and 16", Value: c.View.TabWidth, Code: ErrCodeOutOfRange}
	}
	return nil
}
