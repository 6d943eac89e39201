package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type setter func(c *Config, path, value string) error

// settings maps "section.name" paths to their setters. Every source (TOML,
// INI, environment) goes through this table, so they accept the same keys.
var settings = map[string]setter{
	"log.level": func(c *Config, _, v string) error {
		c.Log.Level = strings.ToLower(v)
		return nil
	},
	"log.file": func(c *Config, _, v string) error {
		c.Log.File = expandHome(v)
		return nil
	},
	"input.prefix_timeout": func(c *Config, p, v string) error {
		d, err := parseDuration(v)
		if err != nil {
			return &TypeError{Path: p, Expected: "duration", Value: v}
		}
		c.Input.PrefixTimeout = d
		return nil
	},
	"input.history_size": intSetter(func(c *Config) *int { return &c.Input.HistorySize }),
	"input.keymap": func(c *Config, _, v string) error {
		c.Input.Keymap = expandHome(v)
		return nil
	},
	"input.watch_keymap": func(c *Config, p, v string) error {
		b, ok := parseBool(v)
		if !ok {
			return &TypeError{Path: p, Expected: "bool", Value: v}
		}
		c.Input.WatchKeymap = b
		return nil
	},
	"view.page_size": intSetter(func(c *Config) *int { return &c.View.PageSize }),
	"view.tab_width": intSetter(func(c *Config) *int { return &c.View.TabWidth }),
}

func intSetter(field func(*Config) *int) setter {
	return func(c *Config, p, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &TypeError{Path: p, Expected: "int", Value: v}
		}
		*field(c) = n
		return nil
	}
}

// Set assigns the textual value to the setting at path.
func (c *Config) Set(path, value string) error {
	set, ok := settings[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	return set(c, path, strings.TrimSpace(value))
}

// Paths returns every known setting path in sorted order.
func Paths() []string {
	return sortedKeys(settings)
}

// parseDuration accepts Go durations ("1s", "750ms") and bare integers,
// which are milliseconds.
func parseDuration(s string) (time.Duration, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
