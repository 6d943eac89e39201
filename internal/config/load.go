package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
)

// Format identifies a config file encoding.
type Format uint8

const (
	// FormatTOML reads .toml files.
	FormatTOML Format = iota
	// FormatINI reads .ini and .conf files.
	FormatINI
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatINI:
		return "ini"
	default:
		return "unknown"
	}
}

// FormatFromPath selects a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".ini", ".conf":
		return FormatINI, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lx/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lx", "config.toml")
}

// Load reads the config file at path on top of the defaults. A missing
// file or an empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads the config file at path on top of the defaults. Unknown
// settings and values of the wrong type are errors.
func LoadFile(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg := Default()
	if err := cfg.parse(path, format, data); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse applies data in the given format on top of the defaults.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	if err := cfg.parse("<data>", format, data); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) parse(source string, format Format, data []byte) error {
	switch format {
	case FormatTOML:
		return c.parseTOML(source, data)
	case FormatINI:
		return c.parseINI(source, data)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

func (c *Config) parseTOML(source string, data []byte) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}

	for _, section := range sortedKeys(doc) {
		table, ok := doc[section].(map[string]any)
		if !ok {
			return fmt.Errorf("%s: %w: %s", source, ErrSettingNotFound, section)
		}
		for _, name := range sortedKeys(table) {
			v := table[name]
			switch v.(type) {
			case string, bool, int64, float64:
			default:
				return fmt.Errorf("%s: %w", source, &TypeError{Path: section + "." + name, Expected: "scalar", Value: fmt.Sprint(v)})
			}
			if err := c.Set(section+"."+name, fmt.Sprint(v)); err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
		}
	}
	return nil
}

func (c *Config) parseINI(source string, data []byte) error {
	f, err := ini.Load(data)
	if err != nil {
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	for _, sec := range f.Sections() {
		section := strings.ToLower(sec.Name())
		for _, k := range sec.Keys() {
			if err := c.Set(section+"."+k.Name(), k.String()); err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
