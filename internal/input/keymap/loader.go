package keymap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Format identifies a keymap file encoding.
type Format uint8

const (
	// FormatTOML is the default keymap format.
	FormatTOML Format = iota
	// FormatYAML reads .yaml and .yml files.
	FormatYAML
	// FormatJSON reads JSON with comments and trailing commas.
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath selects a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc", ".hujson":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads a keymap file and builds a table from its overrides.
func LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file %s: %w", path, err)
	}
	return parse(path, format, data)
}

// Load reads keymap overrides in the given format from r.
func Load(r io.Reader, format Format) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return parse("<reader>", format, data)
}

func parse(source string, format Format, data []byte) (*Table, error) {
	overrides, err := decode(format, data)
	if err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return New(overrides)
}

func decode(format Format, data []byte) (map[string]map[string]string, error) {
	var overrides map[string]map[string]string
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &overrides); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			return nil, err
		}
	case FormatJSON:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(std, &overrides); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return overrides, nil
}
