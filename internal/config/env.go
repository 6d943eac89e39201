package config

import (
	"os"
	"strings"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "LX_"

// EnvLoader applies configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "LX_")
	mapping map[string]string // Env var -> setting path
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "LX_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

// defaultEnvMapping returns short names for settings whose derived
// variable name would be awkward.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "KEYMAP":         "input.keymap",
		prefix + "PREFIX_TIMEOUT": "input.prefix_timeout",
	}
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, path string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = path
}

// Apply sets every prefixed variable on c. Variables that name no setting
// are ignored; values that fail to convert are errors.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Apply(c *Config) error {
	for _, env := range sortedEnv(l.environ()) {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if _, known := settings[path]; !known {
			continue
		}
		if err := c.Set(path, value); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv applies LX_* overrides to c.
func ApplyEnv(c *Config) error {
	return NewEnvLoader(EnvPrefix).Apply(c)
}

// envToPath converts LX_INPUT_HISTORY_SIZE to input.history_size.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, rest, ok := strings.Cut(name, "_")
	if !ok {
		return name
	}
	return section + "." + rest
}

func sortedEnv(env []string) []string {
	m := make(map[string]struct{}, len(env))
	for _, e := range env {
		m[e] = struct{}{}
	}
	return sortedKeys(m)
}
