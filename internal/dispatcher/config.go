package dispatcher

import "time"

// Logger is the logging surface the dispatcher needs.
type Logger interface {
	Debug(msg string, args ...any)
}

// Config holds dispatcher configuration options.
type Config struct {
	// Clock returns the current time. Prefix deadlines are compared against
	// it, so tests substitute a fake clock.
	Clock func() time.Time

	// Logger receives mode transition and prefix messages. Nil disables
	// logging.
	Logger Logger

	// EnableMetrics enables key and operation counters.
	EnableMetrics bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Clock:         time.Now,
		EnableMetrics: false,
	}
}

// WithClock returns a copy of the config using clock for deadlines.
func (c Config) WithClock(clock func() time.Time) Config {
	c.Clock = clock
	return c
}

// WithLogger returns a copy of the config with the logger set.
func (c Config) WithLogger(l Logger) Config {
	c.Logger = l
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
