package store

import (
	"log/slog"
	"time"
)

// Config holds configuration for the Store.
type Config struct {
	// Logger receives structured progress output from the cascade engine.
	// Default: slog.Default()
	Logger *slog.Logger

	// Now supplies creation and last-modified timestamps. Overriding it
	// makes stored timestamps deterministic in tests.
	// Default: time.Now
	Now func() time.Time
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Logger: slog.Default(),
		Now:    time.Now,
	}
}

// validate fills in zero-valued fields with their defaults.
func (c *Config) validate() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}
