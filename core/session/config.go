package session

import (
	"time"
)

// Config holds session manager configuration.
type Config struct {
	// TTL is the session time-to-live (idle timeout).
	TTL time.Duration
	// TouchInterval is the minimum time between activity updates
	// (0 disables auto-touch).
	TouchInterval time.Duration
}

// defaultConfig returns default configuration.
func defaultConfig() *Config {
	return &Config{
		TTL:           24 * time.Hour,
		TouchInterval: 5 * time.Minute,
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Config)

// WithTTL sets the session time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.TTL = ttl
	}
}

// WithTouchInterval sets the minimum time between session activity updates,
// throttling store writes. Set to 0 to disable auto-touch.
func WithTouchInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.TouchInterval = interval
	}
}
