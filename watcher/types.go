// Package watcher provides change detection for snapshot payload sources.
// It supports polling-based and subscription-based (event-driven) watchers,
// plus a noop watcher for immutable sources.
package watcher

import (
	"bytes"
	"context"
	"crypto/sha256"
	"time"
)

// DefaultPollInterval is the default polling interval for change detection.
const DefaultPollInterval = 30 * time.Second

// Type identifies a watcher implementation.
type Type string

// Standard watcher types.
const (
	// TypePolling is a watcher that polls at regular intervals.
	TypePolling Type = "polling"

	// TypeSubscription is an event-based watcher (e.g., fsnotify).
	TypeSubscription Type = "subscription"

	// TypeNoop is a watcher that never fires (for immutable sources).
	TypeNoop Type = "noop"
)

// CompareFunc reports whether two payloads differ.
type CompareFunc func(old, new []byte) bool

// DefaultCompare compares payloads directly using bytes.Equal.
func DefaultCompare(old, new []byte) bool {
	return !bytes.Equal(old, new)
}

// HashCompare compares payloads by SHA-256 hash. Useful when keeping a full
// copy of large payloads is too expensive for the caller's compare function.
func HashCompare(old, new []byte) bool {
	return sha256.Sum256(old) != sha256.Sum256(new)
}

// Config controls watcher behavior.
type Config struct {
	// PollInterval is the interval between polls. Only used by polling
	// watchers. Default is 30 seconds.
	PollInterval time.Duration

	// Compare detects changes between the previous and current payload.
	// Default is DefaultCompare.
	Compare CompareFunc
}

// ConfigOption is a functional option for Config.
type ConfigOption func(*Config)

// WithPollInterval sets the polling interval.
func WithPollInterval(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.PollInterval = d
	}
}

// WithCompareFunc sets the comparison function for change detection.
func WithCompareFunc(f CompareFunc) ConfigOption {
	return func(c *Config) {
		c.Compare = f
	}
}

// NewConfig creates a Config with the given options applied to defaults.
func NewConfig(opts ...ConfigOption) Config {
	cfg := Config{
		PollInterval: DefaultPollInterval,
		Compare:      DefaultCompare,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Result is one watch cycle outcome: a changed payload or an error.
type Result struct {
	// Data is the latest payload from the source. Set when a change was
	// detected.
	Data []byte

	// Err is set when the watch cycle failed.
	Err error
}

// FetchFunc retrieves the current payload from the watched source.
type FetchFunc func(ctx context.Context) ([]byte, error)

// NotifyFunc is the callback subscription handlers invoke on change.
// Three patterns are supported:
//   - notify(data, nil): the new payload is already in hand
//   - notify(nil, err): the subscription hit an error
//   - notify(nil, nil): something changed; fetch the payload separately
type NotifyFunc func(data []byte, err error)

// StopFunc tears down a subscription.
type StopFunc func(ctx context.Context) error
