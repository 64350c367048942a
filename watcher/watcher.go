package watcher

import "context"

// Watcher watches a payload source and reports changes on a channel.
// Implementations include the polling, subscription, and noop watchers.
type Watcher interface {
	// Type returns the watcher type identifier.
	Type() Type

	// Start begins watching. Results are delivered on the channel returned
	// by Results, which is created here and closed by Stop.
	Start(ctx context.Context, cfg Config) error

	// Stop stops watching and releases resources. After Stop returns, no
	// more results are sent.
	Stop(ctx context.Context) error

	// Results returns the channel receiving watch results.
	// Returns nil if Start has not been called.
	Results() <-chan Result
}
