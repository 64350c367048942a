package watcher

import (
	"context"
	"sync"
)

// noopWatcher implements Watcher but never reports changes.
type noopWatcher struct {
	results chan Result
	stopCh  chan struct{}

	mu      sync.Mutex
	running bool
}

// NewNoop creates a Watcher that never reports changes. Immutable sources
// return it so that watching them is explicitly a no-op rather than an
// error.
func NewNoop() Watcher {
	return &noopWatcher{}
}

// Type returns the watcher type identifier.
func (w *noopWatcher) Type() Type {
	return TypeNoop
}

// Start begins the noop watcher. It blocks until Stop or context
// cancellation, emitting nothing.
func (w *noopWatcher) Start(ctx context.Context, cfg Config) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.results = make(chan Result)
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	go func() {
		defer close(w.results)
		select {
		case <-ctx.Done():
		case <-w.stopCh:
		}
	}()

	return nil
}

// Stop stops the noop watcher.
func (w *noopWatcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	w.running = false
	close(w.stopCh)
	return nil
}

// Results returns a channel that never receives results.
func (w *noopWatcher) Results() <-chan Result {
	return w.results
}
