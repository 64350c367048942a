package watcher

import (
	"context"
	"sync"
	"time"
)

// pollingWatcher fetches the payload at fixed intervals and emits a result
// when the compare function reports a change.
type pollingWatcher struct {
	fetch FetchFunc

	results chan Result
	stopCh  chan struct{}

	mu      sync.Mutex
	running bool
}

// NewPolling creates a polling Watcher around a fetch function. The poll
// interval and compare function come from the Config given to Start.
func NewPolling(fetch FetchFunc) Watcher {
	return &pollingWatcher{fetch: fetch}
}

// Type returns the watcher type identifier.
func (w *pollingWatcher) Type() Type {
	return TypePolling
}

// Start begins polling. The payload at start time becomes the comparison
// baseline, so only subsequent changes are reported.
func (w *pollingWatcher) Start(ctx context.Context, cfg Config) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.results = make(chan Result)
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Compare == nil {
		cfg.Compare = DefaultCompare
	}

	// Baseline fetch. A failure here is not fatal: the first successful
	// poll will then report a change.
	last, _ := w.fetch(ctx)

	stopCh := w.stopCh
	results := w.results

	go func() {
		defer close(results)

		ticker := time.NewTicker(cfg.PollInterval)
		defer ticker.Stop()

		emit := func(r Result) bool {
			select {
			case results <- r:
				return true
			case <-ctx.Done():
				return false
			case <-stopCh:
				return false
			}
		}

		for {
			select {
			case <-ticker.C:
				data, err := w.fetch(ctx)
				if err != nil {
					if !emit(Result{Err: err}) {
						return
					}
					continue
				}
				if !cfg.Compare(last, data) {
					continue
				}
				last = data
				if !emit(Result{Data: data}) {
					return
				}
			case <-ctx.Done():
				return
			case <-stopCh:
				return
			}
		}
	}()

	return nil
}

// Stop stops polling.
func (w *pollingWatcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	w.running = false
	close(w.stopCh)
	return nil
}

// Results returns the channel receiving poll results.
func (w *pollingWatcher) Results() <-chan Result {
	return w.results
}
