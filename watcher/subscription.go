package watcher

import (
	"context"
	"sync"
)

// SubscriptionHandler registers for change notifications from a source.
type SubscriptionHandler interface {
	// Subscribe starts receiving change notifications. The notify function
	// is called when data changes or an error occurs. Returns a StopFunc to
	// unsubscribe, or an error if subscription failed.
	Subscribe(ctx context.Context, notify NotifyFunc) (StopFunc, error)
}

// SubscriptionHandlerFunc is a function that implements SubscriptionHandler.
type SubscriptionHandlerFunc func(ctx context.Context, notify NotifyFunc) (StopFunc, error)

// Subscribe implements SubscriptionHandler.
func (f SubscriptionHandlerFunc) Subscribe(ctx context.Context, notify NotifyFunc) (StopFunc, error) {
	return f(ctx, notify)
}

// subscriptionWatcher implements Watcher over event-based notifications.
type subscriptionWatcher struct {
	handler SubscriptionHandler
	fetch   FetchFunc

	results chan Result
	stopCh  chan struct{}
	stopFn  StopFunc

	mu      sync.Mutex
	running bool
}

// NewSubscription creates an event-driven Watcher. The handler delivers
// notifications; fetch retrieves the payload for event-only notifications
// (notify(nil, nil)). Unchanged payloads, per the Config's compare
// function, are suppressed.
func NewSubscription(handler SubscriptionHandler, fetch FetchFunc) Watcher {
	return &subscriptionWatcher{handler: handler, fetch: fetch}
}

// Type returns the watcher type identifier.
func (w *subscriptionWatcher) Type() Type {
	return TypeSubscription
}

// Start begins the subscription. The payload at start time becomes the
// comparison baseline.
func (w *subscriptionWatcher) Start(ctx context.Context, cfg Config) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.results = make(chan Result)
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	if cfg.Compare == nil {
		cfg.Compare = DefaultCompare
	}

	var baseline []byte
	if w.fetch != nil {
		baseline, _ = w.fetch(ctx)
	}

	stopCh := w.stopCh
	results := w.results

	var lastMu sync.Mutex
	last := baseline

	emit := func(r Result) {
		select {
		case results <- r:
		case <-ctx.Done():
		case <-stopCh:
		}
	}

	notify := func(data []byte, err error) {
		if err != nil {
			emit(Result{Err: err})
			return
		}
		if data == nil {
			// Event-only notification: fetch the payload separately.
			if w.fetch == nil {
				return
			}
			fetched, fetchErr := w.fetch(ctx)
			if fetchErr != nil {
				emit(Result{Err: fetchErr})
				return
			}
			data = fetched
		}

		lastMu.Lock()
		changed := cfg.Compare(last, data)
		if changed {
			last = data
		}
		lastMu.Unlock()

		if changed {
			emit(Result{Data: data})
		}
	}

	stop, err := w.handler.Subscribe(ctx, notify)
	if err != nil {
		w.mu.Lock()
		w.running = false
		close(w.stopCh)
		close(w.results)
		w.mu.Unlock()
		return err
	}

	w.mu.Lock()
	w.stopFn = stop
	w.mu.Unlock()

	return nil
}

// Stop stops the subscription.
func (w *subscriptionWatcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.stopCh)
	stop := w.stopFn
	w.stopFn = nil
	w.mu.Unlock()

	var err error
	if stop != nil {
		err = stop(ctx)
	}

	w.mu.Lock()
	close(w.results)
	w.mu.Unlock()

	return err
}

// Results returns the channel receiving subscription results.
func (w *subscriptionWatcher) Results() <-chan Result {
	return w.results
}
