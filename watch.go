package anaume

import (
	"context"
	"errors"
	"fmt"

	"github.com/yacchi/anaume/source"
	"github.com/yacchi/anaume/watcher"
)

// ErrAlreadyWatching is returned when Watch is called on a view that is
// already watching its source.
var ErrAlreadyWatching = errors.New("view is already watching its source")

// Watch starts watching the view's source and reloads the decoded value on
// every change. The source must implement source.Watchable.
//
// Reload failures (parse or decode errors from a changed payload) do not
// stop the watch; they are delivered to the handler set with
// WithWatchErrorHandler, or dropped if none is set. The watch ends when ctx
// is cancelled or Unwatch is called.
func (v *View[T]) Watch(ctx context.Context, opts ...watcher.ConfigOption) error {
	ws, ok := v.src.(source.Watchable)
	if !ok {
		return source.ErrWatchNotSupported
	}

	v.watchMu.Lock()
	defer v.watchMu.Unlock()
	if v.unwatch != nil {
		return ErrAlreadyWatching
	}

	w, err := ws.Watch()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(ctx, watcher.NewConfig(opts...)); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	go func() {
		for result := range w.Results() {
			if result.Err != nil {
				v.notifyWatchError(result.Err)
				continue
			}
			if err := v.apply(result.Data); err != nil {
				v.notifyWatchError(err)
			}
		}
	}()

	v.unwatch = w.Stop
	return nil
}

// Unwatch stops watching the source. It is a no-op when the view is not
// watching.
func (v *View[T]) Unwatch(ctx context.Context) error {
	v.watchMu.Lock()
	stop := v.unwatch
	v.unwatch = nil
	v.watchMu.Unlock()

	if stop == nil {
		return nil
	}
	return stop(ctx)
}

func (v *View[T]) notifyWatchError(err error) {
	if v.opts.onWatchError != nil {
		v.opts.onWatchError(err)
	}
}
