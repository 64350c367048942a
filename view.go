package anaume

import (
	"context"
	"fmt"
	"sync"

	"github.com/yacchi/anaume/format"
	"github.com/yacchi/anaume/source"
	"github.com/yacchi/anaume/value"
)

// subscriber wraps a callback with a unique ID for reliable unsubscription.
type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// View binds a payload source, a format parser, and a default instance into
// a reloadable decoded value.
//
// A view is the local analog of holding a live reference into the store:
// Load fetches and decodes the current payload, Get returns the last
// decoded value, and Watch keeps the value fresh as the source changes.
type View[T any] struct {
	src      source.Source
	parser   format.Parser
	defaults T
	opts     options

	mu          sync.RWMutex
	resolved    T
	raw         value.Value
	loaded      bool
	subscribers []subscriber[T]
	nextSubID   uint64

	watchMu sync.Mutex
	unwatch func(ctx context.Context) error
}

// NewView creates a view over the given source and parser. The defaults
// fill absent top-level fields on every load, exactly as in Decode.
func NewView[T any](src source.Source, parser format.Parser, defaults T, opts ...Option) *View[T] {
	return &View[T]{
		src:      src,
		parser:   parser,
		defaults: defaults,
		opts:     newOptions(opts),
	}
}

// Load fetches the payload from the source, decodes it with defaults
// filling, and updates the resolved value. Subscribers are notified after
// locks are released.
func (v *View[T]) Load(ctx context.Context) error {
	data, err := v.src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot payload: %w", err)
	}
	return v.apply(data)
}

// apply parses and decodes a payload, then publishes the result.
func (v *View[T]) apply(data []byte) error {
	raw, err := v.parser.Parse(data)
	if err != nil {
		return err
	}

	result, err := Decode(raw, v.defaults, WithDecoder(v.opts.dec))
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.resolved = result
	v.raw = raw
	v.loaded = true
	subs := append([]subscriber[T](nil), v.subscribers...)
	v.mu.Unlock()

	for _, s := range subs {
		s.fn(result)
	}
	return nil
}

// Get returns the last decoded value. Before the first successful Load it
// returns the zero value; check Loaded when the distinction matters.
func (v *View[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.resolved
}

// Loaded reports whether the view holds a successfully decoded value.
func (v *View[T]) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}

// Snapshot returns the last parsed payload as a snapshot, before defaults
// filling. The snapshot is absent until the first successful Load.
func (v *View[T]) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.loaded {
		return AbsentSnapshot("")
	}
	return NewSnapshot("", v.raw)
}

// Subscribe registers a callback invoked with every newly decoded value.
// The returned function cancels the subscription.
func (v *View[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	v.nextSubID++
	id := v.nextSubID
	v.subscribers = append(v.subscribers, subscriber[T]{id: id, fn: fn})
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, s := range v.subscribers {
			if s.id == id {
				v.subscribers = append(v.subscribers[:i], v.subscribers[i+1:]...)
				break
			}
		}
	}
}
