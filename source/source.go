// Package source provides read-only access to raw snapshot payloads.
//
// A source only handles bytes; parsing into payload values is the format
// package's job. The remote store's own transport is out of scope - sources
// cover the local cases: fixtures, embedded payloads, and exported files.
package source

import (
	"context"
	"errors"

	"github.com/yacchi/anaume/watcher"
)

// ErrWatchNotSupported is returned when Watch is requested on a source that
// cannot report changes.
var ErrWatchNotSupported = errors.New("watch not supported for this source")

// Source loads a raw snapshot payload. Sources are format-agnostic and
// read-only.
type Source interface {
	// Load reads the raw payload. The context can be used for cancellation
	// and timeouts.
	Load(ctx context.Context) ([]byte, error)
}

// Watchable is implemented by sources that can report payload changes.
type Watchable interface {
	Source

	// Watch returns a watcher for this source. Immutable sources return a
	// noop watcher rather than an error.
	Watch() (watcher.Watcher, error)
}
