// Package bytes provides a byte slice backed snapshot payload source.
package bytes

import (
	"context"

	"github.com/yacchi/anaume/source"
	"github.com/yacchi/anaume/watcher"
)

// Source serves a raw snapshot payload from an in-memory byte slice.
type Source struct {
	data []byte
}

// Ensure Source implements the source interfaces.
var (
	_ source.Source    = (*Source)(nil)
	_ source.Watchable = (*Source)(nil)
)

// New creates a source from raw bytes.
func New(data []byte) *Source {
	return &Source{data: data}
}

// FromString creates a source from a string.
//
// Example:
//
//	src := bytes.FromString(`{"values": ["potato"]}`)
func FromString(data string) *Source {
	return New([]byte(data))
}

// Load implements the source.Source interface.
// Returns a copy so callers cannot modify the source data.
func (s *Source) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]byte, len(s.data))
	copy(result, s.data)
	return result, nil
}

// Watch implements the source.Watchable interface. Byte slice sources are
// immutable, so this returns a watcher that never fires.
func (s *Source) Watch() (watcher.Watcher, error) {
	return watcher.NewNoop(), nil
}
