package anaume

import "github.com/yacchi/anaume/value"

// Snapshot is a retrieved view of the data stored at a path. A snapshot is
// either present with a payload value, or absent (the store has nothing at
// that path).
type Snapshot struct {
	path   string
	val    value.Value
	exists bool
}

// NewSnapshot creates a present snapshot for the given path.
func NewSnapshot(path string, v value.Value) Snapshot {
	return Snapshot{path: path, val: v, exists: true}
}

// AbsentSnapshot creates a snapshot marking that the store holds nothing at
// the given path.
func AbsentSnapshot(path string) Snapshot {
	return Snapshot{path: path}
}

// Path returns the store path the snapshot was read from.
func (s Snapshot) Path() string {
	return s.path
}

// Exists reports whether the store held a value at the path.
func (s Snapshot) Exists() bool {
	return s.exists
}

// Value returns the snapshot payload. An absent snapshot yields the
// explicit Null sentinel, so decoding it surfaces the decoder's own
// "value not found" instead of a defaulted record.
func (s Snapshot) Value() value.Value {
	if !s.exists {
		return value.Null()
	}
	return s.val
}

// DecodeSnapshot decodes a snapshot into T, filling defaults for absent
// top-level fields. See Decode for the completion rules.
func DecodeSnapshot[T any](snap Snapshot, defaults T, opts ...Option) (T, error) {
	return Decode(snap.Value(), defaults, opts...)
}
