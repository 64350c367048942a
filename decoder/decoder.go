// Package decoder converts payload values into typed Go structures.
//
// The package ships three implementations: Strict (the default, a
// reflection-based decoder with required-by-default field semantics and
// typed errors), JSON (an encoding/json roundtrip), and Mapstructure
// (weakly-typed decoding via github.com/mitchellh/mapstructure).
package decoder

import "github.com/yacchi/anaume/value"

// Decoder converts a payload value into the target, which must be a non-nil
// pointer. Implementations report failures through *Error where they can
// attribute them to a field path.
type Decoder interface {
	Decode(v value.Value, target any) error
}

// Func adapts a plain function to the Decoder interface.
type Func func(v value.Value, target any) error

// Decode implements Decoder.
func (f Func) Decode(v value.Value, target any) error {
	return f(v, target)
}
