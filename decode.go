package anaume

import (
	"github.com/yacchi/anaume/decoder"
	"github.com/yacchi/anaume/value"
)

// Option configures decoding.
type Option func(*options)

type options struct {
	dec          decoder.Decoder
	onWatchError func(error)
}

// WithDecoder replaces the structured decoder used after completion.
// The default is decoder.NewStrict().
func WithDecoder(d decoder.Decoder) Option {
	return func(o *options) {
		o.dec = d
	}
}

// WithWatchErrorHandler sets a callback for errors encountered while a view
// reloads in response to source changes. Only meaningful for views; plain
// Decode calls return their errors directly.
func WithWatchErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onWatchError = fn
	}
}

func newOptions(opts []Option) options {
	o := options{
		dec: decoder.NewStrict(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Decode converts a raw snapshot value into T.
//
// When raw is an object, the fields of defaults are enumerated and every
// field whose key is absent from raw is inserted before the payload is
// handed to the structured decoder. Keys present in raw always win, even
// when their value is null or an empty collection. When raw is anything
// else, including Null for an absent snapshot, it is passed to the decoder
// untouched so the decoder's own "value not found" surfaces instead of a
// silently defaulted result.
//
// Decoder errors are returned unchanged.
func Decode[T any](raw value.Value, defaults T, opts ...Option) (T, error) {
	o := newOptions(opts)

	completed, err := Complete(raw, defaults)
	if err != nil {
		var zero T
		return zero, err
	}

	var out T
	if err := o.dec.Decode(completed, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Complete returns raw with the defaults' field values inserted for every
// top-level key absent from the payload. Non-object payloads pass through
// unchanged. The input object is never mutated; insertion happens on a
// clone.
//
// Completion is shallow. Fields present in raw keep their values as-is,
// nested records included; recursive filling is deliberately not performed.
func Complete(raw value.Value, defaults any) (value.Value, error) {
	obj, ok := raw.AsObject()
	if !ok {
		return raw, nil
	}

	fields, err := enumerateFields(defaults)
	if err != nil {
		return value.Null(), err
	}
	if len(fields) == 0 {
		return raw, nil
	}

	completed := obj.Clone()
	for _, f := range fields {
		if !completed.Has(f.key) {
			completed.Set(f.key, f.value)
		}
	}
	return completed.Value(), nil
}
