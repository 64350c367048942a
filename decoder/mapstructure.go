package decoder

import (
	"github.com/mitchellh/mapstructure"

	"github.com/yacchi/anaume/value"
)

// MapstructureOption customizes the underlying mapstructure configuration.
type MapstructureOption func(*mapstructure.DecoderConfig)

// WeaklyTyped enables mapstructure's weakly-typed input mode, converting
// between compatible scalar types ("8080" into int, 1 into bool, and so on).
func WeaklyTyped() MapstructureOption {
	return func(c *mapstructure.DecoderConfig) {
		c.WeaklyTypedInput = true
	}
}

// Mapstructure returns a Decoder backed by github.com/mitchellh/mapstructure.
// Field keys follow json tags, matching the rest of the library.
//
// Like JSON, it does not enforce required fields; combine it with defaults
// when lenient decoding of loosely-typed payloads is wanted.
func Mapstructure(opts ...MapstructureOption) Decoder {
	return Func(func(v value.Value, target any) error {
		cfg := &mapstructure.DecoderConfig{
			TagName: "json",
			Result:  target,
		}
		for _, opt := range opts {
			opt(cfg)
		}

		dec, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return err
		}
		return dec.Decode(v.Interface())
	})
}
