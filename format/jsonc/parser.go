// Package jsonc parses JSON-with-comments snapshot payloads using
// github.com/tailscale/hujson to strip comments and trailing commas before
// standard JSON parsing.
package jsonc

import (
	"bytes"
	"fmt"

	"github.com/tailscale/hujson"

	"github.com/yacchi/anaume/format"
	jsonformat "github.com/yacchi/anaume/format/json"
	"github.com/yacchi/anaume/value"
)

// NewParser creates a JSONC payload parser.
func NewParser() format.Parser {
	return format.NewParser(format.JSONC, Parse)
}

// Parse converts JSONC bytes into a payload value. Empty input parses to
// Null.
func Parse(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Null(), nil
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return value.Null(), fmt.Errorf("failed to parse JSONC: %w", err)
	}

	return jsonformat.Parse(standardized)
}
