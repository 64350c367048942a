// Package json parses JSON snapshot payloads using encoding/json.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yacchi/anaume/format"
	"github.com/yacchi/anaume/value"
)

// NewParser creates a JSON payload parser.
//
// Example:
//
//	v := anaume.NewView[Room](fs.New("rooms.json"), json.NewParser(), defaults)
func NewParser() format.Parser {
	return format.NewParser(format.JSON, Parse)
}

// Parse converts JSON bytes into a payload value. Empty or whitespace-only
// input parses to Null. Any JSON shape is accepted at the root; the store's
// payloads are not always objects.
func Parse(data []byte) (value.Value, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return value.Null(), nil
	}

	var root any
	if err := json.Unmarshal(trimmed, &root); err != nil {
		return value.Null(), fmt.Errorf("failed to parse JSON: %w", err)
	}

	return value.FromAny(root)
}
