// Package toml parses TOML snapshot payloads using
// github.com/pelletier/go-toml/v2.
//
// TOML documents are always tables at the root, so this parser only
// produces object payloads (or Null for empty input).
package toml

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/yacchi/anaume/format"
	"github.com/yacchi/anaume/value"
)

// NewParser creates a TOML payload parser.
func NewParser() format.Parser {
	return format.NewParser(format.TOML, Parse)
}

// Parse converts TOML bytes into a payload value. Empty or whitespace-only
// input parses to Null.
func Parse(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Null(), nil
	}

	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return value.Null(), fmt.Errorf("failed to parse TOML: %w", err)
	}

	return value.FromAny(root)
}
