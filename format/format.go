// Package format defines the parser interface turning raw snapshot payload
// bytes into payload values. Concrete parsers live in the subpackages
// (json, yaml, jsonc, toml).
package format

import "github.com/yacchi/anaume/value"

// Format identifies a payload format.
type Format string

// Supported payload formats.
const (
	// JSON is standard JSON (encoding/json).
	JSON Format = "json"

	// YAML is YAML (gopkg.in/yaml.v3).
	YAML Format = "yaml"

	// JSONC is JSON with comments (github.com/tailscale/hujson).
	JSONC Format = "jsonc"

	// TOML is TOML (github.com/pelletier/go-toml/v2).
	TOML Format = "toml"
)

// Parser converts raw payload bytes into a payload value.
type Parser interface {
	// Format returns the format this parser handles.
	Format() Format

	// Parse converts payload bytes into a value. Empty input parses to
	// Null, the same sentinel an absent snapshot carries.
	Parse(data []byte) (value.Value, error)
}

// ParseFunc is the conversion function a parser wraps.
type ParseFunc func(data []byte) (value.Value, error)

// NewParser wraps a parse function with its format identifier.
func NewParser(f Format, fn ParseFunc) Parser {
	return &parser{format: f, parse: fn}
}

type parser struct {
	format Format
	parse  ParseFunc
}

func (p *parser) Format() Format {
	return p.format
}

func (p *parser) Parse(data []byte) (value.Value, error) {
	return p.parse(data)
}
