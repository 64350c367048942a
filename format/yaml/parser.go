// Package yaml parses YAML snapshot payloads using gopkg.in/yaml.v3.
package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yacchi/anaume/format"
	"github.com/yacchi/anaume/value"
)

// NewParser creates a YAML payload parser.
func NewParser() format.Parser {
	return format.NewParser(format.YAML, Parse)
}

// Parse converts YAML bytes into a payload value. An empty document parses
// to Null.
func Parse(data []byte) (value.Value, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return value.Null(), fmt.Errorf("failed to parse YAML: %w", err)
	}

	return value.FromAny(root)
}
