package decoder

import (
	"encoding/json"
	"fmt"

	"github.com/yacchi/anaume/value"
)

// JSON decodes a payload value into the target using an encoding/json
// marshal/unmarshal roundtrip.
//
// Unlike Strict, missing fields silently keep their zero values and errors
// are not attributed to field paths. It exists for callers whose types lean
// on custom MarshalJSON/UnmarshalJSON behavior end to end.
func JSON(v value.Value, target any) error {
	data, err := json.Marshal(v.Interface())
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal to target type: %w", err)
	}

	return nil
}

// Ensure JSON satisfies the Func signature.
var _ Func = JSON
