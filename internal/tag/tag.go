// Package tag provides internal struct tag parsing utilities for anaume.
package tag

import (
	"reflect"
	"strings"
)

// FieldTagName is the struct tag consulted for field key resolution.
// Snapshot payloads are JSON-shaped, so field keys follow encoding/json.
const FieldTagName = "json"

// FieldKey returns the payload key for a struct field, following the
// encoding/json convention:
//   - If the json tag specifies a key, that key is used
//   - Otherwise the struct field name is used as-is
//   - "-" means the field is excluded from the payload
func FieldKey(field reflect.StructField) string {
	t := field.Tag.Get(FieldTagName)
	if t == "" {
		return field.Name
	}
	if t == "-" {
		return "-"
	}
	key := t
	if idx := strings.Index(t, ","); idx >= 0 {
		key = t[:idx]
	}
	if key == "" {
		return field.Name
	}
	return key
}

// Skip reports whether a struct field should be ignored entirely:
// unexported fields and fields tagged json:"-".
func Skip(field reflect.StructField) bool {
	if !field.IsExported() {
		return true
	}
	return FieldKey(field) == "-"
}
