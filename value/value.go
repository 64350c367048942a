// Package value models the dynamically-typed payload tree retrieved from a
// hierarchical snapshot store.
//
// The model is a closed tagged union over the JSON-like wire shapes:
// Null, Bool, Number, String, Array, and Object (a string-keyed mapping with
// stable key order). Keeping the union closed lets the completion and decode
// steps switch exhaustively instead of type-asserting on interface{} trees.
package value

import (
	"strconv"
	"strings"

	"github.com/yacchi/anaume/jsonptr"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds, covering every shape the snapshot wire format can produce.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case name of the kind, as used in decode errors.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a payload tree. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the null value. It doubles as the explicit sentinel for a
// wholly-absent snapshot.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value. All numbers are carried as float64,
// matching the wire format.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Int returns a numeric value from an integer.
func Int(n int64) Value {
	return Value{kind: KindNumber, num: float64(n)}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns an array value holding the given items.
// Array() with no items is an empty array, not null.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload. The second result is false when the
// value is not a bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the numeric payload. The second result is false when the
// value is not a number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsString returns the string payload. The second result is false when the
// value is not a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsArray returns the array payload. The second result is false when the
// value is not an array. The returned slice is shared, not copied.
func (v Value) AsArray() ([]Value, bool) {
	return v.arr, v.kind == KindArray
}

// AsObject returns the object payload. The second result is false when the
// value is not an object.
func (v Value) AsObject() (*Object, bool) {
	return v.obj, v.kind == KindObject
}

// Interface converts the value back into the generic interface{} tree shape
// (nil, bool, float64, string, []any, map[string]any) used by standard
// decoders.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		for _, key := range v.obj.keys {
			out[key] = v.obj.items[key].Interface()
		}
		return out
	default:
		return nil
	}
}

// At resolves a JSON Pointer (RFC 6901) against the value tree.
// Returns the addressed value and true, or Null and false if any step of
// the pointer does not resolve.
func (v Value) At(pointer string) (Value, bool) {
	keys, err := jsonptr.Parse(pointer)
	if err != nil {
		return Null(), false
	}

	current := v
	for _, key := range keys {
		switch current.kind {
		case KindObject:
			next, ok := current.obj.Get(key)
			if !ok {
				return Null(), false
			}
			current = next
		case KindArray:
			index, err := strconv.Atoi(key)
			if err != nil || index < 0 || index >= len(current.arr) {
				return Null(), false
			}
			current = current.arr[index]
		default:
			return Null(), false
		}
	}

	return current, true
}

// Equal reports deep equality of two values. Object comparison ignores key
// order; only key sets and their values matter.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindNumber:
		return v.num == w.num
	case KindString:
		return v.str == w.str
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != w.obj.Len() {
			return false
		}
		for _, key := range v.obj.keys {
			other, ok := w.obj.Get(key)
			if !ok || !v.obj.items[key].Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value as compact JSON-like text. Intended for error
// messages and test failures, not for serialization.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		sb.WriteString(strconv.FormatFloat(v.num, 'f', -1, 64))
	case KindString:
		sb.WriteString(strconv.Quote(v.str))
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, key := range v.obj.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(key))
			sb.WriteByte(':')
			v.obj.items[key].write(sb)
		}
		sb.WriteByte('}')
	}
}
