package decoder

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/yacchi/anaume/internal/tag"
	"github.com/yacchi/anaume/jsonptr"
	"github.com/yacchi/anaume/value"
)

// Strict is the default decoder. It populates targets via reflection with
// required-by-default semantics:
//
//   - Pointer destinations are optional: null decodes to nil.
//   - Every other destination requires a value; null or an absent struct key
//     yields a ValueNotFound error carrying the field path.
//   - Numbers decode into integer kinds only when integral and in range.
//   - Struct fields match payload keys by json tag, falling back to the
//     field name; json:"-" and unexported fields are ignored.
//   - Types implementing json.Unmarshaler (time.Time and friends) are
//     decoded through their JSON form.
//
// Unknown payload keys are ignored, as with encoding/json.
type Strict struct{}

// NewStrict creates the default strict decoder.
func NewStrict() *Strict {
	return &Strict{}
}

// Ensure Strict implements the Decoder interface.
var _ Decoder = (*Strict)(nil)

// Decode implements the Decoder interface.
func (d *Strict) Decode(v value.Value, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return &Error{Kind: InvalidTarget}
	}
	return d.decode("", v, rv.Elem())
}

var jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

func (d *Strict) decode(path string, v value.Value, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Ptr:
		if v.IsNull() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return d.decode(path, v, dst.Elem())

	case reflect.Interface:
		if dst.NumMethod() != 0 {
			return &Error{Kind: UnsupportedType, Path: path, Expected: dst.Type().String()}
		}
		dst.Set(reflect.Zero(dst.Type()))
		if raw := v.Interface(); raw != nil {
			dst.Set(reflect.ValueOf(raw))
		}
		return nil
	}

	// Null reaching a non-pointer destination means the value is missing.
	if v.IsNull() {
		return NotFound(path)
	}

	if dst.CanAddr() && reflect.PointerTo(dst.Type()).Implements(jsonUnmarshalerType) {
		return d.decodeUnmarshaler(path, v, dst)
	}

	switch dst.Kind() {
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return Mismatch(path, "bool", v.Kind().String())
		}
		dst.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := v.AsNumber()
		if !ok {
			return Mismatch(path, "number", v.Kind().String())
		}
		if math.Trunc(f) != f {
			return Mismatch(path, "integer", fmt.Sprintf("number %v", f))
		}
		n := int64(f)
		if dst.OverflowInt(n) {
			return Mismatch(path, dst.Type().String(), fmt.Sprintf("number %v", f))
		}
		dst.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, ok := v.AsNumber()
		if !ok {
			return Mismatch(path, "number", v.Kind().String())
		}
		if math.Trunc(f) != f || f < 0 {
			return Mismatch(path, "unsigned integer", fmt.Sprintf("number %v", f))
		}
		n := uint64(f)
		if dst.OverflowUint(n) {
			return Mismatch(path, dst.Type().String(), fmt.Sprintf("number %v", f))
		}
		dst.SetUint(n)
		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := v.AsNumber()
		if !ok {
			return Mismatch(path, "number", v.Kind().String())
		}
		dst.SetFloat(f)
		return nil

	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return Mismatch(path, "string", v.Kind().String())
		}
		dst.SetString(s)
		return nil

	case reflect.Slice:
		items, ok := v.AsArray()
		if !ok {
			return Mismatch(path, "array", v.Kind().String())
		}
		out := reflect.MakeSlice(dst.Type(), len(items), len(items))
		for i, item := range items {
			if err := d.decode(fmt.Sprintf("%s/%d", path, i), item, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil

	case reflect.Array:
		items, ok := v.AsArray()
		if !ok {
			return Mismatch(path, "array", v.Kind().String())
		}
		if len(items) != dst.Len() {
			return Mismatch(path, fmt.Sprintf("array of %d", dst.Len()), fmt.Sprintf("array of %d", len(items)))
		}
		for i, item := range items {
			if err := d.decode(fmt.Sprintf("%s/%d", path, i), item, dst.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if dst.Type().Key().Kind() != reflect.String {
			return &Error{Kind: UnsupportedType, Path: path, Expected: dst.Type().String()}
		}
		obj, ok := v.AsObject()
		if !ok {
			return Mismatch(path, "object", v.Kind().String())
		}
		out := reflect.MakeMapWithSize(dst.Type(), obj.Len())
		elemType := dst.Type().Elem()
		for _, key := range obj.Keys() {
			entry, _ := obj.Get(key)
			elem := reflect.New(elemType).Elem()
			if err := d.decode(jsonptr.Join(path, jsonptr.Escape(key)), entry, elem); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(key).Convert(dst.Type().Key()), elem)
		}
		dst.Set(out)
		return nil

	case reflect.Struct:
		obj, ok := v.AsObject()
		if !ok {
			return Mismatch(path, "object", v.Kind().String())
		}
		t := dst.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if tag.Skip(field) {
				continue
			}
			key := tag.FieldKey(field)
			fieldPath := jsonptr.Join(path, jsonptr.Escape(key))

			entry, present := obj.Get(key)
			if !present {
				if field.Type.Kind() == reflect.Ptr {
					continue // optional field, stays nil
				}
				return NotFound(fieldPath)
			}
			if err := d.decode(fieldPath, entry, dst.Field(i)); err != nil {
				return err
			}
		}
		return nil

	default:
		return &Error{Kind: UnsupportedType, Path: path, Expected: dst.Type().String()}
	}
}

// decodeUnmarshaler routes a value through the destination's UnmarshalJSON.
func (d *Strict) decodeUnmarshaler(path string, v value.Value, dst reflect.Value) error {
	data, err := json.Marshal(v.Interface())
	if err != nil {
		return Mismatch(path, dst.Type().String(), v.Kind().String())
	}
	u := dst.Addr().Interface().(json.Unmarshaler)
	if err := u.UnmarshalJSON(data); err != nil {
		return Mismatch(path, dst.Type().String(), v.Kind().String())
	}
	return nil
}
