package value

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/yacchi/anaume/internal/tag"
)

// FromAny converts a decoded payload tree (the interface{} shapes produced
// by encoding/json, yaml.v3, and friends) into a Value.
//
// Map keys are sorted: Go maps carry no order, so sorting keeps completed
// payloads deterministic. Types outside the usual decoded-tree set fall back
// to FromGo's reflection path.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return val, nil
	case *Object:
		return val.Value(), nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case float64:
		return Number(val), nil
	case float32:
		return Number(float64(val)), nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		return Number(float64(val)), nil
	case uint8:
		return Number(float64(val)), nil
	case uint16:
		return Number(float64(val)), nil
	case uint32:
		return Number(float64(val)), nil
	case uint64:
		return Number(float64(val)), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return Null(), fmt.Errorf("cannot represent number %q: %w", val.String(), err)
		}
		return Number(f), nil
	case []any:
		items := make([]Value, len(val))
		for i, item := range val {
			converted, err := FromAny(item)
			if err != nil {
				return Null(), err
			}
			items[i] = converted
		}
		return Array(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, k := range keys {
			converted, err := FromAny(val[k])
			if err != nil {
				return Null(), err
			}
			obj.Set(k, converted)
		}
		return obj.Value(), nil
	default:
		return FromGo(v)
	}
}

// FromGo converts an arbitrary Go value into a Value via reflection.
// Struct fields follow encoding/json conventions (json tags, exported
// fields only), and types implementing json.Marshaler are converted through
// their JSON form. This is how default instances supplied by callers are
// turned into payload values.
func FromGo(v any) (Value, error) {
	if v == nil {
		return Null(), nil
	}
	if val, ok := v.(Value); ok {
		return val, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

var jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()

func fromReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}

	// json.Marshaler covers types like time.Time whose payload form is not
	// their struct shape.
	if rv.Type().Implements(jsonMarshalerType) && rv.CanInterface() {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return Null(), nil
		}
		data, err := rv.Interface().(json.Marshaler).MarshalJSON()
		if err != nil {
			return Null(), fmt.Errorf("cannot marshal %s: %w", rv.Type(), err)
		}
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return Null(), fmt.Errorf("cannot decode marshaled %s: %w", rv.Type(), err)
		}
		return FromAny(decoded)
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromReflect(rv.Elem())

	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(float64(rv.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil

	case reflect.String:
		return String(rv.String()), nil

	case reflect.Slice, reflect.Array:
		// []byte follows the encoding/json convention: base64 string.
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(base64.StdEncoding.EncodeToString(rv.Bytes())), nil
		}
		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			converted, err := fromReflect(rv.Index(i))
			if err != nil {
				return Null(), err
			}
			items[i] = converted
		}
		return Array(items...), nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Null(), fmt.Errorf("cannot represent map with %s keys", rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, k := range keys {
			converted, err := fromReflect(rv.MapIndex(reflect.ValueOf(k)))
			if err != nil {
				return Null(), err
			}
			obj.Set(k, converted)
		}
		return obj.Value(), nil

	case reflect.Struct:
		t := rv.Type()
		obj := NewObject()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if tag.Skip(field) {
				continue
			}
			converted, err := fromReflect(rv.Field(i))
			if err != nil {
				return Null(), err
			}
			obj.Set(tag.FieldKey(field), converted)
		}
		return obj.Value(), nil

	default:
		return Null(), fmt.Errorf("cannot represent %s as a payload value", rv.Type())
	}
}
