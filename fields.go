package anaume

import (
	"reflect"
	"sort"

	"github.com/yacchi/anaume/internal/tag"
	"github.com/yacchi/anaume/value"
)

// FieldEnumerator is implemented by types that enumerate their own field
// values, keyed by payload key. Implementations take precedence over the
// reflection fallback during completion.
//
// The anaume CLI generates implementations ("anaume generate defaults"),
// but hand-written ones are equally valid for types whose payload keys
// cannot be derived from struct tags.
type FieldEnumerator interface {
	EnumerateFields() map[string]any
}

// field is one enumerated default: payload key plus converted value.
type field struct {
	key   string
	value value.Value
}

// enumerateFields lists the defaults' fields as payload entries.
//
// Resolution order: a FieldEnumerator implementation, then reflection over
// a struct's exported fields (json-tag keys), then the entries of a
// string-keyed map. Anything else has no enumerable fields and yields nil,
// which makes completion a no-op.
func enumerateFields(defaults any) ([]field, error) {
	if fe, ok := defaults.(FieldEnumerator); ok {
		return fieldsFromMap(fe.EnumerateFields())
	}

	rv := reflect.ValueOf(defaults)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, nil
	}

	switch rv.Kind() {
	case reflect.Struct:
		t := rv.Type()
		fields := make([]field, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if tag.Skip(sf) {
				continue
			}
			converted, err := value.FromGo(rv.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			fields = append(fields, field{key: tag.FieldKey(sf), value: converted})
		}
		return fields, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, nil
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return fieldsFromMap(m)

	default:
		return nil, nil
	}
}

// fieldsFromMap converts an enumerated key/value mapping, sorting keys so
// completion order is deterministic.
func fieldsFromMap(m map[string]any) ([]field, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]field, 0, len(keys))
	for _, k := range keys {
		converted, err := value.FromGo(m[k])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{key: k, value: converted})
	}
	return fields, nil
}
