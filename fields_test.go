package anaume

import (
	"testing"

	"github.com/yacchi/anaume/value"
)

type enumerated struct {
	Values []string
}

func (e enumerated) EnumerateFields() map[string]any {
	return map[string]any{"custom_key": e.Values}
}

func TestEnumerateFields_EnumeratorTakesPrecedence(t *testing.T) {
	fields, err := enumerateFields(enumerated{Values: []string{}})
	if err != nil {
		t.Fatalf("enumerateFields() error = %v", err)
	}
	if len(fields) != 1 || fields[0].key != "custom_key" {
		t.Fatalf("fields = %v, want single custom_key entry", fields)
	}
}

func TestEnumerateFields_Struct(t *testing.T) {
	type defaults struct {
		Values  []string `json:"values"`
		Port    int      `json:"port,omitempty"`
		Skipped string   `json:"-"`
		hidden  string
	}

	fields, err := enumerateFields(defaults{Values: []string{}, Port: 8080})
	if err != nil {
		t.Fatalf("enumerateFields() error = %v", err)
	}

	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.key)
	}
	want := []string{"values", "port"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i, k := range keys {
		if k != want[i] {
			t.Errorf("key %d = %q, want %q", i, k, want[i])
		}
	}

	if arr, ok := fields[0].value.AsArray(); !ok || len(arr) != 0 {
		t.Errorf("values field = %v, want empty array", fields[0].value)
	}
}

func TestEnumerateFields_StructPointer(t *testing.T) {
	type defaults struct {
		Name string `json:"name"`
	}

	fields, err := enumerateFields(&defaults{Name: "app"})
	if err != nil {
		t.Fatalf("enumerateFields() error = %v", err)
	}
	if len(fields) != 1 || fields[0].key != "name" {
		t.Fatalf("fields = %v, want single name entry", fields)
	}
}

func TestEnumerateFields_MapSortsKeys(t *testing.T) {
	fields, err := enumerateFields(map[string]any{
		"b": 2,
		"a": 1,
		"c": 3,
	})
	if err != nil {
		t.Fatalf("enumerateFields() error = %v", err)
	}

	want := []string{"a", "b", "c"}
	for i, f := range fields {
		if f.key != want[i] {
			t.Errorf("key %d = %q, want %q", i, f.key, want[i])
		}
	}
}

func TestEnumerateFields_NoEnumerableFields(t *testing.T) {
	for name, defaults := range map[string]any{
		"nil":           nil,
		"nil pointer":   (*struct{})(nil),
		"scalar":        42,
		"int-keyed map": map[int]string{1: "a"},
		"slice":         []string{"a"},
	} {
		t.Run(name, func(t *testing.T) {
			fields, err := enumerateFields(defaults)
			if err != nil {
				t.Fatalf("enumerateFields() error = %v", err)
			}
			if fields != nil {
				t.Errorf("fields = %v, want nil", fields)
			}
		})
	}
}

func TestEnumerateFields_ConversionErrorPropagates(t *testing.T) {
	type defaults struct {
		Handler func() `json:"handler"`
	}

	if _, err := enumerateFields(defaults{Handler: func() {}}); err == nil {
		t.Error("enumerateFields() expected error for func field, got nil")
	}
}

func TestComplete_UsesEnumeratorKeys(t *testing.T) {
	raw := value.NewObject().Value()

	completed, err := Complete(raw, enumerated{Values: []string{}})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	obj, ok := completed.AsObject()
	if !ok || !obj.Has("custom_key") {
		t.Errorf("Complete() = %v, want custom_key filled", completed)
	}
}
