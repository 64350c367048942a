package decoder

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/yacchi/anaume/value"
)

func mustFromAny(t *testing.T, v any) value.Value {
	t.Helper()
	converted, err := value.FromAny(v)
	if err != nil {
		t.Fatalf("FromAny(%v) error = %v", v, err)
	}
	return converted
}

func TestStrict_Scalars(t *testing.T) {
	d := NewStrict()

	t.Run("bool", func(t *testing.T) {
		var b bool
		if err := d.Decode(value.Bool(true), &b); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if !b {
			t.Error("decoded bool = false, want true")
		}
	})

	t.Run("string", func(t *testing.T) {
		var s string
		if err := d.Decode(value.String("potato"), &s); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if s != "potato" {
			t.Errorf("decoded string = %q, want %q", s, "potato")
		}
	})

	t.Run("int", func(t *testing.T) {
		var n int
		if err := d.Decode(value.Number(42), &n); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if n != 42 {
			t.Errorf("decoded int = %d, want 42", n)
		}
	})

	t.Run("float", func(t *testing.T) {
		var f float64
		if err := d.Decode(value.Number(1.5), &f); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if f != 1.5 {
			t.Errorf("decoded float = %v, want 1.5", f)
		}
	})
}

func TestStrict_NumberEdgeCases(t *testing.T) {
	d := NewStrict()

	t.Run("fractional into int", func(t *testing.T) {
		var n int
		err := d.Decode(value.Number(1.5), &n)
		if !IsMismatch(err) {
			t.Fatalf("Decode(1.5 into int) error = %v, want type mismatch", err)
		}
	})

	t.Run("negative into uint", func(t *testing.T) {
		var n uint
		err := d.Decode(value.Number(-1), &n)
		if !IsMismatch(err) {
			t.Fatalf("Decode(-1 into uint) error = %v, want type mismatch", err)
		}
	})

	t.Run("overflow int8", func(t *testing.T) {
		var n int8
		err := d.Decode(value.Number(300), &n)
		if !IsMismatch(err) {
			t.Fatalf("Decode(300 into int8) error = %v, want type mismatch", err)
		}
	})
}

func TestStrict_Struct(t *testing.T) {
	type server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}
	type config struct {
		Name    string   `json:"name"`
		Values  []string `json:"values"`
		Server  server   `json:"server"`
		Comment *string  `json:"comment"`
	}

	raw := mustFromAny(t, map[string]any{
		"name":   "app",
		"values": []any{"a", "b"},
		"server": map[string]any{"host": "localhost", "port": 8080},
		"extra":  "ignored",
	})

	var got config
	if err := NewStrict().Decode(raw, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := config{
		Name:   "app",
		Values: []string{"a", "b"},
		Server: server{Host: "localhost", Port: 8080},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %+v, want %+v", got, want)
	}
	if got.Comment != nil {
		t.Errorf("absent pointer field = %v, want nil", *got.Comment)
	}
}

func TestStrict_RequiredFieldMissing(t *testing.T) {
	type config struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}

	raw := mustFromAny(t, map[string]any{"name": "app"})

	var got config
	err := NewStrict().Decode(raw, &got)
	if !IsNotFound(err) {
		t.Fatalf("Decode() error = %v, want value not found", err)
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("error is not *Error")
	}
	if e.Path != "/values" {
		t.Errorf("error path = %q, want %q", e.Path, "/values")
	}
}

func TestStrict_NullSemantics(t *testing.T) {
	t.Run("null into non-pointer is not found", func(t *testing.T) {
		var s string
		err := NewStrict().Decode(value.Null(), &s)
		if !IsNotFound(err) {
			t.Fatalf("Decode(null) error = %v, want value not found", err)
		}
		var e *Error
		if errors.As(err, &e) && e.Path != "" {
			t.Errorf("top-level error path = %q, want empty", e.Path)
		}
	})

	t.Run("null into pointer is nil", func(t *testing.T) {
		s := "leftover"
		p := &s
		if err := NewStrict().Decode(value.Null(), &p); err != nil {
			t.Fatalf("Decode(null into pointer) error = %v", err)
		}
		if p != nil {
			t.Errorf("decoded pointer = %v, want nil", *p)
		}
	})

	t.Run("present null field on non-pointer is not found", func(t *testing.T) {
		type config struct {
			Name string `json:"name"`
		}
		raw := mustFromAny(t, map[string]any{"name": nil})
		var got config
		err := NewStrict().Decode(raw, &got)
		if !IsNotFound(err) {
			t.Fatalf("Decode() error = %v, want value not found", err)
		}
	})
}

func TestStrict_NestedErrorPaths(t *testing.T) {
	type inner struct {
		Port int `json:"port"`
	}
	type outer struct {
		Servers []inner `json:"servers"`
	}

	raw := mustFromAny(t, map[string]any{
		"servers": []any{
			map[string]any{"port": 80.0},
			map[string]any{"port": "not-a-number"},
		},
	})

	var got outer
	err := NewStrict().Decode(raw, &got)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Decode() error = %v, want *Error", err)
	}
	if e.Kind != TypeMismatch {
		t.Errorf("error kind = %v, want type mismatch", e.Kind)
	}
	if e.Path != "/servers/1/port" {
		t.Errorf("error path = %q, want %q", e.Path, "/servers/1/port")
	}
}

func TestStrict_Map(t *testing.T) {
	raw := mustFromAny(t, map[string]any{"a": 1.0, "b": 2.0})

	var got map[string]int
	if err := NewStrict().Decode(raw, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := map[string]int{"a": 1, "b": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestStrict_EmptyCollections(t *testing.T) {
	type config struct {
		Values []string       `json:"values"`
		Labels map[string]int `json:"labels"`
	}

	raw := mustFromAny(t, map[string]any{
		"values": []any{},
		"labels": map[string]any{},
	})

	var got config
	if err := NewStrict().Decode(raw, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Values == nil || len(got.Values) != 0 {
		t.Errorf("Values = %#v, want empty non-nil slice", got.Values)
	}
	if got.Labels == nil || len(got.Labels) != 0 {
		t.Errorf("Labels = %#v, want empty non-nil map", got.Labels)
	}
}

func TestStrict_Interface(t *testing.T) {
	raw := mustFromAny(t, map[string]any{"a": []any{1.0}})

	var got any
	if err := NewStrict().Decode(raw, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := map[string]any{"a": []any{1.0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %#v, want %#v", got, want)
	}
}

func TestStrict_Unmarshaler(t *testing.T) {
	type event struct {
		At time.Time `json:"at"`
	}

	raw := mustFromAny(t, map[string]any{"at": "2024-05-01T12:00:00Z"})

	var got event
	if err := NewStrict().Decode(raw, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if !got.At.Equal(want) {
		t.Errorf("decoded time = %v, want %v", got.At, want)
	}

	t.Run("bad value", func(t *testing.T) {
		raw := mustFromAny(t, map[string]any{"at": "yesterday"})
		var got event
		if err := NewStrict().Decode(raw, &got); !IsMismatch(err) {
			t.Errorf("Decode() error = %v, want type mismatch", err)
		}
	})
}

func TestStrict_TypeMismatches(t *testing.T) {
	d := NewStrict()

	tests := []struct {
		name   string
		v      value.Value
		target any
	}{
		{"string into int", value.String("x"), new(int)},
		{"number into string", value.Number(1), new(string)},
		{"array into struct", value.Array(), new(struct{})},
		{"object into slice", value.NewObject().Value(), new([]int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.Decode(tt.v, tt.target); !IsMismatch(err) {
				t.Errorf("Decode() error = %v, want type mismatch", err)
			}
		})
	}
}

func TestStrict_InvalidTarget(t *testing.T) {
	d := NewStrict()

	tests := []struct {
		name   string
		target any
	}{
		{"non-pointer", struct{}{}},
		{"nil pointer", (*struct{})(nil)},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.Decode(value.Null(), tt.target)
			var e *Error
			if !errors.As(err, &e) || e.Kind != InvalidTarget {
				t.Errorf("Decode() error = %v, want invalid target", err)
			}
		})
	}
}

func TestStrict_UnsupportedTypes(t *testing.T) {
	d := NewStrict()

	t.Run("chan field", func(t *testing.T) {
		type bad struct {
			C chan int `json:"c"`
		}
		raw := mustFromAny(t, map[string]any{"c": 1.0})
		var got bad
		err := d.Decode(raw, &got)
		var e *Error
		if !errors.As(err, &e) || e.Kind != UnsupportedType {
			t.Errorf("Decode() error = %v, want unsupported type", err)
		}
	})

	t.Run("int-keyed map", func(t *testing.T) {
		var got map[int]string
		err := d.Decode(mustFromAny(t, map[string]any{"1": "a"}), &got)
		var e *Error
		if !errors.As(err, &e) || e.Kind != UnsupportedType {
			t.Errorf("Decode() error = %v, want unsupported type", err)
		}
	})
}

func TestStrict_EscapedKeyPath(t *testing.T) {
	type config struct {
		Flags map[string]bool `json:"feature/flags"`
	}

	raw := mustFromAny(t, map[string]any{
		"feature/flags": map[string]any{"on": "not-a-bool"},
	})

	var got config
	err := NewStrict().Decode(raw, &got)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Decode() error = %v, want *Error", err)
	}
	if e.Path != "/feature~1flags/on" {
		t.Errorf("error path = %q, want %q", e.Path, "/feature~1flags/on")
	}
}
