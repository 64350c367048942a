package json

import (
	"testing"

	"github.com/yacchi/anaume/format"
	"github.com/yacchi/anaume/value"
)

func TestNewParser(t *testing.T) {
	if got := NewParser().Format(); got != format.JSON {
		t.Errorf("Format() = %v, want %v", got, format.JSON)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"object", `{"b": 2, "a": 1}`, `{"a":1,"b":2}`},
		{"empty object", `{}`, `{}`},
		{"array root", `["potato"]`, `["potato"]`},
		{"scalar root", `42`, `42`},
		{"null root", `null`, `null`},
		{"nested", `{"a": {"b": [1, null]}}`, `{"a":{"b":[1,null]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "   \n\t"} {
		got, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if !got.IsNull() {
			t.Errorf("Parse(%q) = %v, want null", input, got)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte(`{"a":`)); err == nil {
		t.Error("Parse(invalid JSON) expected error, got nil")
	}
}

func TestParse_EmptyCollectionsPreserved(t *testing.T) {
	got, err := Parse([]byte(`{"values": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := got.AsObject()
	if !ok {
		t.Fatalf("Parse() kind = %v, want object", got.Kind())
	}
	entry, ok := obj.Get("values")
	if !ok {
		t.Fatal("key \"values\" missing")
	}
	if entry.Kind() != value.KindArray {
		t.Errorf("values kind = %v, want array", entry.Kind())
	}
}
