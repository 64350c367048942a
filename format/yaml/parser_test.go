package yaml

import (
	"testing"

	"github.com/yacchi/anaume/format"
)

func TestNewParser(t *testing.T) {
	if got := NewParser().Format(); got != format.YAML {
		t.Errorf("Format() = %v, want %v", got, format.YAML)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mapping", "b: 2\na: one\n", `{"a":"one","b":2}`},
		{"sequence", "- a\n- b\n", `["a","b"]`},
		{"nested", "room:\n  members: []\n", `{"room":{"members":[]}}`},
		{"scalar", "42", "42"},
		{"bool", "true", "true"},
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
	got, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if !got.IsNull() {
		t.Errorf("Parse(nil) = %v, want null", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("a: [unclosed")); err == nil {
		t.Error("Parse(invalid YAML) expected error, got nil")
	}
}
