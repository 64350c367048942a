package jsonc

import (
	"testing"

	"github.com/yacchi/anaume/format"
)

func TestNewParser(t *testing.T) {
	if got := NewParser().Format(); got != format.JSONC {
		t.Errorf("Format() = %v, want %v", got, format.JSONC)
	}
}

func TestParse(t *testing.T) {
	input := `{
		// comment before a field
		"values": ["potato"],
		"count": 1, // trailing comma below is fine too
	}`

	got, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := `{"count":1,"values":["potato"]}`
	if got.String() != want {
		t.Errorf("Parse() = %s, want %s", got, want)
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
	if _, err := Parse([]byte(`{"a": }`)); err == nil {
		t.Error("Parse(invalid JSONC) expected error, got nil")
	}
}
