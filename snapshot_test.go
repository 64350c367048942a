package anaume

import (
	"testing"

	"github.com/yacchi/anaume/decoder"
	"github.com/yacchi/anaume/value"
)

func TestSnapshot_Present(t *testing.T) {
	obj := value.NewObject()
	obj.Set("values", value.Array())
	snap := NewSnapshot("/users/alice", obj.Value())

	if got := snap.Path(); got != "/users/alice" {
		t.Errorf("Path() = %q, want /users/alice", got)
	}
	if !snap.Exists() {
		t.Error("Exists() = false, want true")
	}
	if snap.Value().IsNull() {
		t.Error("Value() is null, want payload")
	}
}

func TestSnapshot_Absent(t *testing.T) {
	snap := AbsentSnapshot("/users/nobody")

	if snap.Exists() {
		t.Error("Exists() = true, want false")
	}
	if !snap.Value().IsNull() {
		t.Errorf("Value() = %v, want null sentinel", snap.Value())
	}
}

func TestDecodeSnapshot(t *testing.T) {
	defaults := collections{Values: []string{}, MoreValues: []string{}}

	obj := value.NewObject()
	obj.Set("values", value.Array(value.String("potato")))
	got, err := DecodeSnapshot(NewSnapshot("/cfg", obj.Value()), defaults)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if len(got.Values) != 1 || got.Values[0] != "potato" {
		t.Errorf("Values = %#v, want [potato]", got.Values)
	}
	if got.MoreValues == nil || len(got.MoreValues) != 0 {
		t.Errorf("MoreValues = %#v, want empty non-nil slice", got.MoreValues)
	}
}

func TestDecodeSnapshot_Absent(t *testing.T) {
	defaults := collections{Values: []string{}, MoreValues: []string{}}

	_, err := DecodeSnapshot(AbsentSnapshot("/cfg"), defaults)
	if !decoder.IsNotFound(err) {
		t.Fatalf("DecodeSnapshot(absent) error = %v, want ValueNotFound", err)
	}
}
