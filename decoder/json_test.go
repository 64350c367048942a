package decoder

import (
	"strings"
	"testing"

	"github.com/yacchi/anaume/value"
)

func TestJSON(t *testing.T) {
	type target struct {
		A string `json:"a"`
	}

	t.Run("success", func(t *testing.T) {
		obj := value.NewObject()
		obj.Set("a", value.String("ok"))

		var dst target
		if err := JSON(obj.Value(), &dst); err != nil {
			t.Fatalf("JSON() error = %v", err)
		}
		if dst.A != "ok" {
			t.Errorf("decoded value = %q, want %q", dst.A, "ok")
		}
	})

	t.Run("missing field keeps zero value", func(t *testing.T) {
		var dst target
		if err := JSON(value.NewObject().Value(), &dst); err != nil {
			t.Fatalf("JSON() error = %v", err)
		}
		if dst.A != "" {
			t.Errorf("decoded value = %q, want empty", dst.A)
		}
	})

	t.Run("unmarshal error", func(t *testing.T) {
		var dst target
		err := JSON(value.String("ok"), dst) // non-pointer target
		if err == nil {
			t.Fatal("JSON() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "failed to unmarshal to target type") {
			t.Errorf("error = %q, want to contain %q", err.Error(), "failed to unmarshal to target type")
		}
	})
}
