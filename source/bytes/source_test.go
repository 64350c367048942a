package bytes

import (
	"context"
	"testing"

	"github.com/yacchi/anaume/watcher"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	src := FromString(`{"values": []}`)

	data, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(data) != `{"values": []}` {
		t.Errorf("Load() = %q", data)
	}

	// The returned slice is a copy; mutating it must not affect the source.
	data[0] = 'X'
	again, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(again) != `{"values": []}` {
		t.Errorf("Load() after mutation = %q, want original data", again)
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New([]byte("x")).Load(ctx); err == nil {
		t.Error("Load() with cancelled context expected error, got nil")
	}
}

func TestWatch_IsNoop(t *testing.T) {
	w, err := New([]byte("x")).Watch()
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if w.Type() != watcher.TypeNoop {
		t.Errorf("Watch() type = %v, want %v", w.Type(), watcher.TypeNoop)
	}
}
