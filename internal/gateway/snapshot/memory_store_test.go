package snapshot

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if err := m.Put(ctx, "req-1", "page.html", []byte("<html>")); err != nil {
		t.Fatalf("put: %v", err)
	}
	data, err := m.Get(ctx, "req-1", "page.html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "<html>" {
		t.Fatalf("content = %q", data)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	m := NewMemoryStore()
	if _, err := m.Get(context.Background(), "req-x", "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreListIsScoped(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	_ = m.Put(ctx, "a", "x.json", []byte("1"))
	_ = m.Put(ctx, "a", "y.json", []byte("2"))
	_ = m.Put(ctx, "b", "z.json", []byte("3"))

	paths, err := m.List(ctx, "a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(paths) != 2 || paths[0] != "x.json" || paths[1] != "y.json" {
		t.Fatalf("paths = %v", paths)
	}
}
