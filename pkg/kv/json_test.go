package kv

import (
	"context"
	"testing"
)

type record struct {
	Name string `json:"name"`
}

func TestReadJSONMissingKey(t *testing.T) {
	store := NewMemory()

	var dest record
	state, err := ReadJSON(context.Background(), store, "absent", &dest)
	if err != nil {
		t.Fatalf("ReadJSON returned error: %v", err)
	}
	if state != ReadMissing {
		t.Fatalf("expected ReadMissing, got %v", state)
	}
	if dest.Name != "" {
		t.Fatalf("dest should be untouched, got %q", dest.Name)
	}
}

func TestReadJSONCorruptValue(t *testing.T) {
	store := NewMemory()
	if err := store.Set(context.Background(), "bad", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	var dest record
	state, err := ReadJSON(context.Background(), store, "bad", &dest)
	if err != nil {
		t.Fatalf("ReadJSON returned error: %v", err)
	}
	if state != ReadCorrupt {
		t.Fatalf("expected ReadCorrupt, got %v", state)
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	store := NewMemory()
	if err := WriteJSON(context.Background(), store, "rec", record{Name: "ade"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var dest record
	state, err := ReadJSON(context.Background(), store, "rec", &dest)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if state != ReadOK {
		t.Fatalf("expected ReadOK, got %v", state)
	}
	if dest.Name != "ade" {
		t.Fatalf("unexpected value %q", dest.Name)
	}
}

func TestMemoryDeleteAndExists(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	present, err := store.Exists(ctx, "k")
	if err != nil || !present {
		t.Fatalf("expected key to exist, err=%v", err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	present, err = store.Exists(ctx, "k")
	if err != nil || present {
		t.Fatalf("expected key to be gone, err=%v", err)
	}
	if _, err := store.Get(ctx, "k"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
