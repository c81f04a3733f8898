package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// ReadState distinguishes a key that was never written from one whose stored
// value no longer deserializes. Most callers treat both as empty, but tests
// can tell them apart.
type ReadState int

const (
	ReadOK ReadState = iota
	ReadMissing
	ReadCorrupt
)

// ReadJSON loads and deserializes the whole value stored at key into dest.
// Missing and corrupt values leave dest untouched and report their state
// instead of an error; only transport failures surface as errors.
func ReadJSON(ctx context.Context, store Store, key string, dest any) (ReadState, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return ReadMissing, nil
	}
	if err != nil {
		return ReadMissing, err
	}
	if jsonErr := json.Unmarshal([]byte(raw), dest); jsonErr != nil {
		return ReadCorrupt, nil
	}
	return ReadOK, nil
}

// WriteJSON serializes value and stores it whole at key.
func WriteJSON(ctx context.Context, store Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
