package kv

import (
	"context"
	"errors"
)

// ErrNotFound reports that a key has never been written or was deleted.
var ErrNotFound = errors.New("kv: key not found")

// Store is the whole-value key-value surface the platform persists through.
// Every read and write moves a complete serialized value; there are no partial
// updates and no transactions, matching the local-storage contract the web
// client relied on.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(context.Context) error
}
