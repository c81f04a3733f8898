package users

import (
	"context"

	"github.com/myryde/myryde-backend/pkg/kv"
)

// Store persists the full account collection as one JSON array under a single
// key. Every operation rewrites the whole value; there is no per-record
// addressing.
type Store struct {
	kv  kv.Store
	key string
}

// NewStore binds the user collection to the provided key-value store and key.
func NewStore(store kv.Store, key string) *Store {
	return &Store{kv: store, key: key}
}

// Load reads the whole collection. A key that was never written, or whose
// value no longer deserializes, reads as an empty collection; only transport
// failures surface as errors.
func (s *Store) Load(ctx context.Context) ([]User, error) {
	var records []User
	state, err := kv.ReadJSON(ctx, s.kv, s.key, &records)
	if err != nil {
		return nil, err
	}
	if state != kv.ReadOK {
		return []User{}, nil
	}
	if records == nil {
		records = []User{}
	}
	return records, nil
}

// Save overwrites the whole collection.
func (s *Store) Save(ctx context.Context, records []User) error {
	if records == nil {
		records = []User{}
	}
	return kv.WriteJSON(ctx, s.kv, s.key, records)
}
