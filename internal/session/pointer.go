package session

import (
	"context"
	"fmt"

	"github.com/myryde/myryde-backend/internal/users"
	"github.com/myryde/myryde-backend/pkg/kv"
)

// Pointer manages the single "currently logged in" record. It stores a full
// snapshot of the user, not a reference: once written it only changes through
// another Put or a Clear, so it can drift from the user store.
type Pointer struct {
	kv  kv.Store
	key string
}

// NewPointer binds the session pointer to the provided key-value store and key.
func NewPointer(store kv.Store, key string) (*Pointer, error) {
	if store == nil {
		return nil, fmt.Errorf("kv store is required")
	}
	if key == "" {
		return nil, fmt.Errorf("session key is required")
	}
	return &Pointer{kv: store, key: key}, nil
}

// Put overwrites the pointer with a snapshot of the given user.
func (p *Pointer) Put(ctx context.Context, user users.User) error {
	return kv.WriteJSON(ctx, p.kv, p.key, user.Clone())
}

// Current returns the snapshot, or ok=false when the pointer is absent or its
// stored value no longer deserializes. Malformed content is never an error.
func (p *Pointer) Current(ctx context.Context) (*users.User, bool) {
	var user users.User
	state, err := kv.ReadJSON(ctx, p.kv, p.key, &user)
	if err != nil || state != kv.ReadOK {
		return nil, false
	}
	return &user, true
}

// Clear deletes the pointer. The user store is untouched.
func (p *Pointer) Clear(ctx context.Context) error {
	return p.kv.Delete(ctx, p.key)
}

// Present reports whether the pointer key exists, without validating that its
// contents are well-formed.
func (p *Pointer) Present(ctx context.Context) bool {
	ok, err := p.kv.Exists(ctx, p.key)
	return err == nil && ok
}
