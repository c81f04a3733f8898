// Package theme persists the light/dark display preference.
package theme

import (
	"context"
	"errors"
	"fmt"

	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/kv"
)

// Theme is a display preference value.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse maps a raw value onto a theme. Anything unrecognized, including an
// empty string, falls back to light.
func Parse(raw string) Theme {
	if raw == string(Dark) {
		return Dark
	}
	return Light
}

// Store reads and writes the preference under a single key.
type Store struct {
	kv  kv.Store
	key string
}

func NewStore(store kv.Store, key string) (*Store, error) {
	if store == nil {
		return nil, fmt.Errorf("kv store is required")
	}
	if key == "" {
		return nil, fmt.Errorf("theme key is required")
	}
	return &Store{kv: store, key: key}, nil
}

// Current returns the stored preference, defaulting to light when the key is
// missing or holds an unknown value.
func (s *Store) Current(ctx context.Context) (Theme, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return Light, nil
		}
		return Light, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "theme read failed")
	}
	return Parse(raw), nil
}

// Set persists the preference. Unknown values are rejected rather than
// silently normalized so a bad client write is visible.
func (s *Store) Set(ctx context.Context, value Theme) error {
	if value != Light && value != Dark {
		return pkgerrors.New(pkgerrors.CodeValidation, "theme must be light or dark")
	}
	if err := s.kv.Set(ctx, s.key, string(value)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "theme write failed")
	}
	return nil
}

// Toggle flips the stored preference and returns the new value.
func (s *Store) Toggle(ctx context.Context) (Theme, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return Light, err
	}
	next := Light
	if current == Light {
		next = Dark
	}
	if err := s.Set(ctx, next); err != nil {
		return Light, err
	}
	return next, nil
}
