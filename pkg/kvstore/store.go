// Package kvstore is the durable key-value shim standing in for browser local storage.
// Values are opaque byte blobs; callers own the encoding.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
)

// Store persists blobs under string keys.
type Store interface {
	// Get returns ErrKeyNotFound when nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrKeyNotFound reports an absent key.
var ErrKeyNotFound = appErrors.ErrKeyNotFound

// IsNotFound reports whether err signals an absent key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// GetJSON decodes the blob stored under key into dest.
func GetJSON(ctx context.Context, s Store, key string, dest interface{}) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, payload)
}
