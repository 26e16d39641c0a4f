// Package store provides the persistent credential store: a small key-value
// store surviving process restarts, used to hold the session token and the
// cached user record. Values are encrypted at rest.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Keys written by the session manager.
const (
	KeyToken    = "token"
	KeyUserData = "userData"
)

// ErrKeyNotFound is returned by Get when the key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// StorageError wraps a failure of the underlying persistence medium.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store is durable key-value storage. Implementations make no transactional
// guarantee across keys: a crash between two Set calls can leave an
// inconsistent pair, and callers must tolerate and self-heal.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) (string, error)
	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
