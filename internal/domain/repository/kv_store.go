// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// Storage boundary errors.
var (
	// ErrKeyNotFound is returned when no value is stored under a key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrCorruptDocument is returned when a stored value cannot be decoded into its document shape.
	ErrCorruptDocument = errors.New("corrupt document")
)

// KeyValueStore is the persistence boundary. Values are opaque JSON documents.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored keys that start with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases the underlying connection.
	Close() error
}
