package storage

import "context"

// Storage defines the interface for durable key/value persistence
type Storage interface {
	// Get retrieves the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key string, value string) error

	// Remove deletes the value stored under key; removing an absent key is a no-op
	Remove(ctx context.Context, key string) error
}
