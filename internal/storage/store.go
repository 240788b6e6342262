// internal/storage/store.go
package storage

import "context"

// Store is the durable key-value gateway session state is mirrored to.
// Values are whole-value overwrites; there are no partial updates.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
