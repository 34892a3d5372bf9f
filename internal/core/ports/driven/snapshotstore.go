package driven

import "context"

// SnapshotStore persists raw catalog payloads keyed by their source
// location. It backs the offline path: the cached source serves the
// last good payload when the network is down.
// Backed by SQLite.
type SnapshotStore interface {
	// Put stores or replaces the payload for a key.
	Put(ctx context.Context, key string, payload []byte) error

	// Get retrieves the payload for a key.
	// Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Close releases resources.
	Close() error
}
