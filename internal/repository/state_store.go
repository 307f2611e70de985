package repository

import "context"

// StateStore abstracts the shared key-value state.
// Implementations: Redis (production), Postgres (durable alternative) or in-memory (local dev / tests).
type StateStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Ping(ctx context.Context) error
}
