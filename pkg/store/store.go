package store

import (
	"context"

	"github.com/netinspect/asicview/pkg/store/sonicredis"
)

// Store is a read-only view of one namespace's state database.
// Every query is a single round-trip; no retries.
type Store interface {
	// ListKeys returns all keys matching a glob pattern.
	ListKeys(ctx context.Context, pattern string) ([]string, error)
	// GetAttributes returns the full attribute hash of a key. A missing
	// key yields an empty map, not an error.
	GetAttributes(ctx context.Context, key string) (map[string]string, error)
	// GetAttribute returns one field of a key's hash. A missing key or
	// field yields terrors.ErrKeyNotExists.
	GetAttribute(ctx context.Context, key, field string) (string, error)

	Close() error
}

// New connects to the state database at addr, selecting the given DB index.
func New(ctx context.Context, addr string, db int) (Store, error) {
	return sonicredis.New(ctx, addr, db)
}
