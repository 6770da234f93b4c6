package kv

import "context"

// Repository is a flat key/value namespace.
//
// Get returns (nil, nil) for a key that was never set. Set overwrites.
// Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository that can group writes atomically.
type Store interface {
	Repository
	// WithinTx runs fn against a transactional view. Writes made through
	// that view become visible only if fn returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
	Close() error
}
