package kv

import (
	"context"
	"maps"
	"sync"
)

type memRepo struct {
	data map[string][]byte
}

func (r *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

func (r *memRepo) Set(_ context.Context, key string, value []byte) error {
	r.data[key] = clone(value)
	return nil
}

func (r *memRepo) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r *memRepo) List(_ context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = clone(v)
	}
	return out, nil
}

func (r *memRepo) Clear(_ context.Context) error {
	clear(r.data)
	return nil
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu   sync.Mutex
	repo memRepo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{repo: memRepo{data: make(map[string][]byte)}}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Get(ctx, key)
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Set(ctx, key, value)
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(ctx, key)
}

func (s *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.List(ctx)
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Clear(ctx)
}

// WithinTx runs fn on a copy of the data and swaps it in when fn succeeds.
// fn must not call back into s.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memRepo{data: maps.Clone(s.repo.data)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.repo.data = tx.data
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
