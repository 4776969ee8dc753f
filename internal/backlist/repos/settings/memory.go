package settings

import (
	"context"
	"sync"

	"github.com/haukened/backlist/internal/backlist/common/clock"
)

// memoryStore is a map-backed Store for tests and embedding.
type memoryStore struct {
	mu      sync.RWMutex
	values  map[string]string
	clk     clock.Clock
	version uint64
	updated int64
	closed  bool
}

// NewMemory returns an in-memory Store seeded with initial values.
func NewMemory(clk clock.Clock, initial map[string]string) Store {
	if clk == nil {
		clk = clock.RealClock{}
	}
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &memoryStore{values: values, clk: clk}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", ErrClosed
	}
	return s.values[key], nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	return s.Update(ctx, key, func(string) (string, error) { return value, nil })
}

func (s *memoryStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	next, err := fn(s.values[key])
	if err != nil {
		return err
	}
	s.values[key] = next
	s.version++
	s.updated = s.clk.Now().Unix()
	return nil
}

func (s *memoryStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Keys: uint64(len(s.values)), Version: s.version, UpdatedUnix: s.updated}
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

var _ Store = (*memoryStore)(nil)
