package store

import (
	"context"
	"sync"
)

// Memory is an in-process Collection used by tests and the REPL's dry-run
// mode. It mirrors File semantics without touching disk.
type Memory[T any] struct {
	mu    sync.Mutex
	items []T
}

func NewMemory[T any](items ...T) *Memory[T] {
	return &Memory[T]{items: items}
}

func (m *Memory[T]) Get(ctx context.Context) []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Memory[T]) Replace(ctx context.Context, items []T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make([]T, len(items))
	copy(m.items, items)
	return true
}
