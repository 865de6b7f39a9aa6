package store

import (
	"fmt"
	"sync"
)

// memoryStore is the shared in-memory backing for the three entity stores:
// a mutex-guarded map from natural key to entity. Individual operations are
// atomic with respect to each other; sequences are not, so a check-then-act
// pair across two calls can still race. That matches the contract of the
// stores built on top.
type memoryStore[T any] struct {
	label string
	mu    sync.RWMutex
	items map[string]T
	keyOf func(T) string
}

func newMemoryStore[T any](label string, keyOf func(T) string) *memoryStore[T] {
	return &memoryStore[T]{
		label: label,
		items: make(map[string]T),
		keyOf: keyOf,
	}
}

// save inserts or overwrites; last write wins on a duplicate key.
func (s *memoryStore[T]) save(v T) error {
	key := s.keyOf(v)
	if key == "" {
		return fmt.Errorf("%s key is empty", s.label)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = v
	return nil
}

// update overwrites an existing entry and fails when the key is absent.
func (s *memoryStore[T]) update(v T) error {
	key := s.keyOf(v)
	if key == "" {
		return fmt.Errorf("%s key is empty", s.label)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[key]; !ok {
		return fmt.Errorf("%s %q: %w", s.label, key, ErrNotFound)
	}
	s.items[key] = v
	return nil
}

func (s *memoryStore[T]) get(key string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[key]
}

// list returns a fresh slice; callers may mutate it freely. Order follows
// map iteration and carries no meaning.
func (s *memoryStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		out = append(out, v)
	}
	return out
}

// filter returns the entries matching pred, in map iteration order.
func (s *memoryStore[T]) filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0)
	for _, v := range s.items {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// remove deletes the key; removing an absent key is a no-op.
func (s *memoryStore[T]) remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}
