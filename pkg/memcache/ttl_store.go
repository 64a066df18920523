// Package mem holds small in-process stores with per-entry expiry.
package mem

import (
	"sync"
	"time"
)

type Store[V any] interface {
	Set(key string, value V, ttl time.Duration)
	Get(key string) (V, bool)
	Delete(key string)
	Len() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLStore is a mutex-guarded map whose entries expire after their TTL.
// Expired entries are dropped lazily on read and during Set once the store
// grows past sweepAt entries.
type TTLStore[V any] struct {
	mu      sync.RWMutex
	data    map[string]entry[V]
	now     func() time.Time
	sweepAt int
}

func NewTTLStore[V any]() *TTLStore[V] {
	return &TTLStore[V]{
		data:    make(map[string]entry[V]),
		now:     time.Now,
		sweepAt: 1000,
	}
}

func (s *TTLStore[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if len(s.data) >= s.sweepAt {
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
	s.data[key] = entry[V]{value: value, expiresAt: now.Add(ttl)}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// re-check: another writer may have refreshed the key
		if cur, ok := s.data[key]; ok && s.now().After(cur.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
