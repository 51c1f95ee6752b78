// Package kmutex provides a mutex keyed by an arbitrary comparable value.
// It serializes critical sections per key while leaving different keys
// fully independent.
package kmutex

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type KMutex[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

func New[K comparable]() *KMutex[K] {
	return &KMutex[K]{
		entries: make(map[K]*entry),
	}
}

func (k *KMutex[K]) Lock(key K) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

func (k *KMutex[K]) Unlock(key K) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		panic("kmutex: unlock of unlocked key")
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
