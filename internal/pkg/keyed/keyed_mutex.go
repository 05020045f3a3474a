// Package keyed provides a mutex registry keyed by an arbitrary comparable
// value. It backs the per-job claim gate and the per-customer ledger
// serialization: every check-then-set sequence on a job runs with that job's
// key locked, so a human claim and a deadline-timer claim can never interleave.
package keyed

import "sync"

// Mutex is a registry of named locks. The zero value is not usable; create
// instances with NewMutex.
type Mutex[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewMutex creates an empty lock registry.
func NewMutex[K comparable]() *Mutex[K] {
	return &Mutex[K]{locks: make(map[K]*lockEntry)}
}

// Lock acquires the exclusive lock for key, blocking until it is available.
// It returns the matching unlock function. Entries are reference-counted and
// removed once the last holder releases, so the registry does not grow with
// the number of keys ever seen.
func (m *Mutex[K]) Lock(key K) (unlock func()) {
	m.mu.Lock()
	entry, ok := m.locks[key]
	if !ok {
		entry = &lockEntry{}
		m.locks[key] = entry
	}
	entry.refs++
	m.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		m.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(m.locks, key)
		}
		m.mu.Unlock()
	}
}
