package sessionx

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps records in process memory. Expired records are hidden
// from Get immediately but only reclaimed by DeleteExpired.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (Record, error) {
	m.mu.RLock()
	rec, ok := m.records[key]
	m.mu.RUnlock()

	if !ok || rec.Expired(m.now()) {
		return Record{}, ErrNotFound
	}
	return rec.clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, rec Record) error {
	m.mu.Lock()
	m.records[key] = rec.clone()
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Touch(_ context.Context, key string, at time.Time) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[key]
	if !ok || rec.Expired(at) {
		return Record{}, ErrNotFound
	}
	rec.LastAccessedAt = at
	m.records[key] = rec
	return rec.clone(), nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.records, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) DeleteExpired(_ context.Context) (int, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for key, rec := range m.records {
		if rec.Expired(now) {
			delete(m.records, key)
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

// Len reports the number of stored records, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
