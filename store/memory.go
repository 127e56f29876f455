package store

import "sync"

// MemoryStore keeps the high score in process memory, for tests
type MemoryStore struct {
	mu    sync.Mutex
	high  int
	saves int
}

// NewMemoryStore creates a store seeded with an initial high score
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{high: initial}
}

func (m *MemoryStore) HighScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high
}

func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.high = score
	m.saves++
	return nil
}

// Saves returns how many times SaveHighScore was called
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
