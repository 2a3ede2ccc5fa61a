package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps values and history in memory. Used in tests and when no
// database is available.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	games []GameResult
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

var (
	_ KV      = (*MemoryStore)(nil)
	_ History = (*MemoryStore)(nil)
)

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) RecordGame(_ context.Context, r GameResult) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = int64(len(m.games) + 1)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	m.games = append(m.games, r)
	return r.ID, nil
}

// RecentGames returns up to limit games, newest first.
func (m *MemoryStore) RecentGames(_ context.Context, limit int) ([]GameResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 {
		limit = 10
	}
	out := make([]GameResult, 0, min(limit, len(m.games)))
	for i := len(m.games) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.games[i])
	}
	return out, nil
}

func (m *MemoryStore) Stats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := &Stats{GamesCount: len(m.games)}
	for _, g := range m.games {
		stats.TotalScore += int64(g.Score)
		stats.HighScore = max(stats.HighScore, g.Score)
		stats.LastPlayed = g.CreatedAt
	}
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}
	return stats, nil
}

func (m *MemoryStore) ClearHistory(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games = nil
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
