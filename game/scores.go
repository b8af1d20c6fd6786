package game

import (
	"sort"
	"sync"
)

// MaxTopScores is how many records the leaderboard keeps
const MaxTopScores = 5

// ScoreStore persists survival times of finished runs
type ScoreStore interface {
	// Load returns at most MaxTopScores records, highest first
	Load() ([]int, error)

	// Save appends one record
	Save(seconds int) error
}

// TopScores sorts records descending and keeps the best MaxTopScores
func TopScores(records []int) []int {
	out := append([]int(nil), records...)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if len(out) > MaxTopScores {
		out = out[:MaxTopScores]
	}
	return out
}

// MemoryScores is an in-memory ScoreStore, used headless and in tests
type MemoryScores struct {
	mu      sync.Mutex
	records []int
}

// Load returns the top records
func (m *MemoryScores) Load() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return TopScores(m.records), nil
}

// Save appends a record
func (m *MemoryScores) Save(seconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, seconds)
	return nil
}

// Records returns every saved record in save order
func (m *MemoryScores) Records() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.records...)
}
