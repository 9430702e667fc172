// Package selector picks a truth to display while avoiding immediate
// repeats, using a small bounded history of recently shown ids.
package selector

import (
	"math/rand"
	"sync"

	"github.com/truthseed/truthseed/internal/model"
)

// DefaultAvoidCount bounds the recently-shown history
const DefaultAvoidCount = 3

// History stores recently shown truth ids, most-recent-first. It is
// independent of the verse cache and lives only for the session.
type History interface {
	Recent() []string
	SaveRecent(ids []string)
}

// MemoryHistory is a session-scoped in-memory history
type MemoryHistory struct {
	mu  sync.Mutex
	ids []string
}

// Recent returns the recently shown ids, most recent first
func (h *MemoryHistory) Recent() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.ids...)
}

// SaveRecent replaces the stored history
func (h *MemoryHistory) SaveRecent(ids []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ids = append([]string(nil), ids...)
}

// Selector picks truths at random with recency avoidance
type Selector struct {
	history    History
	avoidCount int
	mu         sync.Mutex
}

// New creates a selector over the given history store
func New(history History, avoidCount int) *Selector {
	if avoidCount <= 0 {
		avoidCount = DefaultAvoidCount
	}
	if history == nil {
		history = &MemoryHistory{}
	}
	return &Selector{history: history, avoidCount: avoidCount}
}

// Pick selects a truth uniformly at random, avoiding ids in the
// recency window. When every item is within the window the full list
// becomes the pool: selection never blocks. The chosen id is recorded
// at the front of the history.
func (s *Selector) Pick(truths []model.Truth) (model.Truth, bool) {
	return s.pick(truths, rand.Intn)
}

// PickSeeded selects deterministically from a seeded generator, for
// reproducible behavior in tests
func (s *Selector) PickSeeded(truths []model.Truth, seed int64) (model.Truth, bool) {
	rng := rand.New(rand.NewSource(seed))
	return s.pick(truths, rng.Intn)
}

func (s *Selector) pick(truths []model.Truth, intn func(int) int) (model.Truth, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(truths) == 0 {
		return model.Truth{}, false
	}
	if len(truths) == 1 {
		s.record(truths[0].ID)
		return truths[0], true
	}

	recent := s.history.Recent()
	recentSet := make(map[string]bool, len(recent))
	for _, id := range recent {
		recentSet[id] = true
	}

	available := make([]model.Truth, 0, len(truths))
	for _, t := range truths {
		if !recentSet[t.ID] {
			available = append(available, t)
		}
	}

	pool := available
	if len(pool) == 0 {
		pool = truths
	}

	chosen := pool[intn(len(pool))]
	s.record(chosen.ID)
	return chosen, true
}

// record puts id at the front of the history, deduplicating so a
// re-selected id moves forward without growing the list, then
// truncates to the avoid count
func (s *Selector) record(id string) {
	recent := s.history.Recent()
	updated := make([]string, 0, len(recent)+1)
	updated = append(updated, id)
	for _, prev := range recent {
		if prev != id {
			updated = append(updated, prev)
		}
	}
	if len(updated) > s.avoidCount {
		updated = updated[:s.avoidCount]
	}
	s.history.SaveRecent(updated)
}
