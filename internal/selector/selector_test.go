package selector

import (
	"testing"

	"github.com/truthseed/truthseed/internal/model"
)

func truths(ids ...string) []model.Truth {
	out := make([]model.Truth, len(ids))
	for i, id := range ids {
		out[i] = model.Truth{ID: id}
	}
	return out
}

func TestPick_EmptyInput(t *testing.T) {
	s := New(&MemoryHistory{}, 3)
	if _, ok := s.Pick(nil); ok {
		t.Error("expected no selection from empty input")
	}
}

func TestPick_SingleElementRecordsHistory(t *testing.T) {
	history := &MemoryHistory{}
	s := New(history, 3)

	got, ok := s.Pick(truths("solo"))
	if !ok || got.ID != "solo" {
		t.Fatalf("Pick = %v, %v", got, ok)
	}

	recent := history.Recent()
	if len(recent) != 1 || recent[0] != "solo" {
		t.Errorf("history = %v, want [solo]", recent)
	}
}

func TestPickSeeded_AvoidsRecentWindow(t *testing.T) {
	history := &MemoryHistory{}
	s := New(history, 2)
	items := truths("a", "b", "c", "d", "e")

	seen := make(map[string]int)
	for i, seed := range []int64{11, 22, 33} {
		got, ok := s.PickSeeded(items, seed)
		if !ok {
			t.Fatalf("selection %d failed", i)
		}
		seen[got.ID]++

		// The pick must not be within the 2 most recent prior picks
		recent := history.Recent()
		if recent[0] != got.ID {
			t.Errorf("most recent history entry = %q, want %q", recent[0], got.ID)
		}
	}

	for id, n := range seen {
		if n > 2 {
			t.Errorf("id %q selected %d times across 3 picks with avoidCount 2", id, n)
		}
	}
}

func TestPickSeeded_ThreeConsecutiveDistinctWithAvoidTwo(t *testing.T) {
	s := New(&MemoryHistory{}, 2)
	items := truths("a", "b", "c", "d", "e")

	first, _ := s.PickSeeded(items, 1)
	second, _ := s.PickSeeded(items, 2)
	third, _ := s.PickSeeded(items, 3)

	if second.ID == first.ID {
		t.Errorf("second pick %q repeats first", second.ID)
	}
	if third.ID == second.ID || third.ID == first.ID {
		// first may have rotated out only if more than avoidCount picks
		// happened since; with avoidCount 2 both are still in window
		t.Errorf("third pick %q repeats one of the last two (%q, %q)", third.ID, first.ID, second.ID)
	}
}

func TestPick_AllRecentFallsBackToFullPool(t *testing.T) {
	history := &MemoryHistory{}
	history.SaveRecent([]string{"a", "b"})

	s := New(history, 2)
	if _, ok := s.PickSeeded(truths("a", "b"), 7); !ok {
		t.Error("selection must never block when all items are recent")
	}
}

func TestRecord_DeduplicatesAndBounds(t *testing.T) {
	history := &MemoryHistory{}
	s := New(history, 3)

	s.record("a")
	s.record("b")
	s.record("a") // moves to front, list must not grow

	recent := history.Recent()
	if len(recent) != 2 {
		t.Fatalf("history length = %d, want 2", len(recent))
	}
	if recent[0] != "a" || recent[1] != "b" {
		t.Errorf("history = %v, want [a b]", recent)
	}

	s.record("c")
	s.record("d")
	recent = history.Recent()
	if len(recent) != 3 {
		t.Errorf("history length = %d, want bound 3", len(recent))
	}
	if recent[0] != "d" {
		t.Errorf("most recent = %q, want d", recent[0])
	}
}

func TestNew_DefaultsApplied(t *testing.T) {
	s := New(nil, 0)
	if s.avoidCount != DefaultAvoidCount {
		t.Errorf("avoidCount = %d, want %d", s.avoidCount, DefaultAvoidCount)
	}
	if s.history == nil {
		t.Error("expected default history")
	}
}
