package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func historyWith(capacity int, ticks ...uint64) *History {
	h := NewHistory(capacity)
	for _, tick := range ticks {
		h.Add(HistoricalTransform{Transform: NewTransform(mgl64.Vec3{float64(tick)}, 0, 0), Tick: tick})
	}
	return h
}

func TestHistoryOverwritesOldest(t *testing.T) {
	h := historyWith(3, 1, 2, 3, 4)
	// Tick 1 was overwritten, so tick 2 is the oldest one left.
	if got, _ := h.Closest(0); got.Tick != 2 || got.Transform.Position.X() != 2 {
		t.Fatalf("expected the oldest remembered tick to be 2, got %+v", got)
	}
	if got, _ := h.Closest(100); got.Tick != 4 {
		t.Fatalf("expected the newest tick to be 4, got %d", got.Tick)
	}
}

func TestHistoryClosest(t *testing.T) {
	h := historyWith(8, 2, 4, 6, 10)
	if got, _ := h.Closest(8); got.Tick != 10 {
		t.Fatalf("expected ties to resolve to the most recent tick, got %d", got.Tick)
	}
	if got, _ := h.Closest(5); got.Tick != 6 {
		t.Fatalf("expected closest tick 6, got %d", got.Tick)
	}

	h.Clear()
	if _, ok := h.Closest(1); ok {
		t.Fatalf("expected no closest transform in an empty history")
	}
	h.Add(HistoricalTransform{Tick: 20})
	if got, ok := h.Closest(1); !ok || got.Tick != 20 {
		t.Fatalf("expected the history to be usable after clearing, got %+v", got)
	}
}
