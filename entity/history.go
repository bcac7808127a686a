package entity

// HistoricalTransform is a transform of an entity that was recorded at a certain tick.
type HistoricalTransform struct {
	Transform Transform
	Tick      uint64
}

// History is a fixed-size circular buffer of the transforms an entity had over its last ticks.
type History struct {
	buffer   []HistoricalTransform
	capacity int
	head     int // Points to the next write position
	size     int // Current number of elements
}

// NewHistory creates a new history holding at most capacity transforms. Capacities below 1 are raised to 1.
func NewHistory(capacity int) *History {
	capacity = max(capacity, 1)
	return &History{
		buffer:   make([]HistoricalTransform, capacity),
		capacity: capacity,
	}
}

// Add records a transform, overwriting the oldest one if the history is full.
func (h *History) Add(t HistoricalTransform) {
	h.buffer[h.head] = t
	h.head = (h.head + 1) % h.capacity
	if h.size < h.capacity {
		h.size++
	}
}

// at returns the i-th most recent transform.
func (h *History) at(i int) HistoricalTransform {
	return h.buffer[(h.head-1-i+h.capacity)%h.capacity]
}

// Closest returns the transform recorded closest to the tick passed. Ties resolve to the most recent one.
func (h *History) Closest(tick uint64) (HistoricalTransform, bool) {
	var (
		closest HistoricalTransform
		dist    uint64 = 1<<64 - 1
		found   bool
	)
	for i := 0; i < h.size; i++ {
		t := h.at(i)
		if d := absDiff(t.Tick, tick); d < dist {
			closest, dist, found = t, d, true
		}
	}
	return closest, found
}

// Clear removes all transforms from the history. It is used when the entity is teleported, since the
// transforms before it no longer lead up to the current one.
func (h *History) Clear() {
	h.head = 0
	h.size = 0
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
