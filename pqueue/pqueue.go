package pqueue

// Entry pairs a value with the score it is ordered by.
type Entry[T any] struct {
	Score float64
	Value T
}

// MinHeap is a binary min-heap of entries ordered by Score ascending.
// The zero value is an empty heap ready to use. It is not safe for
// concurrent use.
type MinHeap[T any] struct {
	items []Entry[T]
}

// New returns an empty heap with room for capacity entries.
func New[T any](capacity int) *MinHeap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &MinHeap[T]{items: make([]Entry[T], 0, capacity)}
}

// Len returns the number of entries, duplicates included.
func (h *MinHeap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no entries.
func (h *MinHeap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Reset drops all entries but keeps the backing storage.
func (h *MinHeap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

// Push adds value with the given score. Complexity: O(log n).
func (h *MinHeap[T]) Push(score float64, value T) {
	h.items = append(h.items, Entry[T]{Score: score, Value: value})
	h.up(len(h.items) - 1)
}

// Peek returns the minimum entry without removing it.
// ok is false when the heap is empty.
func (h *MinHeap[T]) Peek() (e Entry[T], ok bool) {
	if len(h.items) == 0 {
		return e, false
	}
	return h.items[0], true
}

// PopMin removes and returns the minimum entry.
// ok is false when the heap is empty. Complexity: O(log n).
func (h *MinHeap[T]) PopMin() (e Entry[T], ok bool) {
	n := len(h.items)
	if n == 0 {
		return e, false
	}
	var zero Entry[T]
	if n == 1 {
		e = h.items[0]
		h.items[0] = zero
		h.items = h.items[:0]
		return e, true
	}

	e = h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	h.down(0)

	return e, true
}

// up moves the entry at i toward the root while it is smaller than its parent.
func (h *MinHeap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].Score >= h.items[parent].Score {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// down moves the entry at i toward the leaves, swapping with the smaller
// child while that child is strictly smaller.
func (h *MinHeap[T]) down(i int) {
	n := len(h.items)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.items[left].Score < h.items[smallest].Score {
			smallest = left
		}
		if right < n && h.items[right].Score < h.items[smallest].Score {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
