// Package pqueue implements a generic binary min-heap keyed by a float64
// score.
//
// MinHeap always surfaces the lowest-score entry. Push and PopMin are
// O(log n); Peek, Len and IsEmpty are O(1).
//
// There is no decrease-key. Search algorithms built on MinHeap use the
// "lazy-decrease-key" pattern: push a fresh, better entry and discard
// stale duplicates when they are popped. Ties between equal scores are
// broken by heap position and carry no ordering guarantee.
package pqueue
