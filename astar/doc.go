// Package astar implements A* shortest-path search on a four-connected
// occupancy grid with unit step cost.
//
// Search expands cells in order of f = g + h, where g is the exact number of
// steps from the start and h is an admissible estimate of the remaining
// steps (Euclidean distance by default). The open set is a pqueue.MinHeap.
//
// Complexity:
//
//   - Time:  O(V log V) with V = rows × cols.
//   - Each cell is expanded at most once.
//   - Each expansion pushes at most four entries, so the heap holds O(V).
//   - Space: O(V) for g-scores, predecessors, the closed set and the heap.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: an improved neighbor is pushed
//     again and stale entries are discarded when popped, via the closed set.
//   - A neighbor is (re)pushed when first seen or when its cost strictly
//     improves; equal-cost alternatives are ignored.
//   - All state is allocated per call. Concurrent Searches on the same Grid
//     are safe because Grid is immutable.
//
// Outcomes:
//
//   - Found: Result.Path runs from start to end inclusive.
//   - Unreachable (including a blocked start or end): empty Path, nil error.
//   - ErrCancelled:      the context was done before the search finished.
//   - ErrExpansionLimit: WithMaxExpansions was exhausted.
//   - gridgraph.ErrOutOfBounds / gridgraph.ErrInvalidGrid: bad input.
//
// Example usage:
//
//	res, err := astar.Search(g, gridgraph.Cell{}, gridgraph.Cell{Row: 4, Col: 4},
//	    astar.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
package astar
