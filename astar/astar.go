package astar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pqueue"
)

// Search finds a minimum-step path from start to end on g using A* with
// four-directional, unit-cost moves. It accepts functional options to
// customize behavior (WithContext, WithLogger, WithHeuristic, ...).
//
// Returns:
//
//   - Result.Path from start to end inclusive, or an empty Path when end is
//     unreachable. Unreachable is a normal outcome, not an error.
//   - err for invalid input, invalid options, cancellation or an exhausted
//     expansion budget.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (gridgraph.ErrInvalidGrid).
//  3. start and end must be in bounds (gridgraph.ErrOutOfBounds).
//
// A blocked start or end yields an empty Path and a nil error, including
// when start == end.
//
// Complexity:
//
//   - Time:  O(V log V), V = R·C; at most 4 pushes per expanded cell.
//   - Space: O(V) for score, predecessor and closed maps plus the heap.
func Search(g *gridgraph.Grid, start, end gridgraph.Cell, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, fmt.Errorf("%w: grid is nil", gridgraph.ErrInvalidGrid)
	}
	if err := g.Check(start); err != nil {
		return Result{}, fmt.Errorf("astar: start: %w", err)
	}
	if err := g.Check(end); err != nil {
		return Result{}, fmt.Errorf("astar: end: %w", err)
	}

	log := cfg.Logger.With(slog.Any("start", start), slog.Any("end", end))
	if !g.Walkable(start) || !g.Walkable(end) {
		log.Debug("astar: endpoint blocked, no path")
		return Result{}, nil
	}

	s := &searcher{
		grid:    g,
		options: cfg,
		ctx:     cfg.Ctx,
		end:     end,
		gScore:  make(map[gridgraph.Cell]int),
		prev:    make(map[gridgraph.Cell]gridgraph.Cell),
		closed:  make(map[gridgraph.Cell]bool),
		open:    pqueue.New[gridgraph.Cell](g.Rows() + g.Cols()),
		log:     log,
	}
	log.Debug("astar: search start", "rows", g.Rows(), "cols", g.Cols())

	return s.run(start)
}

// SearchValues validates values with gridgraph.NewGrid and runs Search.
func SearchValues(values [][]int, start, end gridgraph.Cell, opts ...Option) (Result, error) {
	g, err := gridgraph.NewGrid(values)
	if err != nil {
		return Result{}, err
	}
	return Search(g, start, end, opts...)
}

// searcher holds the mutable state for a single A* execution.
type searcher struct {
	grid     *gridgraph.Grid
	options  Options
	ctx      context.Context
	end      gridgraph.Cell
	gScore   map[gridgraph.Cell]int            // best known cost from start; absent = unreached
	prev     map[gridgraph.Cell]gridgraph.Cell // predecessor on the best known path
	closed   map[gridgraph.Cell]bool           // fully expanded cells
	open     *pqueue.MinHeap[gridgraph.Cell]   // (f, cell) entries; may hold stale duplicates
	expanded int
	log      *slog.Logger
}

// run seeds the open set with start and expands cells in f-score order
// until end is popped or the open set is exhausted.
func (s *searcher) run(start gridgraph.Cell) (Result, error) {
	s.gScore[start] = 0
	s.open.Push(s.options.Heuristic(start, s.end), start)

	for !s.open.IsEmpty() {
		// cancellation check (once per loop)
		select {
		case <-s.ctx.Done():
			s.log.Debug("astar: cancelled", "expanded", s.expanded)
			return Result{Expanded: s.expanded}, fmt.Errorf("%w: %w", ErrCancelled, s.ctx.Err())
		default:
		}

		item, _ := s.open.PopMin()
		cur := item.Value

		// Stale duplicate of a cell already expanded.
		if s.closed[cur] {
			continue
		}

		if cur == s.end {
			path := s.reconstruct()
			cost := s.gScore[cur]
			s.log.Debug("astar: path found", "cost", cost, "expanded", s.expanded)
			return Result{Path: path, Cost: cost, Expanded: s.expanded}, nil
		}

		if s.options.MaxExpansions > 0 && s.expanded >= s.options.MaxExpansions {
			s.log.Debug("astar: expansion limit reached", "expanded", s.expanded)
			return Result{Expanded: s.expanded}, fmt.Errorf("%w: %d cells", ErrExpansionLimit, s.expanded)
		}

		s.closed[cur] = true
		s.expanded++
		s.options.OnExpand(cur, s.gScore[cur])
		s.relax(cur)
	}

	s.log.Debug("astar: no path", "expanded", s.expanded)
	return Result{Expanded: s.expanded}, nil
}

// relax pushes every open cardinal neighbor of cur whose cost improves,
// or which has not been seen yet.
func (s *searcher) relax(cur gridgraph.Cell) {
	tentative := s.gScore[cur] + 1
	for _, d := range gridgraph.CardinalOffsets {
		n := cur.Add(d)
		if !s.grid.Walkable(n) || s.closed[n] {
			continue
		}
		if old, seen := s.gScore[n]; seen && tentative >= old {
			continue
		}
		s.gScore[n] = tentative
		s.prev[n] = cur
		s.open.Push(float64(tentative)+s.options.Heuristic(n, s.end), n)
	}
}

// reconstruct follows predecessor links from end back to the start, which
// has none, and returns the path in start→end order.
func (s *searcher) reconstruct() []gridgraph.Cell {
	path := []gridgraph.Cell{s.end}
	for cur := s.end; ; {
		p, ok := s.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
