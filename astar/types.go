package astar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrCancelled is returned when the search context is done before the
	// search finishes. It wraps the context's error.
	ErrCancelled = errors.New("astar: search cancelled")

	// ErrExpansionLimit is returned when MaxExpansions cells were closed
	// without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from a to b. It must never
// overestimate the true four-directional walk cost or optimality is lost.
type Heuristic func(a, b gridgraph.Cell) float64

// Euclidean is the straight-line distance between a and b.
func Euclidean(a, b gridgraph.Cell) float64 {
	dr := float64(b.Row - a.Row)
	dc := float64(b.Col - a.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Manhattan is the L1 distance between a and b, the exact cost on an
// open grid under four-directional movement.
func Manhattan(a, b gridgraph.Cell) float64 {
	return math.Abs(float64(b.Row-a.Row)) + math.Abs(float64(b.Col-a.Col))
}

// Option configures Search via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Polled once per expansion.
	Ctx context.Context

	// Logger receives debug records about the search outcome.
	Logger *slog.Logger

	// Heuristic orders the open set. Defaults to Euclidean.
	Heuristic Heuristic

	// OnExpand is called each time a cell is closed, with its exact cost
	// from the start.
	OnExpand func(c gridgraph.Cell, g int)

	// MaxExpansions, if > 0, bounds the number of closed cells.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - the Euclidean heuristic
//   - a no-op OnExpand hook
//   - no expansion limit
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Heuristic: Euclidean,
		OnExpand:  func(gridgraph.Cell, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHeuristic replaces the Euclidean heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run when a cell is closed.
func WithOnExpand(fn func(c gridgraph.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of closed cells.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of a search:
//   - Path: cells from start to end inclusive; empty if unreachable.
//   - Cost: number of steps along Path (len(Path)-1), 0 if not found.
//   - Expanded: number of cells closed during the search.
type Result struct {
	Path     []gridgraph.Cell
	Cost     int
	Expanded int
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return len(r.Path) > 0 }
