package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of 0/1
// values. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrInvalidValue for any
// value other than Blocked or Walkable. All three wrap ErrInvalidGrid.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	walkable := make([][]bool, rows)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
		walkable[r] = make([]bool, cols)
		for c, v := range row {
			switch v {
			case Walkable:
				walkable[r][c] = true
			case Blocked:
			default:
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidValue, v, r, c)
			}
		}
	}

	return &Grid{rows: rows, cols: cols, walkable: walkable}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Walkable reports whether c is in bounds and traversable.
// Complexity: O(1).
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && g.walkable[c.Row][c.Col]
}

// Check returns ErrOutOfBounds, wrapped with the cell and grid dimensions,
// if c lies outside the grid.
func (g *Grid) Check(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return nil
}

// Neighbors returns the walkable cardinal neighbors of c in
// CardinalOffsets order. Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(CardinalOffsets))
	for _, d := range CardinalOffsets {
		if n := c.Add(d); g.Walkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// String renders the grid one row per line, '.' for walkable and '#' for
// blocked cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.walkable[r][c] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps c to a row-major index: Row*cols + Col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}
