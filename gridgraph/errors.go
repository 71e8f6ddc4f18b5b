package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is the umbrella error for any malformed grid input.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrInvalidValue indicates a cell value other than Blocked or Walkable.
	ErrInvalidValue = fmt.Errorf("%w: cell values must be 0 or 1", ErrInvalidGrid)
	// ErrOutOfBounds indicates a cell lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
