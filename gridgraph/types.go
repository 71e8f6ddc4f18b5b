package gridgraph

import "strconv"

// Cell values accepted by NewGrid.
const (
	Blocked  = 0
	Walkable = 1
)

// Cell identifies a grid position by row and column.
// It is a comparable value type and may be used as a map key.
type Cell struct {
	Row, Col int
}

// Add returns the cell displaced by o.
func (c Cell) Add(o Offset) Cell {
	return Cell{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Offset is a unit displacement between neighboring cells.
type Offset struct {
	DRow, DCol int
}

// CardinalOffsets lists the four orthogonal moves in expansion order:
// down, up, right, left.
var CardinalOffsets = [4]Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rectangular traversability map. It is immutable once built:
// NewGrid deep-copies its input and no method mutates the cells.
type Grid struct {
	rows, cols int
	walkable   [][]bool
}
