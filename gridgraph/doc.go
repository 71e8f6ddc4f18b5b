// Package gridgraph treats a 2D occupancy grid as an implicit graph for
// path search and reachability analysis.
//
// What:
//
//   - Grid wraps a rectangular [][]int of 0 (blocked) and 1 (walkable) cells.
//   - Cell is a (Row, Col) value type; equality and hashing by value.
//   - Neighbors enumerates the four cardinal moves with unit cost.
//   - ConnectedComponents and Distances give BFS-based reachability.
//
// Why:
//
//   - Game maps and robot occupancy grids: feed Grid to astar.Search.
//   - Testing: Distances is an exact shortest-path oracle for small grids.
//
// Complexity:
//
//   - NewGrid:             O(R×C), Memory: O(R×C).
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//   - Distances:           O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidGrid: umbrella for every construction failure below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidValue: a cell is neither 0 nor 1.
//   - ErrOutOfBounds: Check was given a cell outside the grid.
package gridgraph
