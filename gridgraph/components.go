package gridgraph

// ConnectedComponents finds all 4-connected regions of walkable cells.
// Components are returned in row-major order of their first cell; cells
// within a component appear in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, g.Size())
	var comps [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			root := Cell{Row: r, Col: c}
			if !g.walkable[r][c] || seen[g.index(root)] {
				continue
			}
			seen[g.index(root)] = true
			queue := []Cell{root}
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi]) {
					if i := g.index(n); !seen[i] {
						seen[i] = true
						queue = append(queue, n)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether a and b are both walkable and lie in the same
// 4-connected region.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}
	_, ok := g.Distances(a)[b]
	return ok
}

// Distances runs a breadth-first search from start and returns the step
// count to every reachable walkable cell, start included at 0.
// The map is empty when start is blocked or out of bounds.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Distances(start Cell) map[Cell]int {
	dist := make(map[Cell]int)
	if !g.Walkable(start) {
		return dist
	}
	dist[start] = 0
	queue := []Cell{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}
