// Package gridpath finds shortest paths on 2D occupancy grids.
//
// What is gridpath?
//
//	A small, pure-Go library for four-directional, unit-cost path search:
//		• gridgraph – Cell and Grid types, validation, neighbors, BFS reachability
//		• pqueue    – generic binary min-heap keyed by a float64 score
//		• astar     – A* search with an admissible Euclidean heuristic
//
// Why choose gridpath?
//
//   - Optimal paths – admissible heuristic, strict-improvement relaxation
//   - No hidden state – every search owns its maps and heap
//   - Hooks – WithLogger, WithOnExpand, WithContext for tooling and UIs
//
// Quick ASCII example:
//
//	S . . .
//	# # # .
//	G . . .
//
// S reaches G in 8 steps around the wall.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
