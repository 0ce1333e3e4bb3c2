// Package gridstar is an A* pathfinding toolkit for rectangular,
// weighted grids.
//
// What is inside:
//
//	grid/           immutable Grid of cells (walls, entry costs), cached 4/8-neighbor
//	                lists, connected regions and unit-step BFS distances
//	astar/          FindPath with pluggable heuristics (Dijkstra, Diagonal, Manhattan),
//	                expansion limits, cancellation and OnExpand hooks
//	scenario/       YAML scenarios: one grid plus named searches, run as a batch
//	cmd/gridstar/   command line front-end (solve, check)
//
// Quick ASCII example:
//
//	S . . # .
//	. # . # .
//	. # . . G
//
// A search from S to G with 4-connectivity walks around both walls and
// returns the path, its total cost and the number of expanded cells.
//
// Every search keeps its own state, so one Grid can serve many concurrent
// FindPath calls.
//
//	go get github.com/katalvlaran/gridstar
package gridstar
