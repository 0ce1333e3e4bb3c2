// Package astar implements A* least-cost path search on a grid.Grid with
// optional diagonal movement.
//
// Overview:
//
//   - FindPath expands cells in order of f = g + h, where g is the cost paid
//     from the start and h is a heuristic estimate of the cost left to the goal.
//   - Entering a cell costs that cell's Cost (≥ 1); diagonal steps cost the
//     same as orthogonal ones.
//   - Each cell is in exactly one state per search: unseen, open or closed.
//     Closed cells are never expanded again.
//   - The open set is a binary heap. Ties on f are broken by lower h, then by
//     discovery order, so identical inputs always yield identical paths.
//
// Heuristics:
//
//   - Dijkstra:  h = 0. Uniform-cost search; optimal, explores the most.
//   - Diagonal:  D*(dx+dy) + (D-2D)*min(dx,dy). Admissible with diagonals; the default when they are allowed.
//   - Manhattan: D*(dx+dy)*1.01. Prefers straight paths; may overestimate slightly. The default without diagonals.
//
// All heuristics are pure functions of (cell, goal). The engine computes h
// once per cell per search, when the cell is first discovered.
//
// Options:
//
//   - WithDiagonals(bool):      8-connectivity instead of 4.
//   - WithHeuristic(Heuristic): choose the heuristic.
//   - WithMaxExpansions(int):   stop after n expansions (ErrExpansionLimit).
//   - WithContext(ctx):         cancellation, checked once per expansion.
//   - WithOnExpand(fn):         per-expansion hook; a returned error aborts.
//   - WithReachabilityCheck():  fail fast when start and goal are disconnected.
//   - WithLogger(*log.Logger):  debug records for search start and finish.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:           nil grid.
//   - ErrInvalidCoordinate: start or goal outside the grid or on a wall.
//   - ErrNoPath:            open set exhausted; the goal is unreachable.
//   - ErrExpansionLimit:    MaxExpansions reached.
//   - ErrOptionViolation:   invalid option argument.
//
// Thread safety:
//
//   - All per-search state (g, h, f, parents, set membership) lives in an
//     arena owned by the call, and grids are immutable, so any number of
//     FindPath calls may share one *grid.Grid concurrently.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H.
//   - Space: O(N).
//
// Example:
//
//	g, _ := grid.New(5, 5, nil)
//	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(4, 4),
//	    astar.WithDiagonals(true),
//	    astar.WithHeuristic(astar.Diagonal),
//	)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(res.Cost, res.Path)
package astar
