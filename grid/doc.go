// Package grid models a rectangular map of cells that a path search can
// walk over.
//
// What:
//
//   - Grid is a fixed Width×Height collection of Cells stored row-major.
//   - Every Cell carries its coordinates, a Walkable flag and an entry Cost (≥ 1).
//   - Neighbor lists (4- or 8-connected) are computed once per connectivity
//     and cached for the lifetime of the grid.
//   - Walkable cells can be grouped into connected components and measured
//     with an unweighted BFS, which makes a cheap reachability test and a
//     brute-force distance oracle.
//
// Why:
//
//   - Game maps: walls, open floor and costly terrain (mud, rivers, hills).
//   - Robotics and planning: occupancy grids with traversal costs.
//
// Cells are immutable once the grid is built. Search-specific bookkeeping
// (g/h/f costs, parents, open and closed sets) belongs to the search, never to
// the grid, so a single *Grid may be shared by concurrent searches.
//
// Neighbor order:
//
//	left, right, up, down, then (Conn8 only) up-left, down-left, up-right, down-right
//
// where "up" means y-1. The order only influences tie-breaking among equally
// good candidates, never correctness.
//
// Complexity:
//
//   - New / From2D:        O(W×H) time and memory.
//   - Neighbors:           O(1) after the first call per connectivity (O(W×H×d) once).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - StepDistances:       O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions:   width or height is not positive.
//   - ErrEmptyGrid:       From2D input has no rows or no columns.
//   - ErrNonRectangular:  From2D rows have differing lengths.
//   - ErrOutOfBounds:     a coordinate lies outside the grid.
//   - ErrNotWalkable:     a BFS source is an obstacle.
//   - ErrBadCost:         an entry cost is below 1.
//   - ErrOptionViolation: an Option was supplied with invalid arguments.
package grid
