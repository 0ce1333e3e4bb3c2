package astar

import (
	"github.com/katalvlaran/gridstar/grid"
)

// Result is the outcome of a successful FindPath call.
//
// Path holds the cells from start to goal inclusive; a search whose start
// equals its goal yields a single-cell path with zero cost. Cost is the sum
// of the entry costs of every cell after the start. Expanded counts the
// cells moved to the closed set.
type Result struct {
	Path     []grid.Point
	Cost     float64
	Expanded int

	pos map[grid.Point]int
}

// newResult indexes path positions for Parent lookups.
func newResult(path []grid.Point, cost float64, expanded int) *Result {
	pos := make(map[grid.Point]int, len(path))
	for i, p := range path {
		pos[p] = i
	}
	return &Result{Path: path, Cost: cost, Expanded: expanded, pos: pos}
}

// Start returns the first cell of the path.
func (r *Result) Start() grid.Point { return r.Path[0] }

// Goal returns the last cell of the path.
func (r *Result) Goal() grid.Point { return r.Path[len(r.Path)-1] }

// Len returns the number of cells on the path.
func (r *Result) Len() int { return len(r.Path) }

// Parent returns the predecessor of p on the path. ok is false for the
// start cell and for cells not on the path.
func (r *Result) Parent(p grid.Point) (parent grid.Point, ok bool) {
	i, found := r.pos[p]
	if !found || i == 0 {
		return grid.Point{}, false
	}
	return r.Path[i-1], true
}

// Chain walks the parent links from the goal back to the start.
func (r *Result) Chain() []grid.Point {
	chain := make([]grid.Point, 0, len(r.Path))
	for p, ok := r.Goal(), true; ok; p, ok = r.Parent(p) {
		chain = append(chain, p)
	}
	return chain
}
