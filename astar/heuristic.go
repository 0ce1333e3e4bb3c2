package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridstar/grid"
)

// Heuristic estimates the remaining cost from a cell to the goal.
// Implementations must be pure: the goal is always passed in, nothing is
// read from state left over by an earlier search.
type Heuristic func(from, goal grid.Point) float64

// D is the cost of one orthogonal step assumed by the heuristics.
const D = 1.0

// tieBreak inflates Manhattan estimates by 1% so that, among paths of equal
// cost, the ones heading straight for the goal are expanded first.
const tieBreak = 1 + 1.0/100

// Dijkstra always returns 0, turning A* into uniform-cost search. It
// guarantees an optimal path but explores most of the grid.
func Dijkstra(_, _ grid.Point) float64 {
	return 0
}

// Diagonal is the octile/Chebyshev distance D*(dx+dy) + (D-2D)*min(dx,dy).
// It is admissible when a diagonal step costs the same as an orthogonal one,
// and is the natural choice when diagonals are allowed.
func Diagonal(from, goal grid.Point) float64 {
	dx, dy := deltas(from, goal)
	return D*(dx+dy) + (D-2*D)*math.Min(dx, dy)
}

// Manhattan is D*(dx+dy) scaled by 1.01. The factor breaks ties in favor of
// straighter paths and may overestimate very slightly, so optimality is not
// strictly guaranteed. Use it when diagonals are disabled.
func Manhattan(from, goal grid.Point) float64 {
	dx, dy := deltas(from, goal)
	return D * (dx + dy) * tieBreak
}

// deltas returns |from.X-goal.X| and |from.Y-goal.Y| as floats.
func deltas(from, goal grid.Point) (dx, dy float64) {
	dx = math.Abs(float64(from.X - goal.X))
	dy = math.Abs(float64(from.Y - goal.Y))
	return dx, dy
}

// DefaultHeuristic returns Diagonal when diagonals are allowed and
// Manhattan otherwise.
func DefaultHeuristic(diagonals bool) Heuristic {
	if diagonals {
		return Diagonal
	}
	return Manhattan
}

// heuristicNames lists the names accepted by HeuristicByName.
var heuristicNames = map[string]Heuristic{
	"dijkstra":  Dijkstra,
	"diagonal":  Diagonal,
	"manhattan": Manhattan,
}

// HeuristicByName resolves "dijkstra", "diagonal" or "manhattan"
// (case-insensitive). Returns ErrUnknownHeuristic otherwise.
func HeuristicByName(name string) (Heuristic, error) {
	h, ok := heuristicNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	return h, nil
}
