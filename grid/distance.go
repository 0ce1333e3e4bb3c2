package grid

import (
	"fmt"
)

// StepDistances runs an unweighted breadth-first search from `from` over
// walkable cells and returns the number of steps needed to reach each cell
// index, or Unreachable. Entry costs are ignored: every move counts as one
// step, diagonal moves included under Conn8.
//
// On a grid whose walkable cells all cost 1 these are exactly the optimal
// path costs, which makes StepDistances a brute-force oracle for weighted
// searches.
//
// Returns ErrOutOfBounds if from is outside the grid and ErrNotWalkable if
// it is an obstacle.
// Time: O(W·H·d). Memory: O(W·H).
func (g *Grid) StepDistances(from Point, conn Connectivity) ([]int, error) {
	if !g.Contains(from) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, from)
	}
	src := g.Index(from)
	if !g.cells[src].Walkable {
		return nil, fmt.Errorf("%w: %s", ErrNotWalkable, from)
	}

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0
	queue := make([]int, 1, len(g.cells))
	queue[0] = src
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.NeighborIndices(u, conn) {
			if dist[v] != Unreachable || !g.cells[v].Walkable {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist, nil
}

// StepDistance returns the BFS step count from a to b, or Unreachable.
func (g *Grid) StepDistance(a, b Point, conn Connectivity) (int, error) {
	if !g.Contains(b) {
		return Unreachable, fmt.Errorf("%w: %s", ErrOutOfBounds, b)
	}
	dist, err := g.StepDistances(a, conn)
	if err != nil {
		return Unreachable, err
	}
	return dist[g.Index(b)], nil
}
