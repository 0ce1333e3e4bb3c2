package grid

// orthogonal and diagonal hold neighbor offsets in the documented order:
// left, right, up, down, then up-left, down-left, up-right, down-right.
var (
	orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// offsets returns the neighbor offsets for conn in documented order.
func offsets(conn Connectivity) [][2]int {
	out := make([][2]int, 0, 8)
	out = append(out, orthogonal[:]...)
	if conn == Conn8 {
		out = append(out, diagonal[:]...)
	}
	return out
}

// Neighbors returns the in-bounds cells adjacent to p, up to 4 without
// diagonals or 8 with them. Walls are included; callers decide whether to
// enter them. The returned slice is a fresh copy.
// Complexity: O(d) once the cache for this connectivity is built.
func (g *Grid) Neighbors(p Point, diagonals bool) []Point {
	if !g.Contains(p) {
		return nil
	}
	ids := g.NeighborIndices(g.Index(p), ConnectivityFor(diagonals))
	out := make([]Point, len(ids))
	for i, id := range ids {
		out[i] = g.Coordinate(id)
	}
	return out
}

// NeighborIndices returns the cached, read-only list of row-major indices
// adjacent to idx under conn. Callers must not modify the result.
// The cache is built on first use and is safe for concurrent readers.
func (g *Grid) NeighborIndices(idx int, conn Connectivity) []int {
	c := 0
	if conn == Conn8 {
		c = 1
	}
	g.adjOnce[c].Do(func() {
		g.adj[c] = g.buildAdjacency(conn)
	})
	return g.adj[c][idx]
}

// buildAdjacency computes the neighbor lists of every cell, clamping at edges.
func (g *Grid) buildAdjacency(conn Connectivity) [][]int {
	deltas := offsets(conn)
	adj := make([][]int, len(g.cells))
	for idx := range g.cells {
		p := g.Coordinate(idx)
		list := make([]int, 0, len(deltas))
		for _, d := range deltas {
			nx, ny := p.X+d[0], p.Y+d[1]
			if g.InBounds(nx, ny) {
				list = append(list, g.index(nx, ny))
			}
		}
		adj[idx] = list
	}
	return adj
}
