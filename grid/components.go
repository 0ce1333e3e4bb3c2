package grid

// Unreachable marks cells that a BFS could not reach, and walls in Labels.
const Unreachable = -1

// ConnectedComponents finds all contiguous regions of walkable cells
// according to conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order. Components are ordered by their first cell in
// row-major order.
//
// To convert an index back to a Point, use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(conn Connectivity) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, c := range g.cells {
		if !c.Walkable || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.NeighborIndices(queue[qi], conn) {
				if !seen[v] && g.cells[v].Walkable {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Labels returns, for every cell index, the number of the component it
// belongs to (as ordered by ConnectedComponents), or Unreachable for walls.
// Complexity: O(W·H·d).
func (g *Grid) Labels(conn Connectivity) []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = Unreachable
	}
	for id, comp := range g.ConnectedComponents(conn) {
		for _, idx := range comp {
			labels[idx] = id
		}
	}
	return labels
}

// Reachable reports whether b can be reached from a by walking over
// walkable cells under conn. Both endpoints must be walkable.
// Complexity: O(W·H·d) worst case; stops as soon as b is found.
func (g *Grid) Reachable(a, b Point, conn Connectivity) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}
	src, dst := g.Index(a), g.Index(b)
	if src == dst {
		return true
	}
	seen := make([]bool, len(g.cells))
	seen[src] = true
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.NeighborIndices(queue[qi], conn) {
			if seen[v] || !g.cells[v].Walkable {
				continue
			}
			if v == dst {
				return true
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return false
}
