package astar

// openHeap is the open set: a min-heap of cell indices ordered by f, then by
// h, then by insertion sequence. Each node remembers its heap position so an
// improved g can be applied in place with heap.Fix.
type openHeap struct {
	items []int  // cell indices
	nodes []node // shared with the owning search
}

// Len returns the number of open cells.
func (h *openHeap) Len() int { return len(h.items) }

// Less orders by lower f; equal f prefers lower h (closer to the goal),
// then the earlier discovered cell.
func (h *openHeap) Less(i, j int) bool {
	a, b := &h.nodes[h.items[i]], &h.nodes[h.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two entries and keeps their heap positions current.
func (h *openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.nodes[h.items[i]].heapIdx = i
	h.nodes[h.items[j]].heapIdx = j
}

// Push adds a cell index; called by heap.Push.
func (h *openHeap) Push(x interface{}) {
	idx := x.(int)
	h.nodes[idx].heapIdx = len(h.items)
	h.items = append(h.items, idx)
}

// Pop removes the last entry; called by heap.Pop.
func (h *openHeap) Pop() interface{} {
	n := len(h.items)
	idx := h.items[n-1]
	h.items = h.items[:n-1]
	h.nodes[idx].heapIdx = -1
	return idx
}
