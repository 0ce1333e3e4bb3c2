package astar

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridstar/grid"
)

// FindPath computes a least-cost path from start to goal on g.
// Moving into a cell costs that cell's Cost; diagonal moves are allowed only
// with WithDiagonals(true).
//
// Returns:
//
//   - res: the path ordered start→goal, its total cost and the number of
//     expanded cells.
//   - err: nil on success, or one of
//     ErrOptionViolation   for invalid options,
//     ErrNilGrid           if g is nil,
//     ErrInvalidCoordinate if start or goal is outside g or not walkable,
//     ErrNoPath            if the goal cannot be reached,
//     ErrExpansionLimit    if MaxExpansions was hit,
//     the context error, or the OnExpand error (wrapped).
//
// Validation happens before any search work, in the order listed above.
//
// Complexity:
//
//   - Time:  O(N log N) where N = W×H (every cell is pushed and popped at most once).
//   - Space: O(N) for the per-search node arena.
func FindPath(g *grid.Grid, start, goal grid.Point, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	h := cfg.Heuristic
	if h == nil {
		h = DefaultHeuristic(cfg.Diagonals)
	}
	conn := grid.ConnectivityFor(cfg.Diagonals)

	// 3) Optional cheap connectivity test
	if cfg.ReachabilityCheck && !g.Reachable(start, goal, conn) {
		cfg.Logger.Debug("goal unreachable", "start", start, "goal", goal, "conn", conn)
		return nil, fmt.Errorf("%w: %s and %s lie in separate regions", ErrNoPath, start, goal)
	}

	// 4) Run the search on a fresh node arena
	s := newSearch(g, cfg, h, conn, start, goal)
	return s.run()
}

// checkEndpoint reports ErrInvalidCoordinate for points outside g or on walls.
func checkEndpoint(g *grid.Grid, name string, p grid.Point) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %s %s outside %dx%d grid", ErrInvalidCoordinate, name, p, g.Width, g.Height)
	}
	if !g.At(p).Walkable {
		return fmt.Errorf("%w: %s %s is not walkable", ErrInvalidCoordinate, name, p)
	}
	return nil
}

// nodeState tracks which set a cell belongs to during one search.
type nodeState uint8

const (
	stateUnseen nodeState = iota
	stateOpen
	stateClosed
)

// node is the per-search bookkeeping for one cell.
type node struct {
	g, h, f float64
	parent  int // cell index of the predecessor, -1 for none
	heapIdx int
	seq     uint64
	state   nodeState
}

// search holds the mutable state for a single FindPath execution.
type search struct {
	grid      *grid.Grid
	opts      Options
	ctx       context.Context
	log       *log.Logger
	heuristic Heuristic
	conn      grid.Connectivity

	start, goal int
	goalPt      grid.Point

	nodes    []node   // arena indexed by cell index
	open     openHeap // open set
	seq      uint64   // insertion counter for FIFO tie-break
	expanded int
}

// newSearch allocates the node arena and the open heap.
func newSearch(g *grid.Grid, cfg Options, h Heuristic, conn grid.Connectivity, start, goal grid.Point) *search {
	nodes := make([]node, g.Len())
	for i := range nodes {
		nodes[i].parent = -1
		nodes[i].heapIdx = -1
	}
	return &search{
		grid:      g,
		opts:      cfg,
		ctx:       cfg.Ctx,
		log:       cfg.Logger,
		heuristic: h,
		conn:      conn,
		start:     g.Index(start),
		goal:      g.Index(goal),
		goalPt:    goal,
		nodes:     nodes,
		open:      openHeap{items: make([]int, 0, 64), nodes: nodes},
	}
}

// run drives Select → Expand → Relax until the goal is closed or the open
// set is empty.
func (s *search) run() (*Result, error) {
	s.log.Debug("search started",
		"start", s.grid.Coordinate(s.start), "goal", s.goalPt, "conn", s.conn)

	// The start cell enters with g = h = f = 0.
	s.discover(s.start, -1, 0, 0)

	for s.open.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		default:
		}
		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			s.log.Debug("expansion limit reached", "expanded", s.expanded)
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, s.expanded)
		}

		cur := heap.Pop(&s.open).(int)
		done, err := s.expand(cur)
		if err != nil {
			return nil, err
		}
		if done {
			res := s.result()
			s.log.Debug("path found", "cost", res.Cost, "length", len(res.Path), "expanded", res.Expanded)
			return res, nil
		}
		s.relax(cur)
	}

	s.log.Debug("open set exhausted", "expanded", s.expanded)
	return nil, fmt.Errorf("%w: from %s to %s after %d expansions",
		ErrNoPath, s.grid.Coordinate(s.start), s.goalPt, s.expanded)
}

// discover moves an unseen cell into the open set.
func (s *search) discover(idx, parent int, g, h float64) {
	n := &s.nodes[idx]
	n.parent = parent
	n.g = g
	n.h = h
	n.f = g + h
	n.seq = s.seq
	n.state = stateOpen
	s.seq++
	heap.Push(&s.open, idx)
}

// expand closes idx and reports whether it is the goal.
func (s *search) expand(idx int) (bool, error) {
	n := &s.nodes[idx]
	n.state = stateClosed
	s.expanded++

	p := s.grid.Coordinate(idx)
	if err := s.opts.OnExpand(p, n.g, n.f); err != nil {
		return false, fmt.Errorf("astar: OnExpand error at %s: %w", p, err)
	}
	return idx == s.goal, nil
}

// relax examines the neighbors of cur. Unseen cells are opened with cur as
// parent; open cells adopt cur as parent when that is strictly cheaper.
// Walls and closed cells are skipped. h is computed once per cell, on
// discovery, and never recomputed.
func (s *search) relax(cur int) {
	base := s.nodes[cur].g
	for _, nb := range s.grid.NeighborIndices(cur, s.conn) {
		cell := s.grid.CellAt(nb)
		if !cell.Walkable {
			continue
		}
		n := &s.nodes[nb]
		g := base + float64(cell.Cost)

		switch n.state {
		case stateUnseen:
			s.discover(nb, cur, g, s.heuristic(cell.Point, s.goalPt))
		case stateOpen:
			if g < n.g {
				n.parent = cur
				n.g = g
				n.f = g + n.h
				heap.Fix(&s.open, n.heapIdx)
			}
		case stateClosed:
			// never re-expanded
		}
	}
}

// result rebuilds the path by following parent links back from the goal.
func (s *search) result() *Result {
	var path []grid.Point
	for at := s.goal; at >= 0; at = s.nodes[at].parent {
		path = append(path, s.grid.Coordinate(at))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return newResult(path, s.nodes[s.goal].g, s.expanded)
}
