package grid

import (
	"fmt"
)

// New builds a width×height grid. Every coordinate listed in obstacles is
// unwalkable; all other cells are walkable with the default cost (1 unless
// WithDefaultCost says otherwise) or their WithCost override.
//
// Returns ErrBadDimensions for non-positive sizes or more than MaxCells
// cells, ErrOutOfBounds when an obstacle or cost override lies outside the
// grid, and ErrOptionViolation for invalid options.
// Complexity: O(W×H + |obstacles| + |overrides|).
func New(width, height int, obstacles []Point, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}
	if height > MaxCells/width {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrBadDimensions, width, height, MaxCells)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = Cell{
				Point:    Point{X: x, Y: y},
				Walkable: true,
				Cost:     o.DefaultCost,
			}
		}
	}
	for p, cost := range o.Costs {
		if !g.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: cost override at %s", ErrOutOfBounds, p)
		}
		g.cells[g.index(p.X, p.Y)].Cost = cost
	}
	for _, p := range obstacles {
		if !g.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: obstacle at %s", ErrOutOfBounds, p)
		}
		g.cells[g.index(p.X, p.Y)].Walkable = false
	}

	return g, nil
}

// From2D builds a grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. A value below MinCost marks an obstacle; any other value is
// the entry cost of that cell.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	var obstacles []Point
	opts := make([]Option, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := values[y][x]
			switch {
			case v < MinCost:
				obstacles = append(obstacles, Point{X: x, Y: y})
			case v != MinCost:
				opts = append(opts, WithCost(Point{X: x, Y: y}, v))
			}
		}
	}

	return New(w, h, obstacles, opts...)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps p to its row-major index. p must be in bounds.
func (g *Grid) Index(p Point) int {
	return g.index(p.X, p.Y)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// At returns the cell at p. Passing an out-of-range point is a caller
// contract violation and panics; use Lookup for a checked read.
func (g *Grid) At(p Point) Cell {
	if !g.Contains(p) {
		panic(fmt.Sprintf("grid: At%s outside %dx%d grid", p, g.Width, g.Height))
	}
	return g.cells[g.index(p.X, p.Y)]
}

// Lookup returns the cell at p, or ErrOutOfBounds.
func (g *Grid) Lookup(p Point) (Cell, error) {
	if !g.Contains(p) {
		return Cell{}, fmt.Errorf("%w: %s outside %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height)
	}
	return g.cells[g.index(p.X, p.Y)], nil
}

// CellAt returns the cell stored at row-major index idx.
func (g *Grid) CellAt(idx int) Cell {
	return g.cells[idx]
}

// Walkable reports whether p is inside the grid and not an obstacle.
func (g *Grid) Walkable(p Point) bool {
	return g.Contains(p) && g.cells[g.index(p.X, p.Y)].Walkable
}
