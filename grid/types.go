package grid

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNotWalkable indicates an operation that needs a walkable cell got an obstacle.
	ErrNotWalkable = errors.New("grid: cell is not walkable")
	// ErrBadCost indicates an entry cost below MinCost.
	ErrBadCost = errors.New("grid: cell cost must be at least 1")
	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// MinCost is the smallest legal entry cost of a walkable cell.
const MinCost = 1

// MaxCells caps Width×Height so that construction fails with
// ErrBadDimensions instead of overflowing or exhausting memory.
const MaxCells = 1 << 26

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: left, right, up, down.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals: up-left, down-left, up-right, down-right.
	Conn8
)

// ConnectivityFor maps an "allow diagonals" flag to a Connectivity.
func ConnectivityFor(diagonals bool) Connectivity {
	if diagonals {
		return Conn8
	}
	return Conn4
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Point is an immutable (X, Y) grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is one grid position. Cells are created once by the grid
// constructor and never change afterwards.
type Cell struct {
	Point         // Coordinates within the grid
	Walkable bool // false for obstacles
	Cost     int  // cost of entering this cell, ≥ MinCost
}

// Options holds construction parameters for New.
type Options struct {
	// DefaultCost is the entry cost of every walkable cell without an override.
	DefaultCost int
	// Costs overrides the entry cost of individual cells.
	Costs map[Point]int

	// internal error recorded during option parsing
	err error
}

// Option configures New via functional arguments. Invalid arguments are
// recorded and surfaced as ErrOptionViolation when New runs.
type Option func(*Options)

// DefaultOptions returns Options with DefaultCost=1 and no overrides.
func DefaultOptions() Options {
	return Options{
		DefaultCost: MinCost,
		Costs:       make(map[Point]int),
	}
}

// WithDefaultCost sets the entry cost of all walkable cells.
func WithDefaultCost(cost int) Option {
	return func(o *Options) {
		if cost < MinCost {
			o.err = fmt.Errorf("%w: default cost %d: %w", ErrOptionViolation, cost, ErrBadCost)
			return
		}
		o.DefaultCost = cost
	}
}

// WithCost sets the entry cost of the cell at p, e.g. for rough terrain.
func WithCost(p Point, cost int) Option {
	return func(o *Options) {
		if cost < MinCost {
			o.err = fmt.Errorf("%w: cost %d at %s: %w", ErrOptionViolation, cost, p, ErrBadCost)
			return
		}
		o.Costs[p] = cost
	}
}

// Grid is a rectangular, immutable collection of cells.
// Cells are stored row-major: index = y*Width + x.
// Neighbor lists are built lazily, once per connectivity.
type Grid struct {
	Width, Height int
	cells         []Cell

	adjOnce [2]sync.Once
	adj     [2][][]int
}
