// Package astar defines core types, configuration options and sentinel
// errors for A* search over a grid.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidCoordinate indicates that start or goal lies outside the grid
	// or on an unwalkable cell. It is reported before any search work is done.
	ErrInvalidCoordinate = errors.New("astar: invalid start or goal coordinate")

	// ErrNoPath indicates that the open set was exhausted before the goal was
	// reached. It is an expected outcome on disconnected maps, not a failure
	// of the engine.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrExpansionLimit indicates that the search stopped after MaxExpansions
	// expansions without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrUnknownHeuristic indicates that HeuristicByName got an unknown name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// discardLogger is the default logger; it drops everything.
var discardLogger = log.New(io.Discard)

// Options configures a single FindPath call.
//
// Diagonals         – allow the four diagonal moves (8-connectivity).
// Heuristic         – estimate of the remaining cost; nil means DefaultHeuristic(Diagonals).
// MaxExpansions     – stop with ErrExpansionLimit after this many expansions; 0 = unlimited.
// Ctx               – cancellation, checked once per expansion.
// OnExpand          – called for every expanded cell; a non-nil error aborts the search.
// ReachabilityCheck – fail fast with ErrNoPath when start and goal lie in different regions.
// Logger            – receives debug records for search start and finish.
type Options struct {
	Diagonals         bool
	Heuristic         Heuristic
	MaxExpansions     int
	Ctx               context.Context
	OnExpand          func(p grid.Point, g, f float64) error
	ReachabilityCheck bool
	Logger            *log.Logger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
// Invalid arguments are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
//   - Diagonals:         false (4-connectivity).
//   - Heuristic:         nil (resolved to DefaultHeuristic at search time).
//   - MaxExpansions:     0 (unlimited).
//   - Ctx:               context.Background().
//   - OnExpand:          no-op.
//   - ReachabilityCheck: false.
//   - Logger:            discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(grid.Point, float64, float64) error { return nil },
		Logger:   discardLogger,
	}
}

// WithDiagonals allows or forbids diagonal moves.
func WithDiagonals(allow bool) Option {
	return func(o *Options) {
		o.Diagonals = allow
	}
}

// WithHeuristic selects the heuristic. Passing nil is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run on every expansion with the cell
// and its g and f costs. Returning an error stops the search.
func WithOnExpand(fn func(p grid.Point, g, f float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithReachabilityCheck runs a connectivity test before searching so that
// unreachable goals fail without exploring the start's whole region.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// WithLogger routes debug records to logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
