package scenario

import (
	"errors"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors for scenario handling.
var (
	// ErrInvalidScenario indicates a malformed scenario document.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
	// ErrUnknownSearch indicates a search name not defined by the scenario.
	ErrUnknownSearch = errors.New("scenario: unknown search")
)

// Legend runes for Scenario.Rows.
const (
	RuneWall = '#'
	RuneOpen = '.'
)

// Scenario is the YAML document: one grid plus named searches.
type Scenario struct {
	Name        string     `yaml:"name"`
	Width       int        `yaml:"width,omitempty"`
	Height      int        `yaml:"height,omitempty"`
	DefaultCost int        `yaml:"default_cost,omitempty"`
	Obstacles   []Coord    `yaml:"obstacles,omitempty"`
	Costs       []CellCost `yaml:"costs,omitempty"`
	Rows        []string   `yaml:"rows,omitempty"`
	Searches    []Search   `yaml:"searches"`
}

// Coord is a YAML-friendly grid coordinate.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts c to a grid.Point.
func (c Coord) Point() grid.Point { return grid.Pt(c.X, c.Y) }

// CellCost overrides the entry cost of one cell.
type CellCost struct {
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Cost int `yaml:"cost"`
}

// Search is one named FindPath invocation.
type Search struct {
	Name              string `yaml:"name"`
	Start             Coord  `yaml:"start"`
	Goal              Coord  `yaml:"goal"`
	Diagonals         bool   `yaml:"diagonals,omitempty"`
	Heuristic         string `yaml:"heuristic,omitempty"` // dijkstra | diagonal | manhattan; empty = default for connectivity
	MaxExpansions     int    `yaml:"max_expansions,omitempty"`
	ReachabilityCheck bool   `yaml:"reachability_check,omitempty"`
}

// Outcome is the result of running one Search.
// Exactly one of Result and Err is non-nil.
type Outcome struct {
	Search Search
	Result *astar.Result
	Err    error
}

// OK reports whether the search found a path.
func (o Outcome) OK() bool { return o.Err == nil }
