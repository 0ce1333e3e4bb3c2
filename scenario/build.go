package scenario

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

// Validate checks the document structure: dimensions, rows legend, cost
// values and search definitions. Coordinates are checked against the grid by
// Build and FindPath.
func (sc *Scenario) Validate() error {
	if sc.DefaultCost < 0 {
		return fmt.Errorf("%w: default_cost %d is negative", ErrInvalidScenario, sc.DefaultCost)
	}
	if len(sc.Rows) > 0 {
		if err := sc.validateRows(); err != nil {
			return err
		}
	} else if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d",
			ErrInvalidScenario, sc.Width, sc.Height)
	}
	for _, c := range sc.Costs {
		if c.Cost < grid.MinCost {
			return fmt.Errorf("%w: cost %d at (%d,%d) is below %d",
				ErrInvalidScenario, c.Cost, c.X, c.Y, grid.MinCost)
		}
	}

	seen := make(map[string]struct{}, len(sc.Searches))
	for i, s := range sc.Searches {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: search #%d has no name", ErrInvalidScenario, i)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate search name %q", ErrInvalidScenario, s.Name)
		}
		seen[s.Name] = struct{}{}
		if _, err := s.Options(); err != nil {
			return fmt.Errorf("%w: search %q: %v", ErrInvalidScenario, s.Name, err)
		}
	}
	return nil
}

// validateRows checks that Rows is rectangular, uses only legend runes and
// agrees with Width/Height when those are given too.
func (sc *Scenario) validateRows() error {
	w := len(sc.Rows[0])
	if w == 0 {
		return fmt.Errorf("%w: rows must not be empty", ErrInvalidScenario)
	}
	for y, row := range sc.Rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidScenario, y, len(row), w)
		}
		for x, r := range row {
			if _, _, err := decodeRune(r); err != nil {
				return fmt.Errorf("%w: row %d col %d: %v", ErrInvalidScenario, y, x, err)
			}
		}
	}
	if sc.Width != 0 && sc.Width != w {
		return fmt.Errorf("%w: width %d disagrees with rows (%d)", ErrInvalidScenario, sc.Width, w)
	}
	if sc.Height != 0 && sc.Height != len(sc.Rows) {
		return fmt.Errorf("%w: height %d disagrees with rows (%d)", ErrInvalidScenario, sc.Height, len(sc.Rows))
	}
	return nil
}

// decodeRune maps one rows legend rune to (wall, cost). cost 0 means "default".
func decodeRune(r rune) (wall bool, cost int, err error) {
	switch {
	case r == RuneWall:
		return true, 0, nil
	case r == RuneOpen:
		return false, 0, nil
	case r >= '1' && r <= '9':
		return false, int(r - '0'), nil
	default:
		return false, 0, fmt.Errorf("unknown map rune %q", r)
	}
}

// Dimensions returns the grid size the scenario describes.
func (sc *Scenario) Dimensions() (width, height int) {
	if len(sc.Rows) > 0 {
		return len(sc.Rows[0]), len(sc.Rows)
	}
	return sc.Width, sc.Height
}

// Build constructs the grid. Grid construction errors (out-of-bounds
// obstacles or costs) are wrapped with ErrInvalidScenario.
func (sc *Scenario) Build() (*grid.Grid, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	width, height := sc.Dimensions()

	obstacles := make([]grid.Point, 0, len(sc.Obstacles))
	var opts []grid.Option
	if sc.DefaultCost > 0 {
		opts = append(opts, grid.WithDefaultCost(sc.DefaultCost))
	}
	for y, row := range sc.Rows {
		for x, r := range row {
			wall, cost, _ := decodeRune(r)
			switch {
			case wall:
				obstacles = append(obstacles, grid.Pt(x, y))
			case cost > 0:
				opts = append(opts, grid.WithCost(grid.Pt(x, y), cost))
			}
		}
	}
	for _, o := range sc.Obstacles {
		obstacles = append(obstacles, o.Point())
	}
	for _, c := range sc.Costs {
		opts = append(opts, grid.WithCost(grid.Pt(c.X, c.Y), c.Cost))
	}

	g, err := grid.New(width, height, obstacles, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidScenario, sc.Name, err)
	}
	return g, nil
}

// Search returns the search called name.
func (sc *Scenario) Search(name string) (Search, error) {
	for _, s := range sc.Searches {
		if s.Name == name {
			return s, nil
		}
	}
	return Search{}, fmt.Errorf("%w: %q", ErrUnknownSearch, name)
}

// Options translates s into FindPath options.
func (s Search) Options() ([]astar.Option, error) {
	if s.MaxExpansions < 0 {
		return nil, fmt.Errorf("max_expansions %d is negative", s.MaxExpansions)
	}
	opts := []astar.Option{
		astar.WithDiagonals(s.Diagonals),
		astar.WithMaxExpansions(s.MaxExpansions),
	}
	if s.Heuristic != "" {
		h, err := astar.HeuristicByName(s.Heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithHeuristic(h))
	}
	if s.ReachabilityCheck {
		opts = append(opts, astar.WithReachabilityCheck())
	}
	return opts, nil
}
