// Package astar_test contains unit tests for the A* implementation.
// These tests cover input validation, the reference scenarios on small
// grids, weighted terrain, termination on disconnected maps, the bounded
// search options and concurrent use of a shared grid.
package astar_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, w, h int, obstacles ...grid.Point) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, obstacles)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestFindPath_Validation(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.Pt(1, 1))

	cases := []struct {
		name        string
		g           *grid.Grid
		start, goal grid.Point
		opts        []astar.Option
		want        error
	}{
		{"NilGrid", nil, grid.Pt(0, 0), grid.Pt(1, 0), nil, astar.ErrNilGrid},
		{"StartOutside", g, grid.Pt(-1, 0), grid.Pt(2, 2), nil, astar.ErrInvalidCoordinate},
		{"GoalOutside", g, grid.Pt(0, 0), grid.Pt(3, 3), nil, astar.ErrInvalidCoordinate},
		{"StartBlocked", g, grid.Pt(1, 1), grid.Pt(2, 2), nil, astar.ErrInvalidCoordinate},
		{"GoalBlocked", g, grid.Pt(0, 0), grid.Pt(1, 1), nil, astar.ErrInvalidCoordinate},
		{"NilHeuristic", g, grid.Pt(0, 0), grid.Pt(2, 2), []astar.Option{astar.WithHeuristic(nil)}, astar.ErrOptionViolation},
		{"NegativeLimit", g, grid.Pt(0, 0), grid.Pt(2, 2), []astar.Option{astar.WithMaxExpansions(-1)}, astar.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.FindPath(tc.g, tc.start, tc.goal, tc.opts...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Reference scenarios.
// ------------------------------------------------------------------------

func TestFindPath_StartIsGoal(t *testing.T) {
	g := mustGrid(t, 4, 4)
	for _, diag := range []bool{false, true} {
		res, err := astar.FindPath(g, grid.Pt(2, 1), grid.Pt(2, 1), astar.WithDiagonals(diag))
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Cost)
		assert.Equal(t, []grid.Point{grid.Pt(2, 1)}, res.Path)
		assert.Equal(t, 1, res.Expanded)
	}
}

func TestFindPath_OpenGridDiagonal(t *testing.T) {
	// 5×5, no obstacles, diagonals with the Diagonal heuristic: four diagonal steps.
	g := mustGrid(t, 5, 5)
	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(4, 4),
		astar.WithDiagonals(true),
		astar.WithHeuristic(astar.Diagonal),
	)
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, 5, res.Len())
	assert.Equal(t, []grid.Point{
		grid.Pt(0, 0), grid.Pt(1, 1), grid.Pt(2, 2), grid.Pt(3, 3), grid.Pt(4, 4),
	}, res.Path)
}

func TestFindPath_OpenGridManhattan(t *testing.T) {
	// Same grid, orthogonal moves only with the Manhattan heuristic.
	g := mustGrid(t, 5, 5)
	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(4, 4),
		astar.WithDiagonals(false),
		astar.WithHeuristic(astar.Manhattan),
	)
	require.NoError(t, err)

	assert.Equal(t, 8.0, res.Cost)
	assert.Equal(t, 9, res.Len())
	assertValidPath(t, g, res, false)
}

func TestFindPath_AroundCenterObstacle(t *testing.T) {
	// 3×3 with the center blocked; the path must go around it.
	g := mustGrid(t, 3, 3, grid.Pt(1, 1))
	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(2, 2), astar.WithDiagonals(false))
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, 5, res.Len())
	assert.NotContains(t, res.Path, grid.Pt(1, 1))
	assertValidPath(t, g, res, false)
}

func TestFindPath_DefaultHeuristic(t *testing.T) {
	g := mustGrid(t, 6, 3)
	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(5, 2), astar.WithDiagonals(true))
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Cost)

	res, err = astar.FindPath(g, grid.Pt(0, 0), grid.Pt(5, 2))
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Cost)
}

// ------------------------------------------------------------------------
// 3. Weighted terrain.
// ------------------------------------------------------------------------

func TestFindPath_WeightedTerrain(t *testing.T) {
	// A costly ridge (9) in the middle column with a cheap pass at the bottom.
	//
	//	1 9 1
	//	1 9 1
	//	1 1 1
	g, err := grid.From2D([][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	// Orthogonal: straight over the ridge costs 10, the detour costs 6.
	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(2, 0), astar.WithHeuristic(astar.Dijkstra))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Cost)
	assert.Equal(t, 7, res.Len())
	assertValidPath(t, g, res, false)

	// Diagonal: slip through the pass in four cheap steps.
	res, err = astar.FindPath(g, grid.Pt(0, 0), grid.Pt(2, 0), astar.WithDiagonals(true))
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, []grid.Point{
		grid.Pt(0, 0), grid.Pt(0, 1), grid.Pt(1, 2), grid.Pt(2, 1), grid.Pt(2, 0),
	}, res.Path)
}

// ------------------------------------------------------------------------
// 4. Termination and bounded search.
// ------------------------------------------------------------------------

func TestFindPath_NoPath(t *testing.T) {
	// Goal in the corner sealed by three walls.
	g := mustGrid(t, 5, 5, grid.Pt(3, 3), grid.Pt(3, 4), grid.Pt(4, 3))

	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(4, 4), astar.WithDiagonals(true))
	assert.Nil(t, res)
	require.ErrorIs(t, err, astar.ErrNoPath)

	// The reachability check fails before any expansion.
	expansions := 0
	res, err = astar.FindPath(g, grid.Pt(0, 0), grid.Pt(4, 4),
		astar.WithDiagonals(true),
		astar.WithReachabilityCheck(),
		astar.WithOnExpand(func(grid.Point, float64, float64) error {
			expansions++
			return nil
		}),
	)
	assert.Nil(t, res)
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Zero(t, expansions)
}

func TestFindPath_ReachabilityCheckPasses(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.Pt(1, 1))
	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(2, 2), astar.WithReachabilityCheck())
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Cost)
}

func TestFindPath_MaxExpansions(t *testing.T) {
	g := mustGrid(t, 10, 10)

	_, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(9, 9),
		astar.WithHeuristic(astar.Dijkstra),
		astar.WithMaxExpansions(3),
	)
	require.ErrorIs(t, err, astar.ErrExpansionLimit)

	// A limit of one is enough when start is the goal.
	res, err := astar.FindPath(g, grid.Pt(5, 5), grid.Pt(5, 5), astar.WithMaxExpansions(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Expanded)

	// Zero means no limit.
	res, err = astar.FindPath(g, grid.Pt(0, 0), grid.Pt(9, 9), astar.WithMaxExpansions(0))
	require.NoError(t, err)
	assert.Equal(t, 18.0, res.Cost)
}

func TestFindPath_OnExpandAbort(t *testing.T) {
	g := mustGrid(t, 10, 10)
	stop := errors.New("stop here")

	var seen []grid.Point
	_, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(9, 9),
		astar.WithOnExpand(func(p grid.Point, _, _ float64) error {
			seen = append(seen, p)
			if len(seen) == 2 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Len(t, seen, 2)
	assert.Equal(t, grid.Pt(0, 0), seen[0])
}

func TestFindPath_OnExpandOrder(t *testing.T) {
	// f values of expanded cells never decrease with a consistent heuristic.
	g := mustGrid(t, 8, 8, grid.Pt(3, 2), grid.Pt(3, 3), grid.Pt(3, 4), grid.Pt(3, 5))
	last := -1.0
	_, err := astar.FindPath(g, grid.Pt(0, 4), grid.Pt(7, 4),
		astar.WithDiagonals(true),
		astar.WithHeuristic(astar.Diagonal),
		astar.WithOnExpand(func(_ grid.Point, _, f float64) error {
			assert.GreaterOrEqual(t, f, last)
			last = f
			return nil
		}),
	)
	require.NoError(t, err)
}

func TestFindPath_ContextCanceled(t *testing.T) {
	g := mustGrid(t, 10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(9, 9), astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 5. Determinism, parent chain and concurrency.
// ------------------------------------------------------------------------

func TestFindPath_Idempotent(t *testing.T) {
	g := mustGrid(t, 12, 9, grid.Pt(4, 0), grid.Pt(4, 1), grid.Pt(4, 2), grid.Pt(4, 3), grid.Pt(8, 8), grid.Pt(8, 7))
	for _, h := range []astar.Heuristic{astar.Dijkstra, astar.Diagonal, astar.Manhattan} {
		for _, diag := range []bool{false, true} {
			a, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(11, 8), astar.WithDiagonals(diag), astar.WithHeuristic(h))
			require.NoError(t, err)
			b, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(11, 8), astar.WithDiagonals(diag), astar.WithHeuristic(h))
			require.NoError(t, err)
			assert.Equal(t, a.Path, b.Path)
			assert.Equal(t, a.Cost, b.Cost)
			assert.Equal(t, a.Expanded, b.Expanded)
		}
	}
}

func TestResult_ParentChain(t *testing.T) {
	g := mustGrid(t, 5, 5)
	res, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(4, 4), astar.WithDiagonals(true))
	require.NoError(t, err)

	assert.Equal(t, grid.Pt(0, 0), res.Start())
	assert.Equal(t, grid.Pt(4, 4), res.Goal())

	parent, ok := res.Parent(grid.Pt(4, 4))
	require.True(t, ok)
	assert.Equal(t, grid.Pt(3, 3), parent)

	_, ok = res.Parent(grid.Pt(0, 0))
	assert.False(t, ok)
	_, ok = res.Parent(grid.Pt(0, 4))
	assert.False(t, ok)

	assert.Equal(t, []grid.Point{
		grid.Pt(4, 4), grid.Pt(3, 3), grid.Pt(2, 2), grid.Pt(1, 1), grid.Pt(0, 0),
	}, res.Chain())
}

func TestFindPath_ConcurrentSharedGrid(t *testing.T) {
	g := mustGrid(t, 30, 30, grid.Pt(10, 0), grid.Pt(10, 1), grid.Pt(10, 2), grid.Pt(10, 3), grid.Pt(20, 29), grid.Pt(20, 28))
	want, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(29, 29), astar.WithDiagonals(true))
	require.NoError(t, err)

	const workers = 8
	results := make([]*astar.Result, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = astar.FindPath(g, grid.Pt(0, 0), grid.Pt(29, 29), astar.WithDiagonals(true))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want.Path, results[i].Path)
	}
}

func TestFindPath_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := mustGrid(t, 3, 3)
	_, err := astar.FindPath(g, grid.Pt(0, 0), grid.Pt(2, 2), astar.WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "search started")
	assert.Contains(t, buf.String(), "path found")
}

// assertValidPath checks endpoints, adjacency, walkability and the cost sum.
func assertValidPath(t *testing.T, g *grid.Grid, res *astar.Result, diagonals bool) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	cost := 0
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1], res.Path[i]
		assert.Contains(t, g.Neighbors(prev, diagonals), cur, "step %s→%s", prev, cur)
		assert.True(t, g.Walkable(cur), "cell %s", cur)
		cost += g.At(cur).Cost
	}
	assert.Equal(t, float64(cost), res.Cost)
}
