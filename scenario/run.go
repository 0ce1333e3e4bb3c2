package scenario

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

// Run builds the scenario grid once and executes every search on it in
// document order. A nil logger discards output.
//
// Search failures are recorded on the corresponding Outcome. Run itself only
// fails when the grid cannot be built or ctx is done; in the latter case the
// outcomes completed so far are returned together with ctx.Err().
func Run(ctx context.Context, sc *Scenario, logger *log.Logger) ([]Outcome, error) {
	g, err := sc.Build()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	width, height := sc.Dimensions()
	logger.Info("scenario loaded", "name", sc.Name, "width", width, "height", height, "searches", len(sc.Searches))

	outcomes := make([]Outcome, 0, len(sc.Searches))
	for _, s := range sc.Searches {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		out := RunSearch(ctx, g, s, logger)
		if errors.Is(out.Err, context.Canceled) || errors.Is(out.Err, context.DeadlineExceeded) {
			return outcomes, out.Err
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// RunSearch executes one search against an already built grid.
func RunSearch(ctx context.Context, g *grid.Grid, s Search, logger *log.Logger) Outcome {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := logger.With("search", s.Name)

	opts, err := s.Options()
	if err != nil {
		l.Error("bad search options", "error", err)
		return Outcome{Search: s, Err: err}
	}
	opts = append(opts, astar.WithContext(ctx), astar.WithLogger(l))

	res, err := astar.FindPath(g, s.Start.Point(), s.Goal.Point(), opts...)
	switch {
	case err == nil:
		l.Info("path found", "cost", res.Cost, "length", res.Len(), "expanded", res.Expanded)
	case errors.Is(err, astar.ErrNoPath), errors.Is(err, astar.ErrExpansionLimit):
		l.Warn("no path", "error", err)
	default:
		l.Error("search failed", "error", err)
	}
	return Outcome{Search: s, Result: res, Err: err}
}
