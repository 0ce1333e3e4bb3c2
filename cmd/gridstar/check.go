package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/grid"
)

var checkCmd = &cobra.Command{
	Use:   "check [scenario.yaml]",
	Short: "Validate a scenario and report connectivity",
	Long: `Builds the scenario grid without searching. Prints the grid size, the
number of walkable cells and connected regions, and whether each search's
endpoints are valid and lie in the same region.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	g, err := sc.Build()
	if err != nil {
		return err
	}

	walkable := 0
	for idx := 0; idx < g.Len(); idx++ {
		if g.CellAt(idx).Walkable {
			walkable++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scenario %q: %dx%d, %d walkable cells\n", sc.Name, g.Width, g.Height, walkable)
	fmt.Fprintf(out, "  regions: %d (4-connected), %d (8-connected)\n",
		len(g.ConnectedComponents(grid.Conn4)), len(g.ConnectedComponents(grid.Conn8)))

	for _, s := range sc.Searches {
		start, goal := s.Start.Point(), s.Goal.Point()
		conn := grid.ConnectivityFor(s.Diagonals)
		switch {
		case !g.Walkable(start):
			fmt.Fprintf(out, "  %s: invalid start %s\n", s.Name, start)
		case !g.Walkable(goal):
			fmt.Fprintf(out, "  %s: invalid goal %s\n", s.Name, goal)
		case !g.Reachable(start, goal, conn):
			fmt.Fprintf(out, "  %s: unreachable (%s)\n", s.Name, conn)
		default:
			steps, err := g.StepDistance(start, goal, conn)
			if err != nil || steps == grid.Unreachable {
				fmt.Fprintf(out, "  %s: unreachable (%s): %v\n", s.Name, conn, err)
				break
			}
			fmt.Fprintf(out, "  %s: ok, at least %d steps (%s)\n", s.Name, steps, conn)
		}
		logger.Debug("checked search", "search", s.Name, "start", start, "goal", goal)
	}
	return nil
}
