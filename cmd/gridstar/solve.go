package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/scenario"
)

var flagSearch string

var solveCmd = &cobra.Command{
	Use:   "solve [scenario.yaml]",
	Short: "Run the searches of a scenario",
	Long: `Runs every search of the scenario (or only the one selected with --search)
and prints cost, path length, expansion count and the path coordinates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Run only the named search")
}

func runSolve(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	if flagSearch != "" {
		s, err := sc.Search(flagSearch)
		if err != nil {
			return err
		}
		sc.Searches = []scenario.Search{s}
	}

	outcomes, err := scenario.Run(cmd.Context(), sc, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scenario %q\n\n", sc.Name)
	for _, o := range outcomes {
		printOutcome(out, o)
	}
	return nil
}

func printOutcome(w io.Writer, o scenario.Outcome) {
	if !o.OK() {
		fmt.Fprintf(w, "  %s: %v\n", o.Search.Name, o.Err)
		return
	}
	r := o.Result
	fmt.Fprintf(w, "  %s: cost %g, %d cells, %d expanded\n", o.Search.Name, r.Cost, r.Len(), r.Expanded)
	fmt.Fprintf(w, "    %s\n", formatPath(r.Path))
}

func formatPath(path []grid.Point) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
