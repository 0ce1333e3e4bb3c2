// gridstar runs A* grid pathfinding scenarios from the command line.
//
// Usage:
//
//	gridstar solve [scenario.yaml]   - Run the searches of a scenario and print paths
//	gridstar check [scenario.yaml]   - Validate a scenario and report grid connectivity
//
// Without a file argument the built-in demo scenario is used.
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/scenario"
)

var (
	// Global flags
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridstar",
	Short: "gridstar - A* pathfinding on weighted grids",
	Long: `gridstar loads a YAML scenario describing a grid and a list of searches,
and runs them with the A* engine.

Available commands:
  solve    - Run searches and print the resulting paths
  check    - Validate a scenario and report connectivity

Examples:
  gridstar solve
  gridstar solve maps/cave.yaml --search entrance
  gridstar check maps/cave.yaml --log-level debug`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			ReportTimestamp: true,
			Prefix:          "gridstar",
			Level:           level,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadScenario reads the scenario named by args, or the built-in demo.
func loadScenario(args []string) (*scenario.Scenario, error) {
	if len(args) == 0 {
		logger.Debug("using built-in demo scenario")
		return scenario.Default(), nil
	}
	logger.Debug("loading scenario", "path", args[0])
	return scenario.Load(args[0])
}
