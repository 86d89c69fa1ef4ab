package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the flowsolve CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "flowsolve",
		Short:        "flowsolve schedules permutation flow shops",
		Long:         `flowsolve computes and improves job sequences for the permutation flow-shop scheduling problem: constructive heuristics (NEH, Palmer, CDS, SPT, LPT, Pendulum) build an initial sequence and local search, VNS or a genetic algorithm refine it, all minimizing makespan.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newSampleCmd())

	return root.ExecuteContext(context.Background())
}
