package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"flowsolve/internal/bench"
	"flowsolve/internal/flowshop"
	"flowsolve/internal/ga"
	"flowsolve/internal/heuristic"
	"flowsolve/internal/ls"
	"flowsolve/internal/opt"
	"flowsolve/internal/vns"
)

// improverNames fixes the order improvement stages run and tie-break in.
var improverNames = []string{"2opt", "insert", "vns", "genetic"}

func newImprover(name string, p Params, seed int64) (opt.Improver, error) {
	rng := rand.New(rand.NewSource(seed))
	switch name {
	case "2opt":
		return ls.New(p.lsConfig(ls.NeighborhoodSwap))
	case "insert":
		return ls.New(p.lsConfig(ls.NeighborhoodInsert))
	case "vns":
		return vns.New(p.vnsConfig(), rng)
	case "genetic":
		return ga.New(p.gaConfig(false), rng)
	default:
		return nil, fmt.Errorf("unknown improvement method %q (available: %v)", name, improverNames)
	}
}

func newSolveCmd() *cobra.Command {
	var (
		heuristics []string
		improve    []string
		seed       int64
		paramsPath string
	)

	cmd := &cobra.Command{
		Use:   "solve <csv>",
		Short: "Solve a flow-shop instance from a CSV processing-time matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			inst, names, err := readCSV(args[0])
			if err != nil {
				return err
			}
			logger.Info("instance loaded", "jobs", inst.Jobs, "machines", inst.Machines)

			params, err := loadParams(paramsPath)
			if err != nil {
				return err
			}

			eval, err := flowshop.NewEvaluator(inst)
			if err != nil {
				return err
			}

			cmp := &bench.Comparison{}
			if err := runHeuristics(cmd.Context(), eval, inst, heuristics, cmp); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderComparison("Heuristic comparison", cmp.Records(), names))

			start, ok := cmp.Best()
			if !ok {
				return fmt.Errorf("no heuristic results; select at least one with --heuristics")
			}

			if err := runImprovements(cmd.Context(), inst, start.Permutation, improve, params, seed, cmp); err != nil {
				return err
			}

			best, _ := cmp.Best()
			q, err := eval.Quality(best.Permutation)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderComparison("Final comparison", cmp.Records(), names))
			fmt.Fprintln(cmd.OutOrStdout(), renderAnalysis(best.Method, best.Permutation, q, names))
			if start.Makespan > 0 && best.Makespan < start.Makespan {
				pct := (start.Makespan - best.Makespan) / start.Makespan * 100
				fmt.Fprintf(cmd.OutOrStdout(), "Improvement over %s: %.1f%%\n", start.Method, pct)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&heuristics, "heuristics", heuristic.Names(), "constructive heuristics to run")
	cmd.Flags().StringSliceVar(&improve, "improve", []string{"2opt", "insert", "vns"}, "improvement methods to run (2opt, insert, vns, genetic); empty to skip")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for vns and genetic stages")
	cmd.Flags().StringVar(&paramsPath, "params", "", "TOML file with solver parameters")
	return cmd
}

// runHeuristics scores every selected constructive heuristic into cmp.
func runHeuristics(ctx context.Context, eval *flowshop.Evaluator, inst *flowshop.Instance, selected []string, cmp *bench.Comparison) error {
	logger := loggerFromContext(ctx)
	for _, name := range selected {
		build, err := heuristic.Get(name)
		if err != nil {
			return err
		}
		begin := time.Now()
		seq, err := build(inst)
		if err != nil {
			return fmt.Errorf("heuristic %s: %w", name, err)
		}
		ms, err := eval.Makespan(seq)
		if err != nil {
			return fmt.Errorf("heuristic %s: %w", name, err)
		}
		cmp.Add(name, seq, ms, time.Since(begin))
		logger.Debug("heuristic done", "name", name, "makespan", ms)
	}
	return nil
}

// runImprovements seeds every selected improvement stage with the start
// sequence and records the outcomes in cmp.
func runImprovements(ctx context.Context, inst *flowshop.Instance, start []int, selected []string, params Params, seed int64, cmp *bench.Comparison) error {
	logger := loggerFromContext(ctx)
	for _, name := range selected {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		imp, err := newImprover(name, params, seed)
		if err != nil {
			return err
		}
		res, err := imp.Improve(ctx, inst, start)
		if err != nil {
			return fmt.Errorf("improvement %s: %w", name, err)
		}
		cmp.Add(name, res.Permutation, res.Makespan, res.Duration)
		logger.Info("improvement done", "name", name, "makespan", res.Makespan, "evaluations", res.Evaluations)
	}
	return nil
}
