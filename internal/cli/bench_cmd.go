package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"flowsolve/internal/bench"
	"flowsolve/internal/ga"
	"flowsolve/internal/opt"
)

func newBenchCmd() *cobra.Command {
	var (
		out          string
		pairs        string
		algos        []string
		runs         int
		baseSeed     int64
		instanceSeed int64
		perRunTO     time.Duration
		paramsPath   string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark improvement algorithms on random instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			params, err := loadParams(paramsPath)
			if err != nil {
				return err
			}

			cases, err := parsePairs(pairs, instanceSeed)
			if err != nil {
				return err
			}

			available := benchAlgorithms(params)
			var selected []bench.Algorithm
			for _, name := range algos {
				algo, ok := available[strings.ToLower(name)]
				if !ok {
					return fmt.Errorf("unknown algorithm %q (available: 2opt, insert, vns, genetic, genetic-standalone)", name)
				}
				selected = append(selected, algo)
			}

			runner := bench.Runner{
				Runs:          runs,
				BaseSeed:      baseSeed,
				PerRunTimeout: perRunTO,
			}

			var records []bench.Record
			for _, c := range cases {
				for _, a := range selected {
					p := newProgress(logger)
					rec, err := runner.RunCase(cmd.Context(), c, a)
					if err != nil {
						return err
					}
					records = append(records, rec)
					p.done(fmt.Sprintf("%s %dx%d: best=%.2f mean=%.2f std=%.2f",
						a.Name, c.Jobs, c.Machines,
						rec.MakespanBest, rec.MakespanMean, rec.MakespanStd))
				}
			}

			if err := bench.WriteCSV(out, records); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			logger.Info("results saved", "path", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "artifacts/results.csv", "output CSV path")
	cmd.Flags().StringVar(&pairs, "pairs", "20x5,50x10", "jobs x machines configurations, comma separated")
	cmd.Flags().StringSliceVar(&algos, "algos", []string{"2opt", "insert", "vns", "genetic"}, "algorithms to benchmark")
	cmd.Flags().IntVar(&runs, "runs", 10, "runs per algorithm (distinct seeds)")
	cmd.Flags().Int64Var(&baseSeed, "seed", 1000, "base seed for algorithm runs")
	cmd.Flags().Int64Var(&instanceSeed, "instance-seed", 777, "base seed for instance generation")
	cmd.Flags().DurationVar(&perRunTO, "per-run-timeout", 0, "timeout per run; 0 disables")
	cmd.Flags().StringVar(&paramsPath, "params", "", "TOML file with solver parameters")
	return cmd
}

// benchAlgorithms builds the named improver factories for the bench command.
func benchAlgorithms(params Params) map[string]bench.Algorithm {
	factoryFor := func(name string) func(seed int64) opt.Improver {
		return func(seed int64) opt.Improver {
			imp, err := newImprover(name, params, seed)
			if err != nil {
				panic(err)
			}
			return imp
		}
	}
	standaloneGA := func(seed int64) opt.Improver {
		solver, err := ga.New(params.gaConfig(true), rand.New(rand.NewSource(seed)))
		if err != nil {
			panic(err)
		}
		return solver
	}
	return map[string]bench.Algorithm{
		"2opt":    {Name: "2opt", Factory: factoryFor("2opt")},
		"insert":  {Name: "insert", Factory: factoryFor("insert")},
		"vns":     {Name: "vns", Factory: factoryFor("vns")},
		"genetic": {Name: "genetic", Factory: factoryFor("genetic")},
		"genetic-standalone": {
			Name:       "genetic-standalone",
			Factory:    standaloneGA,
			Standalone: true,
		},
	}
}

func parsePairs(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	var cases []bench.Case
	for i, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		jm := strings.Split(p, "x")
		if len(jm) != 2 {
			return nil, fmt.Errorf("pair %q is malformed, expected e.g. 50x10", p)
		}
		jobs, err := strconv.Atoi(jm[0])
		if err != nil {
			return nil, fmt.Errorf("pair %q: bad job count: %w", p, err)
		}
		machines, err := strconv.Atoi(jm[1])
		if err != nil {
			return nil, fmt.Errorf("pair %q: bad machine count: %w", p, err)
		}
		if jobs <= 0 || machines <= 0 {
			return nil, fmt.Errorf("pair %q: jobs and machines must be > 0", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(jobs)*100 + int64(machines)
		cases = append(cases, bench.Case{
			Jobs:         jobs,
			Machines:     machines,
			InstanceSeed: seed,
		})
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no benchmark cases in %q", s)
	}
	return cases, nil
}
