package cli

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	var (
		jobs     int
		machines int
		minTime  int
		maxTime  int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "sample <path>",
		Short: "Write a random sample CSV instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs <= 0 || machines <= 0 {
				return fmt.Errorf("jobs and machines must be > 0 (got %d, %d)", jobs, machines)
			}
			if minTime < 0 || maxTime < minTime {
				return fmt.Errorf("invalid time bounds [%d, %d]", minTime, maxTime)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			w := csv.NewWriter(f)
			defer w.Flush()

			header := make([]string, machines)
			for m := range header {
				header[m] = fmt.Sprintf("Machine_%d", m+1)
			}
			if err := w.Write(header); err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			row := make([]string, machines)
			for j := 0; j < jobs; j++ {
				for m := range row {
					row[m] = strconv.Itoa(minTime + rng.Intn(maxTime-minTime+1))
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
			if err := w.Error(); err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Info("sample written", "path", args[0], "jobs", jobs, "machines", machines)
			return nil
		},
	}

	cmd.Flags().IntVar(&jobs, "jobs", 5, "number of jobs")
	cmd.Flags().IntVar(&machines, "machines", 3, "number of machines")
	cmd.Flags().IntVar(&minTime, "min", 1, "minimum processing time")
	cmd.Flags().IntVar(&maxTime, "max", 20, "maximum processing time")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	return cmd
}
