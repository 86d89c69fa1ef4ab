package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"flowsolve/internal/flowshop"
	"flowsolve/internal/heuristic"
	"flowsolve/internal/opt"
)

type Algorithm struct {
	Name    string
	Factory func(seed int64) opt.Improver
	// Standalone algorithms ignore the constructive seed and start from
	// their own initial population.
	Standalone bool
}

type Case struct {
	Jobs         int
	Machines     int
	InstanceSeed int64
}

type Record struct {
	Algo     string
	Jobs     int
	Machines int
	Runs     int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	MakespanBest float64
	MakespanMean float64
	MakespanStd  float64
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
}

// RunCase generates the case instance, builds one NEH seed sequence for it
// and runs the algorithm r.Runs times with distinct RNG seeds.
func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	instRng := randForSeed(c.InstanceSeed)
	inst := flowshop.RandomInstance(c.Jobs, c.Machines, 1, 99, instRng)

	var start []int
	if !algo.Standalone {
		var err error
		start, err = heuristic.NEH(inst)
		if err != nil {
			return Record{}, fmt.Errorf("neh seed: %w", err)
		}
	}

	makespans := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)

		imp := algo.Factory(runSeed)

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		begin := time.Now()
		res, err := imp.Improve(runCtx, inst, start)
		dur := time.Since(begin)
		cancel()

		if err != nil && runCtx.Err() != nil {
			return Record{}, fmt.Errorf("run %d: cancelled/timeout: %w", i, err)
		}
		if err != nil {
			return Record{}, fmt.Errorf("run %d: improve error: %w", i, err)
		}
		if err := flowshop.ValidatePermutation(res.Permutation, inst.Jobs); err != nil {
			return Record{}, fmt.Errorf("run %d: %w", i, err)
		}

		makespans = append(makespans, res.Makespan)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	msStats := CalcFloatStats(makespans)
	tStats := CalcFloatStats(timesMs)

	return Record{
		Algo:     algo.Name,
		Jobs:     c.Jobs,
		Machines: c.Machines,
		Runs:     r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		MakespanBest: msStats.Best,
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,
	}, nil
}

func WriteCSV(path string, records []Record) error {
	if dir := dirOf(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"algo", "jobs", "machines", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"makespan_best", "makespan_mean", "makespan_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Algo,
			itoa(r.Jobs),
			itoa(r.Machines),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.MakespanBest),
			ftoa(r.MakespanMean),
			ftoa(r.MakespanStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
