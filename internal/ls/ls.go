package ls

import (
	"context"
	"fmt"
	"time"

	"flowsolve/internal/flowshop"
	"flowsolve/internal/opt"
)

// Solver — детерминированный локальный поиск по окрестности swap (2-opt)
// или insert. Возвращаемое решение никогда не хуже исходного.
type Solver struct {
	Cfg Config
}

// New возвращает новый солвер локального поиска с валидацией конфигурации.
// Используется в фабриках.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{Cfg: cfg}, nil
}

// Improve — реализация улучшающего алгоритма: повторяет проходы по
// окрестности до локального оптимума или исчерпания лимита итераций.
func (s *Solver) Improve(ctx context.Context, inst *flowshop.Instance, seed []int) (opt.Result, error) {
	start := time.Now()

	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := flowshop.ValidatePermutation(seed, inst.Jobs); err != nil {
		return opt.Result{}, fmt.Errorf("local search seed: %w", err)
	}

	// Оценщик значения целевой функции для flow-shop задачи
	eval, err := flowshop.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}

	n := inst.Jobs
	curr := make([]int, n)
	copy(curr, seed)
	currMs, err := eval.Makespan(curr)
	if err != nil {
		return opt.Result{}, err
	}

	evals := 1
	iters := 0
	scratch := make([]int, n)

	for iters < s.Cfg.MaxIterations && n >= 2 {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			res := s.result(curr, currMs, evals, iters, start)
			res.Meta["stopped"] = "context"
			return res, err
		}

		var improved bool
		switch s.Cfg.Neighborhood {
		case NeighborhoodInsert:
			improved = s.scanInsert(eval, curr, &currMs, scratch, &evals)
		default:
			improved = s.scanSwap(eval, curr, &currMs, &evals)
		}
		if !improved {
			break
		}
		iters++
	}

	return s.result(curr, currMs, evals, iters, start), nil
}

func (s *Solver) result(perm []int, ms float64, evals, iters int, start time.Time) opt.Result {
	permCopy := make([]int, len(perm))
	copy(permCopy, perm)
	return opt.Result{
		Permutation: permCopy,
		Makespan:    ms,
		Evaluations: evals,
		Iterations:  iters,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"neighborhood": string(s.Cfg.Neighborhood),
			"policy":       string(s.Cfg.Policy),
		},
	}
}

// scanSwap выполняет один проход по всем парам позиций (i, j), i < j.
// Строгое сравнение при отборе лучшего хода гарантирует детерминированный
// тай-брейк: при равенстве выигрывает пара с наименьшими индексами.
func (s *Solver) scanSwap(eval *flowshop.Evaluator, curr []int, currMs *float64, evals *int) bool {
	n := len(curr)
	bestI, bestJ := -1, -1
	bestMs := *currMs

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			curr[i], curr[j] = curr[j], curr[i]
			ms := eval.MustMakespan(curr)
			curr[i], curr[j] = curr[j], curr[i]
			*evals++

			if ms < bestMs {
				bestI, bestJ, bestMs = i, j, ms
				if s.Cfg.Policy == PolicyFirst {
					curr[bestI], curr[bestJ] = curr[bestJ], curr[bestI]
					*currMs = bestMs
					return true
				}
			}
		}
	}

	if bestI < 0 {
		return false
	}
	curr[bestI], curr[bestJ] = curr[bestJ], curr[bestI]
	*currMs = bestMs
	return true
}

// scanInsert выполняет один проход по всем переносам работы из позиции i
// в позицию j != i.
func (s *Solver) scanInsert(eval *flowshop.Evaluator, curr []int, currMs *float64, scratch []int, evals *int) bool {
	n := len(curr)
	bestI, bestJ := -1, -1
	bestMs := *currMs

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			copy(scratch, curr)
			moveInsert(scratch, i, j)
			ms := eval.MustMakespan(scratch)
			*evals++

			if ms < bestMs {
				bestI, bestJ, bestMs = i, j, ms
				if s.Cfg.Policy == PolicyFirst {
					moveInsert(curr, bestI, bestJ)
					*currMs = bestMs
					return true
				}
			}
		}
	}

	if bestI < 0 {
		return false
	}
	moveInsert(curr, bestI, bestJ)
	*currMs = bestMs
	return true
}

// moveInsert извлекает элемент из позиции i и вставляет его в позицию j,
// сдвигая промежуточные элементы.
func moveInsert(p []int, i, j int) {
	val := p[i]
	if i < j {
		copy(p[i:j], p[i+1:j+1])
		p[j] = val
	} else {
		copy(p[j+1:i+1], p[j:i])
		p[j] = val
	}
}
