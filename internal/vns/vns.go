// Package vns реализует поиск с переменными окрестностями для flow-shop
// задачи: чередование локального поиска 2-opt и insert с возмущением
// текущего лучшего решения при стагнации.
package vns

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"flowsolve/internal/flowshop"
	"flowsolve/internal/ls"
	"flowsolve/internal/opt"
)

// Solver — реализация метаэвристики VNS.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый VNS-солвер с валидацией конфигурации, с
// использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// Improve — реализация улучшающего алгоритма. Каждый внешний цикл доводит
// текущее решение до локального оптимума 2-opt, затем insert; улучшение
// лучшего решения перезапускает цикл, стагнация ведёт к возмущению.
// Возвращается лучшее наблюдавшееся решение, регресс невозможен.
func (s *Solver) Improve(ctx context.Context, inst *flowshop.Instance, seed []int) (opt.Result, error) {
	start := time.Now()

	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	if err := flowshop.ValidatePermutation(seed, inst.Jobs); err != nil {
		return opt.Result{}, fmt.Errorf("vns seed: %w", err)
	}

	eval, err := flowshop.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}

	// Этапы локального поиска с общей политикой принятия
	twoOpt, err := ls.New(ls.Config{
		Neighborhood:  ls.NeighborhoodSwap,
		MaxIterations: s.Cfg.LocalSearchIterations,
		Policy:        s.Cfg.Policy,
	})
	if err != nil {
		return opt.Result{}, err
	}
	insert, err := ls.New(ls.Config{
		Neighborhood:  ls.NeighborhoodInsert,
		MaxIterations: s.Cfg.LocalSearchIterations,
		Policy:        s.Cfg.Policy,
	})
	if err != nil {
		return opt.Result{}, err
	}

	n := inst.Jobs
	best := make([]int, n)
	copy(best, seed)
	bestMs, err := eval.Makespan(best)
	if err != nil {
		return opt.Result{}, err
	}

	curr := make([]int, n)
	copy(curr, best)

	evals := 1
	perturbations := 0
	cycles := 0

	for cycles = 0; cycles < s.Cfg.MaxIterations; cycles++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			res := s.result(best, bestMs, evals, cycles, perturbations, start)
			res.Meta["stopped"] = "context"
			return res, err
		}

		// Эксплуатация: 2-opt до локального оптимума
		res2, err := twoOpt.Improve(ctx, inst, curr)
		evals += res2.Evaluations
		if err != nil {
			if ctx.Err() != nil {
				res := s.result(best, bestMs, evals, cycles, perturbations, start)
				res.Meta["stopped"] = "context"
				return res, err
			}
			return opt.Result{}, err
		}

		// Эксплуатация: insert до локального оптимума
		resIns, err := insert.Improve(ctx, inst, res2.Permutation)
		evals += resIns.Evaluations
		if err != nil {
			if ctx.Err() != nil {
				res := s.result(best, bestMs, evals, cycles, perturbations, start)
				res.Meta["stopped"] = "context"
				return res, err
			}
			return opt.Result{}, err
		}

		if resIns.Makespan < bestMs {
			// Улучшение: фиксируем и перезапускаем цикл с нового лучшего
			bestMs = resIns.Makespan
			copy(best, resIns.Permutation)
			copy(curr, best)
			continue
		}

		// Стагнация: возмущение лучшего решения случайными обменами
		copy(curr, best)
		perturb(curr, s.Cfg.PerturbationSize, s.Rng)
		perturbations++
	}

	return s.result(best, bestMs, evals, cycles, perturbations, start), nil
}

func (s *Solver) result(best []int, bestMs float64, evals, cycles, perturbations int, start time.Time) opt.Result {
	permCopy := make([]int, len(best))
	copy(permCopy, best)
	return opt.Result{
		Permutation: permCopy,
		Makespan:    bestMs,
		Evaluations: evals,
		Iterations:  cycles,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"perturbations":     perturbations,
			"perturbation_size": s.Cfg.PerturbationSize,
		},
	}
}

// perturb применяет k случайных обменов двух различных позиций.
func perturb(p []int, k int, rng *rand.Rand) {
	if len(p) < 2 {
		return
	}
	for s := 0; s < k; s++ {
		i := rng.Intn(len(p))
		j := rng.Intn(len(p) - 1)
		if j >= i {
			j++
		}
		p[i], p[j] = p[j], p[i]
	}
}
