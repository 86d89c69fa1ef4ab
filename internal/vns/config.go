package vns

import (
	"fmt"

	"flowsolve/internal/ls"
	"flowsolve/internal/opt"
)

type Config struct {
	// MaxIterations ограничивает количество внешних циклов
	// (2-opt → insert → возмущение).
	MaxIterations int

	// PerturbationSize — количество случайных обменов при возмущении.
	PerturbationSize int

	// LocalSearchIterations — лимит итераций каждого этапа локального поиска.
	LocalSearchIterations int

	// Policy — правило принятия хода локального поиска.
	Policy ls.Policy
}

func DefaultConfig() Config {
	return Config{
		MaxIterations:         100,
		PerturbationSize:      2,
		LocalSearchIterations: 1000,
		Policy:                ls.PolicyBest,
	}
}

func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf(
			"%w: MaxIterations должно быть > 0 (получено %d)",
			opt.ErrConfiguration, c.MaxIterations,
		)
	}
	if c.PerturbationSize <= 0 {
		return fmt.Errorf(
			"%w: PerturbationSize должно быть > 0 (получено %d)",
			opt.ErrConfiguration, c.PerturbationSize,
		)
	}
	if c.LocalSearchIterations <= 0 {
		return fmt.Errorf(
			"%w: LocalSearchIterations должно быть > 0 (получено %d)",
			opt.ErrConfiguration, c.LocalSearchIterations,
		)
	}
	return nil
}
