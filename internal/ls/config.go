package ls

import (
	"fmt"

	"flowsolve/internal/opt"
)

// Neighborhood определяет тип окрестности.
type Neighborhood string

const (
	// NeighborhoodSwap — обмен двух позиций (2-opt).
	NeighborhoodSwap Neighborhood = "swap"
	// NeighborhoodInsert — перенос работы в другую позицию.
	NeighborhoodInsert Neighborhood = "insert"
)

// Policy определяет правило принятия хода внутри одного прохода окрестности.
type Policy string

const (
	// PolicyBest — применяется лучший улучшающий ход полного прохода.
	PolicyBest Policy = "best"
	// PolicyFirst — применяется первый найденный улучшающий ход.
	PolicyFirst Policy = "first"
)

type Config struct {
	Neighborhood  Neighborhood
	MaxIterations int
	Policy        Policy
}

func DefaultConfig(nb Neighborhood) Config {
	return Config{
		Neighborhood:  nb,
		MaxIterations: 1000,
		Policy:        PolicyBest,
	}
}

func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf(
			"%w: MaxIterations должно быть > 0 (получено %d)",
			opt.ErrConfiguration, c.MaxIterations,
		)
	}
	switch c.Neighborhood {
	case NeighborhoodSwap, NeighborhoodInsert:
		// ok
	default:
		return fmt.Errorf(
			"%w: неизвестный тип окрестности %q",
			opt.ErrConfiguration, c.Neighborhood,
		)
	}
	switch c.Policy {
	case PolicyBest, PolicyFirst:
		// ok
	default:
		return fmt.Errorf(
			"%w: неизвестная политика принятия %q",
			opt.ErrConfiguration, c.Policy,
		)
	}
	return nil
}
