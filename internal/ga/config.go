package ga

import (
	"fmt"

	"flowsolve/internal/opt"
)

type Config struct {
	Population     int
	Generations    int
	Elite          int
	TournamentSize int
	CrossoverRate  float64
	MutationRate   float64
}

func (c Config) Validate() error {
	if c.Population <= 1 {
		return fmt.Errorf(
			"%w: размер популяции должен быть > 1 (получено %d)",
			opt.ErrConfiguration, c.Population,
		)
	}
	if c.Generations <= 0 {
		return fmt.Errorf(
			"%w: количество поколений должно быть > 0 (получено %d)",
			opt.ErrConfiguration, c.Generations,
		)
	}
	if c.Elite < 0 || c.Elite >= c.Population {
		return fmt.Errorf(
			"%w: число элитных особей должно быть в диапазоне [0, population) (получено %d)",
			opt.ErrConfiguration, c.Elite,
		)
	}
	if c.TournamentSize <= 0 {
		return fmt.Errorf(
			"%w: размер турнира должен быть > 0 (получено %d)",
			opt.ErrConfiguration, c.TournamentSize,
		)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return fmt.Errorf(
			"%w: вероятность кроссовера должна быть в диапазоне [0,1] (получено %f)",
			opt.ErrConfiguration, c.CrossoverRate,
		)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf(
			"%w: вероятность мутации должна быть в диапазоне [0,1] (получено %f)",
			opt.ErrConfiguration, c.MutationRate,
		)
	}
	return nil
}

// DefaultConfig — параметры для запуска в роли улучшающего этапа,
// когда начальная популяция содержит решение конструктивной эвристики.
func DefaultConfig() Config {
	return Config{
		Population:     50,
		Generations:    50,
		Elite:          5,
		TournamentSize: 3,
		CrossoverRate:  0.80,
		MutationRate:   0.10,
	}
}

// StandaloneConfig — параметры для самостоятельного запуска со случайной
// начальной популяцией: поколений вдвое больше.
func StandaloneConfig() Config {
	cfg := DefaultConfig()
	cfg.Generations = 100
	return cfg
}
