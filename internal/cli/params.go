package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"flowsolve/internal/ga"
	"flowsolve/internal/ls"
	"flowsolve/internal/vns"
)

// Params is the solver parameter surface exposed through the optional TOML
// file (--params). Missing keys keep their defaults.
type Params struct {
	LocalSearch LocalSearchParams `toml:"local_search"`
	VNS         VNSParams         `toml:"vns"`
	GA          GAParams          `toml:"ga"`
}

type LocalSearchParams struct {
	MaxIterations int    `toml:"max_iterations"`
	Policy        string `toml:"policy"`
}

type VNSParams struct {
	MaxIterations    int `toml:"max_iterations"`
	PerturbationSize int `toml:"perturbation_size"`
}

type GAParams struct {
	Population     int     `toml:"population"`
	Generations    int     `toml:"generations"`
	Elite          int     `toml:"elite"`
	TournamentSize int     `toml:"tournament_size"`
	CrossoverRate  float64 `toml:"crossover_rate"`
	MutationRate   float64 `toml:"mutation_rate"`
}

func defaultParams() Params {
	lsCfg := ls.DefaultConfig(ls.NeighborhoodSwap)
	vnsCfg := vns.DefaultConfig()
	gaCfg := ga.DefaultConfig()
	return Params{
		LocalSearch: LocalSearchParams{
			MaxIterations: lsCfg.MaxIterations,
			Policy:        string(lsCfg.Policy),
		},
		VNS: VNSParams{
			MaxIterations:    vnsCfg.MaxIterations,
			PerturbationSize: vnsCfg.PerturbationSize,
		},
		GA: GAParams{
			Population:     gaCfg.Population,
			Generations:    gaCfg.Generations,
			Elite:          gaCfg.Elite,
			TournamentSize: gaCfg.TournamentSize,
			CrossoverRate:  gaCfg.CrossoverRate,
			MutationRate:   gaCfg.MutationRate,
		},
	}
}

// loadParams decodes path over the defaults; an empty path returns the
// defaults untouched.
func loadParams(path string) (Params, error) {
	p := defaultParams()
	if path == "" {
		return p, nil
	}
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Params{}, fmt.Errorf("params %s: %w", path, err)
	}
	return p, nil
}

func (p Params) lsConfig(nb ls.Neighborhood) ls.Config {
	return ls.Config{
		Neighborhood:  nb,
		MaxIterations: p.LocalSearch.MaxIterations,
		Policy:        ls.Policy(p.LocalSearch.Policy),
	}
}

func (p Params) vnsConfig() vns.Config {
	return vns.Config{
		MaxIterations:         p.VNS.MaxIterations,
		PerturbationSize:      p.VNS.PerturbationSize,
		LocalSearchIterations: p.LocalSearch.MaxIterations,
		Policy:                ls.Policy(p.LocalSearch.Policy),
	}
}

func (p Params) gaConfig(standalone bool) ga.Config {
	cfg := ga.Config{
		Population:     p.GA.Population,
		Generations:    p.GA.Generations,
		Elite:          p.GA.Elite,
		TournamentSize: p.GA.TournamentSize,
		CrossoverRate:  p.GA.CrossoverRate,
		MutationRate:   p.GA.MutationRate,
	}
	if standalone && cfg.Generations == ga.DefaultConfig().Generations {
		cfg.Generations = ga.StandaloneConfig().Generations
	}
	return cfg
}
