package lake

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Objectives is the three-way outcome scoring one policy.
type Objectives struct {
	MaxConcentration float64 // peak average phosphorus concentration (minimize)
	Utility          float64 // discounted economic utility (maximize)
	Reliability      float64 // fraction of state-years below Pcrit (maximize)
}

// values exposes the triple positionally, in objective-index order.
func (o Objectives) values() [3]float64 {
	return [3]float64{o.MaxConcentration, o.Utility, o.Reliability}
}

// Evaluate runs the Monte Carlo evaluation of one policy: Samples independent
// inflow trajectories are simulated, the per-year concentrations are averaged
// across trials, and the triple of objectives is reduced from the result.
//
// All random draws come from rng, in a fixed order independent of how trials
// are scheduled across workers, so a seeded rng makes the result reproducible.
// Trial simulation itself fans out across GOMAXPROCS workers; the partial
// per-year sums combine by addition, which is order-independent.
func Evaluate(cfg *ModelConfig, policy Policy, rng *rand.Rand) (Objectives, error) {
	if err := policy.Validate(cfg); err != nil {
		return Objectives{}, err
	}
	if cfg.Samples <= 0 {
		return Objectives{}, fmt.Errorf("sample count must be positive, got %d", cfg.Samples)
	}
	pcrit, err := cfg.Pcrit()
	if err != nil {
		return Objectives{}, fmt.Errorf("critical threshold: %w", err)
	}
	sampler, err := NewLogNormalSampler(cfg.Mean, cfg.Stdev)
	if err != nil {
		return Objectives{}, err
	}

	// Draw every trajectory up front so the rng consumption order is fixed
	// by the seed, not by worker scheduling.
	inflows := make([][]float64, cfg.Samples)
	for i := range inflows {
		traj := make([]float64, cfg.Steps)
		for t := range traj {
			traj[t] = sampler.Sample(rng)
		}
		inflows[i] = traj
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > cfg.Samples {
		workers = cfg.Samples
	}
	sums := make([][]float64, workers)
	below := make([]int, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			sum := make([]float64, cfg.Steps)
			for i := w; i < cfg.Samples; i += workers {
				traj := Simulate(policy, inflows[i], cfg.B, cfg.Q)
				floats.Add(sum, traj)
				for _, x := range traj {
					if x < pcrit {
						below[w]++
					}
				}
			}
			sums[w] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Objectives{}, err
	}

	avg := make([]float64, cfg.Steps)
	belowTotal := 0
	for w := 0; w < workers; w++ {
		floats.Add(avg, sums[w])
		belowTotal += below[w]
	}
	floats.Scale(1/float64(cfg.Samples), avg)

	// Utility depends only on the policy, not on the Monte Carlo draws.
	utility := 0.0
	discount := 1.0
	for _, decision := range policy {
		utility += cfg.Alpha * decision * discount
		discount *= cfg.Delta
	}

	return Objectives{
		MaxConcentration: floats.Max(avg),
		Utility:          utility,
		Reliability:      float64(belowTotal) / float64(cfg.Samples*cfg.Steps),
	}, nil
}
