package lake

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// SearchProvider is the opaque optimizer boundary: given a model
// configuration, an algorithm tag, and a generation budget, it returns the
// records it evaluated. The engine never inspects the provider's internal
// search; any conforming provider is swappable.
type SearchProvider interface {
	Search(cfg *ModelConfig, algorithm string, budget int, rng *rand.Rand) ([]Record, error)
}

// AlgorithmRandom tags the built-in uniform random baseline.
const AlgorithmRandom = "random"

// RandomSearchProvider is the naive baseline provider: it draws budget
// policies uniformly within the decision bounds and evaluates each one.
type RandomSearchProvider struct{}

// Search evaluates budget uniformly sampled policies. Policies and per-policy
// RNG seeds are drawn sequentially from rng, then evaluation fans out across
// workers, so results are reproducible regardless of scheduling. The first
// evaluation failure aborts the whole call; no partial records are returned.
func (RandomSearchProvider) Search(cfg *ModelConfig, algorithm string, budget int, rng *rand.Rand) ([]Record, error) {
	if algorithm != AlgorithmRandom {
		return nil, fmt.Errorf("unknown search algorithm %q", algorithm)
	}
	if budget <= 0 {
		return nil, fmt.Errorf("generation budget must be positive, got %d", budget)
	}

	policies := make([]Policy, budget)
	seeds := make([]int64, budget)
	for i := range policies {
		policies[i] = RandomPolicy(cfg, rng)
		seeds[i] = rng.Int63()
	}

	records := make([]Record, budget)
	var g errgroup.Group
	for i := range policies {
		i := i
		g.Go(func() error {
			obj, err := Evaluate(cfg, policies[i], rand.New(rand.NewSource(seeds[i])))
			if err != nil {
				return fmt.Errorf("evaluating candidate %d: %w", i, err)
			}
			records[i] = Record{Policy: policies[i], Objectives: obj}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
