package lake

import (
	"fmt"
	"math"
	"math/rand"
)

// InflowSampler generates one annual natural phosphorus inflow.
type InflowSampler interface {
	// Sample returns a non-negative inflow value.
	Sample(rng *rand.Rand) float64
}

// LogNormalSampler produces log-normally distributed inflows whose linear-scale
// mean and standard deviation match the configured natural inflow process.
// The underlying normal is parameterized as
//
//	mu    = log(mean² / √(stdev² + mean²))
//	sigma = √(log(1 + stdev²/mean²))
type LogNormalSampler struct {
	mu, sigma float64
}

// NewLogNormalSampler derives the log-scale parameters from the target
// linear-scale mean and standard deviation. A zero stdev degenerates to a
// constant stream at mean.
func NewLogNormalSampler(mean, stdev float64) (*LogNormalSampler, error) {
	if mean <= 0 {
		return nil, fmt.Errorf("inflow mean must be positive, got %f", mean)
	}
	if stdev < 0 {
		return nil, fmt.Errorf("inflow stdev must be non-negative, got %f", stdev)
	}
	variance := stdev * stdev
	return &LogNormalSampler{
		mu:    math.Log(mean * mean / math.Sqrt(variance+mean*mean)),
		sigma: math.Sqrt(math.Log(1 + variance/(mean*mean))),
	}, nil
}

func (s *LogNormalSampler) Sample(rng *rand.Rand) float64 {
	return math.Exp(s.mu + s.sigma*rng.NormFloat64())
}

// ConstantSampler always returns the same fixed inflow. Used for tests and
// for deterministic no-noise scenarios.
type ConstantSampler struct {
	Value float64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.Value
}
