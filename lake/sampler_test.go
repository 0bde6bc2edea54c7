package lake

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestLogNormalSampler_MatchesTargetMoments(t *testing.T) {
	// GIVEN a sampler targeting the standard inflow process
	s, err := NewLogNormalSampler(0.02, 0.001)
	require.NoError(t, err)

	// WHEN many inflows are drawn
	rng := rand.New(rand.NewSource(7))
	draws := make([]float64, 50000)
	for i := range draws {
		draws[i] = s.Sample(rng)
	}

	// THEN the linear-scale sample moments reproduce the configured ones
	assert.InDelta(t, 0.02, stat.Mean(draws, nil), 1e-4)
	assert.InDelta(t, 0.001, math.Sqrt(stat.Variance(draws, nil)), 1e-4)
}

func TestLogNormalSampler_AlwaysPositive(t *testing.T) {
	s, err := NewLogNormalSampler(0.02, 0.01)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		assert.Greater(t, s.Sample(rng), 0.0)
	}
}

func TestLogNormalSampler_ZeroStdevIsConstant(t *testing.T) {
	s, err := NewLogNormalSampler(0.02, 0)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		assert.InDelta(t, 0.02, s.Sample(rng), 1e-12)
	}
}

func TestNewLogNormalSampler_RejectsBadParams(t *testing.T) {
	_, err := NewLogNormalSampler(0, 0.001)
	assert.Error(t, err)
	_, err = NewLogNormalSampler(-0.02, 0.001)
	assert.Error(t, err)
	_, err = NewLogNormalSampler(0.02, -0.001)
	assert.Error(t, err)
}

func TestConstantSampler(t *testing.T) {
	s := &ConstantSampler{Value: 0.03}
	assert.Equal(t, 0.03, s.Sample(nil))
}
