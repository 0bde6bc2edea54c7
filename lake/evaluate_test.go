package lake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ZeroDischargeScenario(t *testing.T) {
	// GIVEN the standard configuration and an all-zero discharge policy
	cfg := DefaultModelConfig()
	policy := make(Policy, cfg.Steps)

	// WHEN the policy is evaluated
	obj, err := Evaluate(cfg, policy, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	// THEN utility is exactly zero and peak concentration comes from natural
	// inflows and recycling alone
	assert.Equal(t, 0.0, obj.Utility)
	assert.Greater(t, obj.MaxConcentration, 0.0)
	assert.GreaterOrEqual(t, obj.Reliability, 0.0)
	assert.LessOrEqual(t, obj.Reliability, 1.0)
}

func TestEvaluate_UtilityClosedForm(t *testing.T) {
	// Utility is a deterministic discounted sum over the policy: for a
	// constant discharge c it equals alpha·c·(1-delta^n)/(1-delta).
	cfg := DefaultModelConfig()
	cfg.Samples = 5
	policy := make(Policy, cfg.Steps)
	for i := range policy {
		policy[i] = 0.1
	}

	obj, err := Evaluate(cfg, policy, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	want := 0.4 * 0.1 * (1 - pow(cfg.Delta, cfg.Steps)) / (1 - cfg.Delta)
	assert.InDelta(t, want, obj.Utility, 1e-9)
}

func pow(base float64, n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= base
	}
	return v
}

func TestEvaluate_ReliabilityBound(t *testing.T) {
	cfg := DefaultModelConfig()
	cfg.Samples = 20
	rng := rand.New(rand.NewSource(9))

	for trial := 0; trial < 10; trial++ {
		policy := RandomPolicy(cfg, rng)
		obj, err := Evaluate(cfg, policy, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, obj.Reliability, 0.0)
		assert.LessOrEqual(t, obj.Reliability, 1.0)
		assert.GreaterOrEqual(t, obj.MaxConcentration, 0.0)
	}
}

func TestEvaluate_DeterministicUnderSeed(t *testing.T) {
	// GIVEN the same seed and policy
	cfg := DefaultModelConfig()
	cfg.Samples = 50
	policy := RandomPolicy(cfg, rand.New(rand.NewSource(3)))

	// WHEN evaluated twice
	obj1, err := Evaluate(cfg, policy, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	obj2, err := Evaluate(cfg, policy, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	// THEN the objective triples are bit-for-bit identical
	assert.Equal(t, obj1, obj2)
}

func TestEvaluate_RejectsInvalidPolicy(t *testing.T) {
	cfg := DefaultModelConfig()
	rng := rand.New(rand.NewSource(1))

	// Wrong length
	_, err := Evaluate(cfg, make(Policy, cfg.Steps-1), rng)
	var invalid *InvalidPolicyError
	require.ErrorAs(t, err, &invalid)

	// Out of bounds, not clamped
	policy := make(Policy, cfg.Steps)
	policy[17] = 0.5
	_, err = Evaluate(cfg, policy, rng)
	require.ErrorAs(t, err, &invalid)
}

func TestEvaluate_RejectsNonPositiveSampleCount(t *testing.T) {
	cfg := DefaultModelConfig()
	cfg.Samples = 0
	_, err := Evaluate(cfg, make(Policy, cfg.Steps), rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestEvaluate_SurfacesRootFindingError(t *testing.T) {
	// GIVEN a configuration whose critical threshold does not exist
	cfg := DefaultModelConfig()
	cfg.B = 0.8

	// WHEN a policy is evaluated
	_, err := Evaluate(cfg, make(Policy, cfg.Steps), rand.New(rand.NewSource(1)))

	// THEN the root-finding failure propagates instead of a defaulted Pcrit
	var rootErr *RootFindingError
	assert.True(t, errors.As(err, &rootErr))
}
