package lake

import (
	"fmt"
	"math/rand"
)

// Policy is an ordered sequence of annual pollution-discharge decisions.
// Policies are immutable once evaluated.
type Policy []float64

// InvalidPolicyError reports a policy the simulator refuses to run: wrong
// length for the configured horizon, or a decision outside the configured
// bounds. Decisions are rejected, never clamped.
type InvalidPolicyError struct {
	Reason string
}

func (e *InvalidPolicyError) Error() string {
	return "invalid policy: " + e.Reason
}

// Validate checks the policy against the model's horizon and decision bounds.
func (p Policy) Validate(cfg *ModelConfig) error {
	if len(p) != cfg.Steps {
		return &InvalidPolicyError{
			Reason: fmt.Sprintf("length %d does not match horizon %d", len(p), cfg.Steps),
		}
	}
	for i, v := range p {
		if !cfg.DecisionBounds.Contains(v) {
			return &InvalidPolicyError{
				Reason: fmt.Sprintf("decision[%d]=%g outside bounds [%g, %g]",
					i, v, cfg.DecisionBounds.Lo, cfg.DecisionBounds.Hi),
			}
		}
	}
	return nil
}

// RandomPolicy draws a policy uniformly within the configured decision bounds.
func RandomPolicy(cfg *ModelConfig, rng *rand.Rand) Policy {
	p := make(Policy, cfg.Steps)
	span := cfg.DecisionBounds.Hi - cfg.DecisionBounds.Lo
	for i := range p {
		p[i] = cfg.DecisionBounds.Lo + span*rng.Float64()
	}
	return p
}
