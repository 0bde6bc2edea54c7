package lake

import "math"

// Simulate advances the in-lake phosphorus concentration over the horizon for
// one sampled inflow trajectory. The recurrence is a pure numeric fold:
//
//	X[0] = 0
//	X[t] = (1-b)·X[t-1] + X[t-1]^q/(1+X[t-1]^q) + decision[t-1] + inflow[t-1]
//
// Callers validate the policy first; policy and inflows must have equal
// length. The state stays non-negative by construction for realistic (b, q),
// so no clamping is applied.
func Simulate(policy Policy, inflows []float64, b, q float64) []float64 {
	if len(policy) == 0 {
		return nil
	}
	x := make([]float64, len(policy))
	x[0] = 0
	for t := 1; t < len(x); t++ {
		prev := x[t-1]
		recycled := math.Pow(prev, q)
		x[t] = (1-b)*prev + recycled/(1+recycled) + policy[t-1] + inflows[t-1]
	}
	return x
}
