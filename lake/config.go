package lake

import (
	"fmt"
	"math"
	"sync"
)

// Direction states whether an objective is minimized or maximized.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Objective indices into a Directions triple.
const (
	ObjMaxConcentration = 0
	ObjUtility          = 1
	ObjReliability      = 2
)

// Directions holds the optimization direction of each objective.
type Directions [3]Direction

// DefaultDirections is the lake model's objective orientation: peak
// concentration is minimized, utility and reliability are maximized.
var DefaultDirections = Directions{Minimize, Maximize, Maximize}

// Bounds is an inclusive real interval.
type Bounds struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// Contains reports whether v lies inside the interval.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lo && v <= b.Hi
}

// ModelConfig holds the fixed parameters of one analysis run. It is supplied
// once and never mutated during evaluation; the critical threshold is the only
// derived field and is computed lazily exactly once.
type ModelConfig struct {
	B       float64 // phosphorus decay (outflow) rate
	Q       float64 // recycling exponent
	Mean    float64 // mean of the natural inflow process (linear scale)
	Stdev   float64 // std dev of the natural inflow process (linear scale)
	Alpha   float64 // economic benefit per unit discharge
	Delta   float64 // annual utility discount factor
	Samples int     // Monte Carlo trials per policy evaluation
	Steps   int     // planning horizon in years (= policy length)

	// DecisionBounds constrains every annual discharge decision.
	DecisionBounds Bounds

	// Directions orients the three objectives for dominance comparisons.
	Directions Directions

	// Uncertainties holds ranges for deep-uncertainty parameter sweeps.
	// The base-case analysis path does not draw from them.
	Uncertainties map[string]Bounds

	pcritOnce sync.Once
	pcrit     float64
	pcritErr  error
}

// DefaultModelConfig returns the standard shallow-lake configuration.
func DefaultModelConfig() *ModelConfig {
	return &ModelConfig{
		B:              0.42,
		Q:              2.0,
		Mean:           0.02,
		Stdev:          0.001,
		Alpha:          0.4,
		Delta:          0.98,
		Samples:        100,
		Steps:          100,
		DecisionBounds: Bounds{Lo: 0.0, Hi: 0.1},
		Directions:     DefaultDirections,
	}
}

// Validate checks the configuration for values the evaluator cannot work with.
func (c *ModelConfig) Validate() error {
	if c.B <= 0 {
		return fmt.Errorf("decay rate b must be positive, got %f", c.B)
	}
	if c.Q <= 0 {
		return fmt.Errorf("recycling exponent q must be positive, got %f", c.Q)
	}
	if c.Mean <= 0 {
		return fmt.Errorf("inflow mean must be positive, got %f", c.Mean)
	}
	if c.Stdev < 0 {
		return fmt.Errorf("inflow stdev must be non-negative, got %f", c.Stdev)
	}
	if c.Delta <= 0 || c.Delta > 1 {
		return fmt.Errorf("discount factor delta must be in (0, 1], got %f", c.Delta)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("sample count must be positive, got %d", c.Samples)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", c.Steps)
	}
	if c.DecisionBounds.Lo > c.DecisionBounds.Hi {
		return fmt.Errorf("decision bounds inverted: lo=%f hi=%f", c.DecisionBounds.Lo, c.DecisionBounds.Hi)
	}
	return nil
}

// RootFindingError reports that the critical-threshold bracket contains no
// sign change for the configured (b, q) pair. The evaluator cannot compute
// reliability for such a configuration.
type RootFindingError struct {
	B, Q   float64
	Lo, Hi float64
}

func (e *RootFindingError) Error() string {
	return fmt.Sprintf("no sign change in (%g, %g) for critical threshold with b=%g q=%g",
		e.Lo, e.Hi, e.B, e.Q)
}

// Bracket searched for the critical threshold root.
const (
	pcritBracketLo = 0.01
	pcritBracketHi = 1.5
)

// Pcrit returns the critical phosphorus threshold: the positive root of
// x^q/(1+x^q) - b·x inside the bracket. Computed once per configuration and
// cached; a RootFindingError is cached the same way.
func (c *ModelConfig) Pcrit() (float64, error) {
	c.pcritOnce.Do(func() {
		c.pcrit, c.pcritErr = findCriticalThreshold(c.B, c.Q)
	})
	return c.pcrit, c.pcritErr
}

// findCriticalThreshold locates the root of the recycling/decay balance by
// bisection. The balance function is monotone enough over the bracket for the
// parameter ranges of interest that bisection on one sign change suffices.
func findCriticalThreshold(b, q float64) (float64, error) {
	f := func(x float64) float64 {
		xq := math.Pow(x, q)
		return xq/(1+xq) - b*x
	}
	lo, hi := pcritBracketLo, pcritBracketHi
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, &RootFindingError{B: b, Q: q, Lo: lo, Hi: hi}
	}
	for i := 0; i < 200 && hi-lo > 1e-12; i++ {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
