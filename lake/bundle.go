package lake

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StudyBundle holds a full study configuration, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" — they do not override defaults
// or CLI flags.
type StudyBundle struct {
	Model    ModelBundle    `yaml:"model"`
	Schedule ScheduleBundle `yaml:"schedule"`
}

// ModelBundle holds the lake model parameters.
type ModelBundle struct {
	B           *float64 `yaml:"b"`
	Q           *float64 `yaml:"q"`
	InflowMean  *float64 `yaml:"inflow_mean"`
	InflowStdev *float64 `yaml:"inflow_stdev"`
	Alpha       *float64 `yaml:"alpha"`
	Delta       *float64 `yaml:"delta"`
	Samples     *int     `yaml:"samples"`
	Steps       *int     `yaml:"steps"`
	Bounds      *Bounds  `yaml:"decision_bounds"`
}

// ScheduleBundle holds the round schedule parameters.
type ScheduleBundle struct {
	Baseline *int `yaml:"baseline"`
	BudgetLo *int `yaml:"budget_lo"`
	BudgetHi *int `yaml:"budget_hi"`
	Rounds   *int `yaml:"rounds"`
}

// LoadStudyBundle reads and parses a YAML study configuration file.
func LoadStudyBundle(path string) (*StudyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading study config: %w", err)
	}
	var bundle StudyBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing study config: %w", err)
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Validate rejects values the engine cannot run with. Full range checking
// happens again in ModelConfig.Validate after flags are merged.
func (b *StudyBundle) Validate() error {
	if b.Model.Samples != nil && *b.Model.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", *b.Model.Samples)
	}
	if b.Model.Steps != nil && *b.Model.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", *b.Model.Steps)
	}
	if b.Schedule.Rounds != nil && *b.Schedule.Rounds < 0 {
		return fmt.Errorf("rounds must be non-negative, got %d", *b.Schedule.Rounds)
	}
	if b.Schedule.BudgetLo != nil && b.Schedule.BudgetHi != nil && *b.Schedule.BudgetLo > *b.Schedule.BudgetHi {
		return fmt.Errorf("budget schedule inverted: lo=%d hi=%d", *b.Schedule.BudgetLo, *b.Schedule.BudgetHi)
	}
	return nil
}

// Apply overlays the bundle's set fields onto cfg.
func (b *StudyBundle) Apply(cfg *ModelConfig) {
	if b.Model.B != nil {
		cfg.B = *b.Model.B
	}
	if b.Model.Q != nil {
		cfg.Q = *b.Model.Q
	}
	if b.Model.InflowMean != nil {
		cfg.Mean = *b.Model.InflowMean
	}
	if b.Model.InflowStdev != nil {
		cfg.Stdev = *b.Model.InflowStdev
	}
	if b.Model.Alpha != nil {
		cfg.Alpha = *b.Model.Alpha
	}
	if b.Model.Delta != nil {
		cfg.Delta = *b.Model.Delta
	}
	if b.Model.Samples != nil {
		cfg.Samples = *b.Model.Samples
	}
	if b.Model.Steps != nil {
		cfg.Steps = *b.Model.Steps
	}
	if b.Model.Bounds != nil {
		cfg.DecisionBounds = *b.Model.Bounds
	}
}
