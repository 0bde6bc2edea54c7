package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lake-sim/lake-sim/lake"
)

var (
	// CLI flags for the lake model
	seed        int64   // Seed for all random draws (inflows, policy sampling)
	logLevel    string  // Log verbosity level
	decayRate   float64 // Phosphorus decay (outflow) rate b
	recycling   float64 // Recycling exponent q
	inflowMean  float64 // Mean of the natural inflow process
	inflowStdev float64 // Std dev of the natural inflow process
	alpha       float64 // Economic benefit per unit discharge
	delta       float64 // Annual utility discount factor
	samples     int     // Monte Carlo trials per policy evaluation
	steps       int     // Planning horizon in years
	boundLo     float64 // Lower discharge decision bound
	boundHi     float64 // Upper discharge decision bound

	// CLI flags for the round schedule
	baseline   int    // Random baseline policies evaluated before round 0
	budgetLo   int    // First generation budget in the schedule
	budgetHi   int    // Last generation budget in the schedule
	rounds     int    // Number of optimizer rounds
	configPath string // Optional YAML study config, overrides flags
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lake-sim",
	Short: "Monte Carlo policy analysis for the shallow-lake phosphorus model",
}

// runCmd executes a full study using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the lake policy study",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := &lake.ModelConfig{
			B:              decayRate,
			Q:              recycling,
			Mean:           inflowMean,
			Stdev:          inflowStdev,
			Alpha:          alpha,
			Delta:          delta,
			Samples:        samples,
			Steps:          steps,
			DecisionBounds: lake.Bounds{Lo: boundLo, Hi: boundHi},
			Directions:     lake.DefaultDirections,
		}
		if configPath != "" {
			bundle, err := lake.LoadStudyBundle(configPath)
			if err != nil {
				logrus.Fatalf("unable to read study config; %v", err)
			}
			bundle.Apply(cfg)
			if bundle.Schedule.Baseline != nil {
				baseline = *bundle.Schedule.Baseline
			}
			if bundle.Schedule.BudgetLo != nil {
				budgetLo = *bundle.Schedule.BudgetLo
			}
			if bundle.Schedule.BudgetHi != nil {
				budgetHi = *bundle.Schedule.BudgetHi
			}
			if bundle.Schedule.Rounds != nil {
				rounds = *bundle.Schedule.Rounds
			}
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("invalid model configuration: %v", err)
		}

		pcrit, err := cfg.Pcrit()
		if err != nil {
			logrus.Fatalf("critical threshold: %v", err)
		}
		logrus.Infof("Starting study with b=%g, q=%g, Pcrit=%.4f, %d samples, horizon %d years",
			cfg.B, cfg.Q, pcrit, cfg.Samples, cfg.Steps)

		study := lake.NewStudy(cfg, lake.RandomSearchProvider{}, lake.AlgorithmRandom,
			lake.NewStudyKey(seed), frontReporter{})
		if err := study.SeedBaseline(baseline); err != nil {
			logrus.Fatalf("baseline failed: %v", err)
		}
		if err := study.Run(lake.BudgetSchedule(budgetLo, budgetHi, rounds)); err != nil {
			logrus.Fatalf("study failed: %v", err)
		}

		part := study.Partition()
		logrus.Infof("Study complete: %d policies evaluated, %d on the Pareto front",
			study.Archive().Len(), len(part.Dominant))
	},
}

// frontReporter logs the partition after every round. It stands where the
// external rendering stage would consume the column-stacked objective values.
type frontReporter struct{}

func (frontReporter) OnRound(round, budget int, part lake.Partition, archive lake.PointSet) {
	logrus.Infof("round %d: budget %d, archive %d, front %d, dominated %d",
		round, budget, len(archive), len(part.Dominant), len(part.Dominated))
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Lake model configs
	runCmd.Flags().Float64Var(&decayRate, "b", 0.42, "Phosphorus decay (outflow) rate")
	runCmd.Flags().Float64Var(&recycling, "q", 2.0, "Recycling exponent")
	runCmd.Flags().Float64Var(&inflowMean, "inflow-mean", 0.02, "Mean of the natural inflow process")
	runCmd.Flags().Float64Var(&inflowStdev, "inflow-stdev", 0.001, "Std dev of the natural inflow process")
	runCmd.Flags().Float64Var(&alpha, "alpha", 0.4, "Economic benefit per unit discharge")
	runCmd.Flags().Float64Var(&delta, "delta", 0.98, "Annual utility discount factor")
	runCmd.Flags().IntVar(&samples, "samples", 100, "Monte Carlo trials per policy evaluation")
	runCmd.Flags().IntVar(&steps, "steps", 100, "Planning horizon in years")
	runCmd.Flags().Float64Var(&boundLo, "bound-lo", 0.0, "Lower discharge decision bound")
	runCmd.Flags().Float64Var(&boundHi, "bound-hi", 0.1, "Upper discharge decision bound")

	// Round schedule configs
	runCmd.Flags().IntVar(&baseline, "baseline", 100, "Random baseline policies evaluated first")
	runCmd.Flags().IntVar(&budgetLo, "budget-lo", 1, "First generation budget in the schedule")
	runCmd.Flags().IntVar(&budgetHi, "budget-hi", 10001, "Last generation budget in the schedule")
	runCmd.Flags().IntVar(&rounds, "rounds", 201, "Number of optimizer rounds")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML study config file (overrides flags)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
