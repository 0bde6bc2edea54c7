// Package lake provides the Monte Carlo evaluation and Pareto analysis engine
// for the shallow-lake phosphorus management model.
//
// # Reading Guide
//
// Start with these three files to understand the analysis kernel:
//   - dynamics.go: the annual phosphorus mass-balance recurrence
//   - evaluate.go: Monte Carlo evaluation of a discharge policy into its
//     three objectives (peak concentration, discounted utility, reliability)
//   - pareto.go: the dominance predicate and the O(n²) culling pass that
//     partitions evaluated policies into dominant and dominated sets
//
// # Architecture
//
// A Study drives repeated rounds: each round invokes a SearchProvider with a
// growing generation budget, appends the returned records to the append-only
// Archive, and re-culls the entire archive snapshot. The provider boundary is
// opaque; RandomSearchProvider is the built-in baseline, and any external
// multi-objective optimizer can be plugged in behind the same interface.
//
// Randomness is partitioned: every stochastic subsystem (inflow sampling,
// policy search) draws from its own deterministically derived stream, so a
// study is reproducible from a single seed. See rng.go.
//
// # Key Interfaces
//
//   - InflowSampler: one annual natural inflow draw
//   - SearchProvider: (config, algorithm, budget) → newly evaluated records
//   - RoundObserver: receives the partition and archive snapshot per round
package lake
