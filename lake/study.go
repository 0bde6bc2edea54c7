package lake

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// RoundObserver receives the freshly culled partition and the full archive
// snapshot after every round. This is the boundary the (external) rendering
// stage hangs off; a nil observer is silently skipped.
type RoundObserver interface {
	OnRound(round, budget int, part Partition, archive PointSet)
}

// BudgetSchedule returns n evenly spaced integer generation budgets from lo to
// hi inclusive, ascending. With n == 1 it returns just lo.
func BudgetSchedule(lo, hi, n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{lo}
	}
	schedule := make([]int, n)
	span := float64(hi - lo)
	for i := range schedule {
		schedule[i] = lo + int(span*float64(i)/float64(n-1)+0.5)
	}
	return schedule
}

// Study drives the round loop: each round restarts the search provider with
// the next budget from the schedule, appends the reported records to the
// archive, and re-culls the entire accumulated archive. The archive is the
// only mutable shared state and Study is its single writer.
type Study struct {
	cfg       *ModelConfig
	provider  SearchProvider
	algorithm string
	rng       *PartitionedRNG
	archive   *Archive
	observer  RoundObserver
}

// NewStudy assembles a study over the given configuration and provider.
func NewStudy(cfg *ModelConfig, provider SearchProvider, algorithm string, key StudyKey, observer RoundObserver) *Study {
	return &Study{
		cfg:       cfg,
		provider:  provider,
		algorithm: algorithm,
		rng:       NewPartitionedRNG(key),
		archive:   NewArchive(),
		observer:  observer,
	}
}

// Archive exposes the accumulated records.
func (s *Study) Archive() *Archive {
	return s.archive
}

// Partition re-culls the current archive snapshot.
func (s *Study) Partition() Partition {
	return Cull(s.archive.Snapshot(), s.cfg.Directions)
}

// SeedBaseline evaluates n uniformly random policies before any optimizer
// round, establishing the naive baseline the optimized fronts are judged
// against. Reported to the observer as round -1.
func (s *Study) SeedBaseline(n int) error {
	recs, err := RandomSearchProvider{}.Search(s.cfg, AlgorithmRandom, n, s.rng.ForSubsystem(SubsystemSearch))
	if err != nil {
		return fmt.Errorf("baseline sampling: %w", err)
	}
	s.archive.Append(recs...)
	part := s.Partition()
	logrus.Infof("baseline: %d policies evaluated, front size %d", n, len(part.Dominant))
	if s.observer != nil {
		s.observer.OnRound(-1, n, part, s.archive.Snapshot())
	}
	return nil
}

// Run executes one round per schedule entry. Each round's provider call is a
// fresh start with the new budget, not a resumption; only the archive carries
// over. A provider failure aborts the run with nothing partial appended.
func (s *Study) Run(schedule []int) error {
	for round, budget := range schedule {
		recs, err := s.provider.Search(s.cfg, s.algorithm, budget, s.rng.ForSubsystem(SubsystemSearch))
		if err != nil {
			return fmt.Errorf("round %d (budget %d): %w", round, budget, err)
		}
		s.archive.Append(recs...)
		part := s.Partition()
		logrus.Debugf("round %d: budget %d, +%d records, archive %d, front %d",
			round, budget, len(recs), s.archive.Len(), len(part.Dominant))
		if s.observer != nil {
			s.observer.OnRound(round, budget, part, s.archive.Snapshot())
		}
	}
	return nil
}
