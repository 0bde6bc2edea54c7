package lake

import (
	"hash/fnv"
	"math/rand"
)

// === StudyKey ===

// StudyKey uniquely identifies a reproducible analysis run. Two studies with
// the same StudyKey and identical configuration MUST produce bit-for-bit
// identical archives.
type StudyKey int64

// NewStudyKey creates a StudyKey from a seed value.
func NewStudyKey(seed int64) StudyKey {
	return StudyKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemInflow is the RNG subsystem for natural inflow sampling.
	SubsystemInflow = "inflow"

	// SubsystemSearch is the RNG subsystem for policy search and sampling.
	SubsystemSearch = "search"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG streams per subsystem.
// Each subsystem seed is derived as masterSeed XOR fnv1a64(subsystemName), so
// draws in one subsystem never perturb another.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine;
// concurrent consumers derive their own child sources (see Evaluate).
type PartitionedRNG struct {
	key        StudyKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a StudyKey.
func NewPartitionedRNG(key StudyKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the StudyKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() StudyKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
