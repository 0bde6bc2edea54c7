package lake

import "sync"

// Record pairs an evaluated policy with its objective triple. Records are
// immutable once created; no partially evaluated policy ever becomes one.
type Record struct {
	Policy     Policy
	Objectives Objectives
}

// Archive is the append-only collection of every record evaluated across all
// rounds. Insertion order is preserved. It has exactly one writer (the round
// loop) and any number of concurrent readers, which always observe a stable
// snapshot.
type Archive struct {
	mu      sync.RWMutex
	records []Record
}

// NewArchive returns an empty archive.
func NewArchive() *Archive {
	return &Archive{}
}

// Append adds newly evaluated records. Existing records are never removed or
// altered.
func (a *Archive) Append(recs ...Record) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, recs...)
}

// Len returns the number of records accumulated so far.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.records)
}

// Snapshot returns a copy of the current contents, safe to cull while the
// writer keeps appending.
func (a *Archive) Snapshot() PointSet {
	a.mu.RLock()
	defer a.mu.RUnlock()
	snap := make(PointSet, len(a.records))
	copy(snap, a.records)
	return snap
}
