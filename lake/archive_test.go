package lake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_MonotonicGrowth(t *testing.T) {
	a := NewArchive()
	assert.Equal(t, 0, a.Len())

	a.Append(rec(0.1, 1, 0.9))
	assert.Equal(t, 1, a.Len())

	a.Append(rec(0.2, 2, 0.8), rec(0.3, 3, 0.7))
	assert.Equal(t, 3, a.Len())

	// Earlier records are untouched and insertion order is preserved.
	snap := a.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, rec(0.1, 1, 0.9), snap[0])
	assert.Equal(t, rec(0.3, 3, 0.7), snap[2])
}

func TestArchive_SnapshotIsolation(t *testing.T) {
	// GIVEN a snapshot taken before further growth
	a := NewArchive()
	a.Append(rec(0.1, 1, 0.9))
	snap := a.Snapshot()

	// WHEN the archive keeps growing and the snapshot is mutated
	a.Append(rec(0.2, 2, 0.8))
	snap[0] = rec(9, 9, 9)

	// THEN neither side observes the other's changes
	assert.Len(t, snap, 1)
	assert.Equal(t, rec(0.1, 1, 0.9), a.Snapshot()[0])
}

func TestArchive_ConcurrentReadersSingleWriter(t *testing.T) {
	a := NewArchive()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			a.Append(rec(float64(i), 1, 0.5))
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				snap := a.Snapshot()
				// A snapshot is internally consistent: culling it never
				// changes its size.
				part := Cull(snap, DefaultDirections)
				assert.Equal(t, len(snap), len(part.Dominant)+len(part.Dominated))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 500, a.Len())
}
