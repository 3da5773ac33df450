package profiler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RecordCreatesEntriesLazily(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Len())

	r.Record(Key{Name: "a"}, iv(0, 10))
	r.Record(Key{Name: "a"}, iv(10, 20))
	r.Record(Key{Name: "b"}, iv(5, 15))

	assert.Equal(t, 2, r.Len())

	snap := r.Snapshot()
	require.Len(t, snap.Profiles, 2)
	assert.Equal(t, 2, snap.Profiles[0].Calls())
	assert.Equal(t, 1, snap.Profiles[1].Calls())
}

func TestRegistry_SnapshotKeepsRegistrationOrder(t *testing.T) {
	r := New()
	names := []string{"third", "first", "second"}
	for _, name := range names {
		r.Record(Key{Name: name}, iv(0, 1))
	}

	snap := r.Snapshot()
	require.Len(t, snap.Profiles, 3)
	for i, name := range names {
		assert.Equal(t, name, snap.Profiles[i].Key.Name)
	}
}

func TestRegistry_SnapshotIsDetached(t *testing.T) {
	r := New()
	r.Record(Key{Name: "a"}, iv(0, 10))

	snap := r.Snapshot()
	r.Record(Key{Name: "a"}, iv(10, 20))
	r.Record(Key{Name: "b"}, iv(0, 5))

	require.Len(t, snap.Profiles, 1)
	assert.Equal(t, 1, snap.Profiles[0].Calls())

	// Mutating the snapshot must not leak back into the store.
	snap.Profiles[0].Intervals[0] = iv(500, 600)
	fresh := r.Snapshot()
	assert.Equal(t, iv(0, 10), fresh.Profiles[0].Intervals[0])
}

func TestRegistry_ConcurrentRecords(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 200

	r := New()
	key := Key{Name: "hot"}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				r.Record(key, iv(i, i+1))
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	require.Len(t, snap.Profiles, 1)
	assert.Equal(t, goroutines*perGoroutine, snap.Profiles[0].Calls())
}

func TestRegistry_Clear(t *testing.T) {
	r := New()
	r.Record(Key{Name: "a"}, iv(0, 10))
	r.Record(Key{Name: "b"}, iv(0, 10))

	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Snapshot().Profiles)

	// Recording starts fresh after a clear.
	r.Record(Key{Name: "a"}, iv(0, 10))
	snap := r.Snapshot()
	require.Len(t, snap.Profiles, 1)
	assert.Equal(t, 1, snap.Profiles[0].Calls())
}

func TestRegistry_ClearRacesWithRecord(t *testing.T) {
	r := New()
	key := Key{Name: "racy"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record(key, iv(j, j+1))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			r.Clear()
		}
	}()
	wg.Wait()

	// Last-writer-wins: no particular count is guaranteed, only that the
	// store is internally consistent afterwards.
	snap := r.Snapshot()
	for _, p := range snap.Profiles {
		for _, interval := range p.Intervals {
			assert.False(t, interval.End.IsZero())
		}
	}
}

func TestRegistry_SpanRecordsOnEnd(t *testing.T) {
	r := New()
	key := Key{Name: "spanned"}

	span := r.StartSpan(key)
	assert.Equal(t, 0, r.Len())
	time.Sleep(2 * time.Millisecond)
	span.End()

	snap := r.Snapshot()
	require.Len(t, snap.Profiles, 1)
	require.Equal(t, 1, snap.Profiles[0].Calls())
	assert.GreaterOrEqual(t, snap.Profiles[0].Intervals[0].Duration(), 2*time.Millisecond)
}

func TestRegistry_NestedSpansOverlap(t *testing.T) {
	r := New()
	key := Key{Name: "recursive"}

	outer := r.StartSpan(key)
	inner := r.StartSpan(key)
	time.Sleep(time.Millisecond)
	inner.End()
	outer.End()

	snap := r.Snapshot()
	require.Len(t, snap.Profiles, 1)
	p := snap.Profiles[0]
	assert.Equal(t, 2, p.Calls())
	// Nested intervals overlap, so the union is shorter than the sum.
	assert.Less(t, p.Bottleneck(), p.Total())
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
