package profiler

import (
	"sync"
	"time"
)

// Registry is the process-wide profile store: a thread-safe mapping from
// Key to its accumulated Profile. Entries are created lazily on first
// record and never deleted individually; Clear resets the whole store.
type Registry struct {
	mu       sync.Mutex
	profiles map[Key]*Profile
	order    []Key
	excluded map[Key]struct{}

	wrappers    map[Key]func()
	errWrappers map[Key]func() error
}

// New creates an empty registry for a scoped measurement session.
func New() *Registry {
	return &Registry{
		profiles:    make(map[Key]*Profile),
		excluded:    make(map[Key]struct{}),
		wrappers:    make(map[Key]func()),
		errWrappers: make(map[Key]func() error),
	}
}

var defaultRegistry = New()

// Default returns the shared process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Record appends an interval to the profile for key, creating the entry if
// absent. Safe for concurrent use; appends are serialized so no update is
// lost and readers never observe a partially written interval.
func (r *Registry) Record(key Key, iv Interval) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(key, iv)
}

// record must be called with r.mu held.
func (r *Registry) record(key Key, iv Interval) {
	p, ok := r.profiles[key]
	if !ok {
		p = &Profile{Key: key}
		r.profiles[key] = p
		r.order = append(r.order, key)
	}
	p.Intervals = append(p.Intervals, iv)
}

// Span is an in-flight measurement started with StartSpan. End records the
// interval; the span is single-use.
type Span struct {
	r     *Registry
	key   Key
	start time.Time
}

// StartSpan begins timing one invocation of key. The interval is appended
// to the registry when End is called. Spans may be nested and may overlap
// across goroutines; each produces an independent interval.
func (r *Registry) StartSpan(key Key) *Span {
	return &Span{r: r, key: key, start: time.Now()}
}

// End records the span's interval. A span whose registry was cleared while
// it was in flight still records; in-flight records racing a Clear resolve
// last-writer-wins.
func (s *Span) End() {
	s.r.Record(s.key, Interval{Start: s.start, End: time.Now()})
}

// Snapshot is a consistent point-in-time copy of a registry's profiles, in
// first-registration order. It is detached from the registry: later
// records or a Clear do not affect it.
type Snapshot struct {
	Profiles []Profile
}

// Snapshot returns a copy of all profiles in first-registration order.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{Profiles: make([]Profile, 0, len(r.order))}
	for _, key := range r.order {
		p := r.profiles[key]
		cp := Profile{Key: p.Key, Intervals: make([]Interval, len(p.Intervals))}
		copy(cp.Intervals, p.Intervals)
		snap.Profiles = append(snap.Profiles, cp)
	}
	return snap
}

// Len returns the number of tracked keys with at least one recorded
// interval.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.profiles)
}

// Clear removes all recorded profiles so a new measurement session can
// start without restarting the process. Tracking markers and exclusions
// survive a Clear; only the recorded data is dropped.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = make(map[Key]*Profile)
	r.order = nil
}
