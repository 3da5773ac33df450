package profiler

import "fmt"

// Tracked returns an instrumented version of fn that records one interval
// per invocation under name. The wrapper is transparent to control flow:
// the interval is recorded via defer, so a panicking call still
// contributes timing data and the panic propagates unchanged.
//
// Tracking is idempotent per key: if name is already tracked, the
// previously built wrapper is returned and fn is ignored, so re-applying
// the marker never double-records. If name was excluded before tracking,
// fn is returned unwrapped and nothing is ever recorded for it.
func (r *Registry) Tracked(name string, fn func()) func() {
	return r.tracked(Key{Name: name}, fn)
}

func (r *Registry) tracked(key Key, fn func()) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.excluded[key]; ok {
		return fn
	}
	if w, ok := r.wrappers[key]; ok {
		return w
	}

	w := func() {
		span := r.StartSpan(key)
		defer span.End()
		fn()
	}
	r.wrappers[key] = w
	return w
}

// TrackedErr is Tracked for callables that return an error. The error is
// passed through unchanged; failing calls still record an interval.
func (r *Registry) TrackedErr(name string, fn func() error) func() error {
	return r.trackedErr(Key{Name: name}, fn)
}

func (r *Registry) trackedErr(key Key, fn func() error) func() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.excluded[key]; ok {
		return fn
	}
	if w, ok := r.errWrappers[key]; ok {
		return w
	}

	w := func() error {
		span := r.StartSpan(key)
		defer span.End()
		return fn()
	}
	r.errWrappers[key] = w
	return w
}

// TrackedAll wraps every callable in fns, qualifying each key with owner
// (the method-set analogue of tracking a whole type). Names excluded
// before the call are returned unwrapped; everything else is tracked as by
// Tracked.
func (r *Registry) TrackedAll(owner string, fns map[string]func()) map[string]func() {
	out := make(map[string]func(), len(fns))
	for name, fn := range fns {
		out[name] = r.tracked(Key{Owner: owner, Name: name}, fn)
	}
	return out
}

// Exclude marks key as never tracked. Exclusion is a static, per-callable
// property: it must be applied before the key is tracked. Excluding a key
// whose wrapper already exists fails with an unsupported operation error,
// because wrappers already handed out cannot be retroactively disarmed.
func (r *Registry) Exclude(key Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.wrappers[key]; ok {
		return NewUnsupportedOperationError(key.Qualified(),
			fmt.Sprintf("cannot exclude %q: already tracked; exclusion must be applied before tracking", key.Qualified()))
	}
	if _, ok := r.errWrappers[key]; ok {
		return NewUnsupportedOperationError(key.Qualified(),
			fmt.Sprintf("cannot exclude %q: already tracked; exclusion must be applied before tracking", key.Qualified()))
	}
	r.excluded[key] = struct{}{}
	return nil
}

// Excluded reports whether key has been excluded from tracking.
func (r *Registry) Excluded(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.excluded[key]
	return ok
}
