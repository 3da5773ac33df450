package profiler

import "time"

// Key identifies a tracked callable. Name is the bare callable name; Owner
// is an optional qualifier (typically the owning type), used when a report
// is asked for full names.
type Key struct {
	Owner string
	Name  string
}

// Qualified returns "Owner.Name", or just Name when there is no owner.
func (k Key) Qualified() string {
	if k.Owner == "" {
		return k.Name
	}
	return k.Owner + "." + k.Name
}

// Display returns the qualified name when full is set, the bare name
// otherwise.
func (k Key) Display(full bool) string {
	if full {
		return k.Qualified()
	}
	return k.Name
}

// Interval is one recorded invocation: a start and end timestamp pair.
// Timestamps come from time.Now and carry a monotonic reading, so
// durations are immune to wall-clock adjustments. An Interval is immutable
// once recorded.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End-Start. A clock anomaly that produces End before
// Start is treated as a zero-duration interval, not an error.
func (iv Interval) Duration() time.Duration {
	d := iv.End.Sub(iv.Start)
	if d < 0 {
		return 0
	}
	return d
}

// overlaps reports whether other starts inside or adjacent to iv.
// Intervals are considered mergeable when other.Start <= iv.End.
func (iv Interval) overlaps(other Interval) bool {
	return !other.Start.After(iv.End)
}
