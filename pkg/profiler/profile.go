package profiler

import (
	"sort"
	"time"
)

// Profile is the accumulated state for one Key: the ordered sequence of
// recorded intervals (insertion order, which is call order). Profiles
// obtained from Registry.Snapshot are copies; all methods are pure
// functions of the interval data.
type Profile struct {
	Key       Key
	Intervals []Interval
}

// Calls returns the number of recorded invocations.
func (p Profile) Calls() int {
	return len(p.Intervals)
}

// Earliest returns the earliest recorded start time. The second return is
// false when the profile is empty.
func (p Profile) Earliest() (time.Time, bool) {
	if len(p.Intervals) == 0 {
		return time.Time{}, false
	}
	min := p.Intervals[0].Start
	for _, iv := range p.Intervals[1:] {
		if iv.Start.Before(min) {
			min = iv.Start
		}
	}
	return min, true
}

// Latest returns the latest recorded end time. The second return is false
// when the profile is empty.
func (p Profile) Latest() (time.Time, bool) {
	if len(p.Intervals) == 0 {
		return time.Time{}, false
	}
	max := p.Intervals[0].End
	for _, iv := range p.Intervals[1:] {
		if iv.End.After(max) {
			max = iv.End
		}
	}
	return max, true
}

// Total returns the naive sum of all interval durations, without overlap
// correction.
func (p Profile) Total() time.Duration {
	var sum time.Duration
	for _, iv := range p.Intervals {
		sum += iv.Duration()
	}
	return sum
}

// Longest returns the largest single-interval duration.
func (p Profile) Longest() time.Duration {
	var max time.Duration
	for _, iv := range p.Intervals {
		if d := iv.Duration(); d > max {
			max = d
		}
	}
	return max
}

// Average returns the mean interval duration, or zero for an empty profile.
func (p Profile) Average() time.Duration {
	n := len(p.Intervals)
	if n == 0 {
		return 0
	}
	return p.Total() / time.Duration(n)
}

// Merged returns the union of all intervals on the wall-clock timeline:
// intervals sorted by start time, with overlapping or adjacent ones
// collapsed into single non-overlapping segments.
func (p Profile) Merged() []Interval {
	if len(p.Intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(p.Intervals))
	copy(sorted, p.Intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if last.overlaps(iv) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Bottleneck returns the overlap-adjusted total: the wall-clock duration
// during which at least one invocation was executing. It is always <=
// Total, with equality exactly when no two intervals overlap.
func (p Profile) Bottleneck() time.Duration {
	var sum time.Duration
	for _, iv := range p.Merged() {
		sum += iv.Duration()
	}
	return sum
}
