package profiler

import (
	"sort"
	"time"
)

// TimelineSpan is one bar on a timeline lane: an offset from the start of
// the measurement window and a duration. Offsets are relative so a
// renderer never needs absolute timestamps.
type TimelineSpan struct {
	Offset   time.Duration
	Duration time.Duration
}

// Ratios returns the span's start and end position as fractions of the
// window, both in [0, 1]. A zero window maps everything to 0.
func (s TimelineSpan) Ratios(window time.Duration) (start, end float64) {
	if window <= 0 {
		return 0, 0
	}
	start = float64(s.Offset) / float64(window)
	end = float64(s.Offset+s.Duration) / float64(window)
	if end > 1 {
		end = 1
	}
	return start, end
}

// Lane holds the spans for one tracked key.
type Lane struct {
	Key   Key
	Spans []TimelineSpan
}

// Timeline is a renderer-agnostic projection of a snapshot for range or
// gantt style visualization. Lanes are ordered by the earliest recorded
// start time: the key whose first call started earliest comes first.
// Window is the distance from that earliest start to the latest end.
type Timeline struct {
	Window time.Duration
	Lanes  []Lane
}

// TimelineOf projects every profile's raw intervals into timeline lanes.
// Keys with no recorded intervals are omitted; an empty snapshot yields an
// empty timeline. With reverse set, lane order is inverted.
func TimelineOf(snap Snapshot, reverse bool) Timeline {
	return buildTimeline(snap, false, reverse)
}

// MergedTimelineOf is TimelineOf with each lane's intervals first merged
// into non-overlapping segments, answering "when was this callable busy at
// all" rather than "every individual call".
func MergedTimelineOf(snap Snapshot, reverse bool) Timeline {
	return buildTimeline(snap, true, reverse)
}

func buildTimeline(snap Snapshot, merged, reverse bool) Timeline {
	type entry struct {
		profile  Profile
		earliest time.Time
	}

	entries := make([]entry, 0, len(snap.Profiles))
	var earliest, latest time.Time
	for _, p := range snap.Profiles {
		min, ok := p.Earliest()
		if !ok {
			continue
		}
		max, _ := p.Latest()
		if len(entries) == 0 {
			earliest, latest = min, max
		} else {
			if min.Before(earliest) {
				earliest = min
			}
			if max.After(latest) {
				latest = max
			}
		}
		entries = append(entries, entry{profile: p, earliest: min})
	}
	if len(entries) == 0 {
		return Timeline{}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if reverse {
			return entries[j].earliest.Before(entries[i].earliest)
		}
		return entries[i].earliest.Before(entries[j].earliest)
	})

	tl := Timeline{
		Window: latest.Sub(earliest),
		Lanes:  make([]Lane, 0, len(entries)),
	}
	for _, e := range entries {
		intervals := e.profile.Intervals
		if merged {
			intervals = e.profile.Merged()
		}
		lane := Lane{Key: e.profile.Key, Spans: make([]TimelineSpan, 0, len(intervals))}
		for _, iv := range intervals {
			lane.Spans = append(lane.Spans, TimelineSpan{
				Offset:   iv.Start.Sub(earliest),
				Duration: iv.Duration(),
			})
		}
		tl.Lanes = append(tl.Lanes, lane)
	}
	return tl
}
