package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/callprof/callprof/pkg/profiler"
)

// exportProfile is the serialized form of one tracked callable: its
// summary statistics plus the raw intervals as offset/duration pairs, all
// in milliseconds.
type exportProfile struct {
	Name         string           `yaml:"name" json:"name"`
	Calls        int              `yaml:"calls" json:"calls"`
	AverageMs    float64          `yaml:"average_ms" json:"average_ms"`
	LongestMs    float64          `yaml:"longest_ms" json:"longest_ms"`
	BottleneckMs float64          `yaml:"bottleneck_ms" json:"bottleneck_ms"`
	TotalMs      float64          `yaml:"total_ms" json:"total_ms"`
	Intervals    []exportInterval `yaml:"intervals" json:"intervals"`
}

type exportInterval struct {
	OffsetMs   float64 `yaml:"offset_ms" json:"offset_ms"`
	DurationMs float64 `yaml:"duration_ms" json:"duration_ms"`
}

func msFloat(us int64) float64 {
	return float64(us) / 1000.0
}

// exportSnapshot writes the rows plus the raw timeline as YAML or JSON.
// Rows keep their sorted order; intervals come from the timeline
// projection so offsets are relative to the measurement window.
func exportSnapshot(out io.Writer, snap profiler.Snapshot, rows []profiler.SummaryRow, format string, fullName bool) error {
	tl := profiler.TimelineOf(snap, false)
	lanes := make(map[profiler.Key][]profiler.TimelineSpan, len(tl.Lanes))
	for _, lane := range tl.Lanes {
		lanes[lane.Key] = lane.Spans
	}

	profiles := make([]exportProfile, 0, len(rows))
	for _, r := range rows {
		p := exportProfile{
			Name:         r.Key.Display(fullName),
			Calls:        r.Calls,
			AverageMs:    msFloat(r.Average.Microseconds()),
			LongestMs:    msFloat(r.Longest.Microseconds()),
			BottleneckMs: msFloat(r.Bottleneck.Microseconds()),
			TotalMs:      msFloat(r.Total.Microseconds()),
		}
		for _, span := range lanes[r.Key] {
			p.Intervals = append(p.Intervals, exportInterval{
				OffsetMs:   msFloat(span.Offset.Microseconds()),
				DurationMs: msFloat(span.Duration.Microseconds()),
			})
		}
		profiles = append(profiles, p)
	}

	doc := struct {
		Profiles []exportProfile `yaml:"profiles" json:"profiles"`
	}{Profiles: profiles}

	switch format {
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		return profiler.NewInvalidArgumentError("export",
			fmt.Sprintf("unknown export format %q (valid: yaml, json)", format))
	}
}
