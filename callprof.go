// Package callprof is the convenience surface over the default profiler
// registry: package-level tracking markers plus ready-made table and
// timeline rendering. Libraries that want scoped registries or custom
// rendering should use pkg/profiler directly.
package callprof

import (
	"io"
	"os"

	"github.com/callprof/callprof/internal/config"
	"github.com/callprof/callprof/internal/render"
	"github.com/callprof/callprof/pkg/profiler"
)

// Tracked instruments fn under name in the default registry. Re-applying
// the marker to the same name returns the existing wrapper.
func Tracked(name string, fn func()) func() {
	return profiler.Default().Tracked(name, fn)
}

// TrackedErr is Tracked for callables returning an error.
func TrackedErr(name string, fn func() error) func() error {
	return profiler.Default().TrackedErr(name, fn)
}

// TrackedAll instruments a whole method set, qualifying names with owner.
func TrackedAll(owner string, fns map[string]func()) map[string]func() {
	return profiler.Default().TrackedAll(owner, fns)
}

// Exclude marks a callable as never tracked. It must be applied before the
// callable is tracked.
func Exclude(owner, name string) error {
	return profiler.Default().Exclude(profiler.Key{Owner: owner, Name: name})
}

// Reset clears all profiles recorded in the default registry.
func Reset() {
	profiler.Default().Clear()
}

// Style holds rendering pass-through options. The zero value uses the
// default style.
type Style struct {
	Width int    // gantt bar area width in cells
	Fill  string // bar fill color
	Edge  string // border and axis color
	Label string // label and header color
	Shade bool   // lighter bar shading
}

func (s Style) render() config.Render {
	out := config.Default().Render
	if s.Width > 0 {
		out.Width = s.Width
	}
	if s.Fill != "" {
		out.Fill = s.Fill
	}
	if s.Edge != "" {
		out.Edge = s.Edge
	}
	if s.Label != "" {
		out.Label = s.Label
	}
	out.Shade = s.Shade
	return out
}

// DisplayOptions controls DisplayProfiles.
type DisplayOptions struct {
	OrderBy  string // name, calls, average, longest, bottleneck, total
	Reverse  bool
	FullName bool
	Total    bool // show total elapsed instead of bottleneck
	Style    Style
}

// DisplayProfiles writes the summary table for the default registry to w
// (stdout when nil). An empty OrderBy sorts by name; an unknown one fails
// with an invalid argument error.
func DisplayProfiles(w io.Writer, opts DisplayOptions) error {
	if w == nil {
		w = os.Stdout
	}

	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = "name"
	}
	order, err := profiler.ParseOrderBy(orderBy)
	if err != nil {
		return err
	}

	rows, err := profiler.Rows(profiler.Default().Snapshot(), order, opts.Reverse)
	if err != nil {
		return err
	}

	variant := render.VariantBottleneck
	if opts.Total {
		variant = render.VariantTotal
	}
	_, err = io.WriteString(w, render.SummaryTable(rows, render.TableOptions{
		FullName: opts.FullName,
		Variant:  variant,
		Style:    opts.Style.render(),
	})+"\n")
	return err
}

// PlotOptions controls PlotProfiles and PlotMerged.
type PlotOptions struct {
	Reverse  bool
	FullName bool
	Style    Style
}

// PlotProfiles writes a timeline chart of every recorded interval to w
// (stdout when nil), lanes ordered by earliest first call.
func PlotProfiles(w io.Writer, opts PlotOptions) error {
	return plot(w, opts, false)
}

// PlotMerged is PlotProfiles with overlapping intervals merged per lane,
// showing when each callable was busy at all.
func PlotMerged(w io.Writer, opts PlotOptions) error {
	return plot(w, opts, true)
}

func plot(w io.Writer, opts PlotOptions, merged bool) error {
	if w == nil {
		w = os.Stdout
	}

	snap := profiler.Default().Snapshot()
	tl := profiler.TimelineOf(snap, opts.Reverse)
	if merged {
		tl = profiler.MergedTimelineOf(snap, opts.Reverse)
	}

	_, err := io.WriteString(w, render.Gantt(tl, opts.FullName, opts.Style.render()))
	return err
}
