// Package render turns profiler projections into terminal output. It is
// the rendering backend the core stays agnostic of: everything here
// consumes structured rows or timelines and produces styled strings.
package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/callprof/callprof/internal/config"
	"github.com/callprof/callprof/pkg/profiler"
)

// Variant selects the summary table column set.
type Variant int

const (
	// VariantBottleneck shows the overlap-adjusted bottleneck column.
	VariantBottleneck Variant = iota
	// VariantTotal shows the naive total elapsed column instead.
	VariantTotal
)

// TableOptions controls summary table rendering.
type TableOptions struct {
	FullName bool
	Variant  Variant
	Style    config.Render
}

// Ms formats a duration as milliseconds with two decimal places.
func Ms(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d.Microseconds())/1000.0)
}

// SummaryTable renders summary rows as a bordered table. An empty row set
// yields a table with headers only.
func SummaryTable(rows []profiler.SummaryRow, opts TableOptions) string {
	headers := []string{"Name", "Calls", "Average (ms)", "Longest (ms)"}
	if opts.Variant == VariantTotal {
		headers = append(headers, "Total elapsed (ms)")
	} else {
		headers = append(headers, "Bottleneck (ms)")
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(opts.Style.Label))
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Style.Edge))
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Inherit(headerStyle)
			}
			return cellStyle
		})

	for _, r := range rows {
		last := Ms(r.Bottleneck)
		if opts.Variant == VariantTotal {
			last = Ms(r.Total)
		}
		t.Row(
			r.Key.Display(opts.FullName),
			strconv.Itoa(r.Calls),
			Ms(r.Average),
			Ms(r.Longest),
			last,
		)
	}

	return t.Render()
}
