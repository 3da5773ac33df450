package render

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/callprof/callprof/pkg/profiler"
)

// TemplateRow is the flattened view of a summary row exposed to report
// templates.
type TemplateRow struct {
	Name       string
	Calls      int
	Average    time.Duration
	Longest    time.Duration
	Bottleneck time.Duration
	Total      time.Duration
}

// Template renders summary rows through a user-supplied text/template.
// Sprig functions are available, plus "ms" to format a duration as
// milliseconds. The template executes with .Rows bound to the row list.
func Template(rows []profiler.SummaryRow, tmplText string, fullName bool) (string, error) {
	funcs := sprig.TxtFuncMap()
	funcs["ms"] = Ms

	tmpl, err := template.New("report").Funcs(funcs).Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("invalid report template: %w", err)
	}

	data := struct{ Rows []TemplateRow }{Rows: make([]TemplateRow, 0, len(rows))}
	for _, r := range rows {
		data.Rows = append(data.Rows, TemplateRow{
			Name:       r.Key.Display(fullName),
			Calls:      r.Calls,
			Average:    r.Average,
			Longest:    r.Longest,
			Bottleneck: r.Bottleneck,
			Total:      r.Total,
		})
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("report template failed: %w", err)
	}
	return b.String(), nil
}
