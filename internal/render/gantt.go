package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/callprof/callprof/internal/config"
	"github.com/callprof/callprof/pkg/profiler"
)

const minBarWidth = 10

// Gantt renders a timeline as a terminal range chart: one lane per tracked
// key, bars placed proportionally inside the measurement window. An empty
// timeline renders to an empty string.
func Gantt(tl profiler.Timeline, fullName bool, style config.Render) string {
	if len(tl.Lanes) == 0 {
		return ""
	}

	width := style.Width
	if width < minBarWidth {
		width = minBarWidth
	}

	block := '█'
	if style.Shade {
		block = '▒'
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Label))
	fillStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Fill))
	edgeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Edge))

	labelWidth := 0
	for _, lane := range tl.Lanes {
		if n := len(lane.Key.Display(fullName)); n > labelWidth {
			labelWidth = n
		}
	}

	var b strings.Builder
	for _, lane := range tl.Lanes {
		cells := make([]rune, width)
		for i := range cells {
			cells[i] = ' '
		}
		for _, span := range lane.Spans {
			start, end := span.Ratios(tl.Window)
			from := int(start * float64(width))
			to := int(math.Ceil(end * float64(width)))
			if from >= width {
				from = width - 1
			}
			// Every span is at least one cell wide so short calls stay
			// visible.
			if to <= from {
				to = from + 1
			}
			if to > width {
				to = width
			}
			for i := from; i < to; i++ {
				cells[i] = block
			}
		}

		label := fmt.Sprintf("%*s", labelWidth, lane.Key.Display(fullName))
		b.WriteString(labelStyle.Render(label))
		b.WriteString(edgeStyle.Render(" │"))
		b.WriteString(fillStyle.Render(string(cells)))
		b.WriteString("\n")
	}

	// Axis with the window bounds in milliseconds.
	axis := fmt.Sprintf("%*s └%s", labelWidth, "", strings.Repeat("─", width))
	b.WriteString(edgeStyle.Render(axis))
	b.WriteString("\n")
	bounds := fmt.Sprintf("%*s 0%*s", labelWidth, "",
		width, Ms(tl.Window)+" ms")
	b.WriteString(labelStyle.Render(bounds))
	b.WriteString("\n")

	return b.String()
}
