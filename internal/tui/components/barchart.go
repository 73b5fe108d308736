package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flickdash/internal/stats"
	"flickdash/internal/tui/styles"
)

// RenderBarChart renders a horizontal bar chart of the given counts.
// Labels are right-aligned in a fixed gutter, bars scale to the
// largest count, and each row ends with the raw count.
func RenderBarChart(title string, counts []stats.Count, width int, barStyle lipgloss.Style) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(styles.AccentStyle.Render(title))
		b.WriteString("\n")
	}

	if len(counts) == 0 {
		b.WriteString(styles.DimStyle.Render("no data"))
		return b.String()
	}

	labelWidth := 0
	max := 0
	for _, c := range counts {
		if l := lipgloss.Width(c.Key); l > labelWidth {
			labelWidth = l
		}
		if c.N > max {
			max = c.N
		}
	}
	// Keep long labels from eating the whole row
	if labelWidth > width/3 {
		labelWidth = width / 3
	}

	// label + " ▏" + bar + " " + count
	countWidth := len(fmt.Sprintf("%d", max))
	barWidth := width - labelWidth - countWidth - 4
	if barWidth < 5 {
		barWidth = 5
	}

	for i, c := range counts {
		label := styles.Truncate(c.Key, labelWidth)
		pad := styles.Spaces(labelWidth - lipgloss.Width(label))
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.SubtitleStyle.Render(pad + label))
		b.WriteString(styles.AxisStyle.Render(" ▏"))
		b.WriteString(barStyle.Render(styles.Bar(c.N, max, barWidth)))
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf(" %d", c.N)))
	}

	return b.String()
}

// RenderProportionBar renders the counts as one width-filling bar
// split proportionally, with a legend line underneath. Used for the
// content-type distribution on the overview.
func RenderProportionBar(title string, counts []stats.Count, width int) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(styles.AccentStyle.Render(title))
		b.WriteString("\n\n")
	}

	total := 0
	for _, c := range counts {
		total += c.N
	}
	if total == 0 {
		b.WriteString(styles.DimStyle.Render("no data"))
		return b.String()
	}

	segStyles := []lipgloss.Style{styles.BarStyle, styles.BarAltStyle, styles.BarEmptyStyle}

	barWidth := width - 2
	if barWidth < 10 {
		barWidth = 10
	}

	used := 0
	for i, c := range counts {
		w := c.N * barWidth / total
		if i == len(counts)-1 {
			w = barWidth - used // absorb rounding in the last segment
		}
		if w <= 0 {
			continue
		}
		used += w
		b.WriteString(segStyles[i%len(segStyles)].Render(strings.Repeat("█", w)))
	}
	b.WriteString("\n")

	// Legend with percentages
	for i, c := range counts {
		if i > 0 {
			b.WriteString("   ")
		}
		pct := float64(c.N) / float64(total) * 100
		b.WriteString(segStyles[i%len(segStyles)].Render("■ "))
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s %.1f%% (%d)", c.Key, pct, c.N)))
	}

	return b.String()
}
