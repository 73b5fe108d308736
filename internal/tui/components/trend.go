package components

import (
	"fmt"
	"strings"
	"time"

	"flickdash/internal/stats"
	"flickdash/internal/tui/styles"
)

// RenderYearTrend renders the titles-added-per-year series as one bar
// row per year, oldest first.
func RenderYearTrend(title string, series []stats.YearCount, width int) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(styles.AccentStyle.Render(title))
		b.WriteString("\n")
	}

	if len(series) == 0 {
		b.WriteString(styles.DimStyle.Render("no data"))
		return b.String()
	}

	max := 0
	for _, p := range series {
		if p.N > max {
			max = p.N
		}
	}

	countWidth := len(fmt.Sprintf("%d", max))
	barWidth := width - 4 - countWidth - 4 // year + axis + count
	if barWidth < 5 {
		barWidth = 5
	}

	for _, p := range series {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%4d", p.Year)))
		b.WriteString(styles.AxisStyle.Render(" ▏"))
		b.WriteString(styles.BarStyle.Render(styles.Bar(p.N, max, barWidth)))
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf(" %d", p.N)))
	}

	return b.String()
}

// RenderMonthTrend renders the per-calendar-month distribution.
// All twelve months render, zero-filled, so the axis always lines up
// with the calendar.
func RenderMonthTrend(title string, months [12]int, width int) string {
	counts := make([]stats.Count, 12)
	for i := range months {
		counts[i] = stats.Count{
			Key: time.Month(i + 1).String()[:3],
			N:   months[i],
		}
	}
	return RenderBarChart(title, counts, width, styles.BarAltStyle)
}

// RenderTypeTrend renders the per-year growth split by content type
// as a stacked two-color bar per year with a legend.
func RenderTypeTrend(title string, series []stats.YearTypeCount, width int) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(styles.AccentStyle.Render(title))
		b.WriteString("\n")
	}

	if len(series) == 0 {
		b.WriteString(styles.DimStyle.Render("no data"))
		return b.String()
	}

	max := 0
	for _, p := range series {
		if total := p.Movies + p.Shows; total > max {
			max = total
		}
	}

	countWidth := len(fmt.Sprintf("%d", max))
	barWidth := width - 4 - countWidth - 4
	if barWidth < 5 {
		barWidth = 5
	}

	for _, p := range series {
		total := p.Movies + p.Shows
		movieCells := 0
		showCells := 0
		if total > 0 && max > 0 {
			scaled := total * barWidth / max
			if scaled == 0 {
				scaled = 1
			}
			movieCells = p.Movies * scaled / total
			showCells = scaled - movieCells
		}

		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%4d", p.Year)))
		b.WriteString(styles.AxisStyle.Render(" ▏"))
		b.WriteString(styles.BarStyle.Render(strings.Repeat("█", movieCells)))
		b.WriteString(styles.BarAltStyle.Render(strings.Repeat("█", showCells)))
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf(" %d", total)))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.BarStyle.Render("■ "))
	b.WriteString(styles.SubtitleStyle.Render("Movies   "))
	b.WriteString(styles.BarAltStyle.Render("■ "))
	b.WriteString(styles.SubtitleStyle.Render("TV Shows"))

	return b.String()
}
