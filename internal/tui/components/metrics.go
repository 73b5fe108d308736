package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"flickdash/internal/tui/styles"
)

// Metric is one overview card
type Metric struct {
	Label string
	Value string
}

// IntMetric formats an integer metric with thousands separators
func IntMetric(label string, n int) Metric {
	return Metric{Label: label, Value: groupDigits(n)}
}

// RenderMetricCards renders a row of bordered metric cards sized to
// share the available width.
func RenderMetricCards(metrics []Metric, width int) string {
	if len(metrics) == 0 {
		return ""
	}

	cardWidth := width/len(metrics) - 2
	if cardWidth < 12 {
		cardWidth = 12
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.NetflixRed).
		Padding(0, 1).
		Width(cardWidth)

	cards := make([]string, len(metrics))
	for i, m := range metrics {
		content := styles.TitleStyle.Render(m.Value) + "\n" +
			styles.DimStyle.Render(styles.Truncate(m.Label, cardWidth-2))
		cards[i] = cardStyle.Render(content)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// groupDigits formats 12345 as "12,345"
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(r)
	}
	if neg {
		return "-" + out
	}
	return out
}
