package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flickdash/internal/stats"
	"flickdash/internal/tui/styles"
)

// Weight tiers for cloud words, heaviest first
var cloudTiers = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(styles.NetflixRed).Bold(true),
	lipgloss.NewStyle().Foreground(styles.Red).Bold(true),
	lipgloss.NewStyle().Foreground(styles.White),
	lipgloss.NewStyle().Foreground(styles.LightGray),
	lipgloss.NewStyle().Foreground(styles.DimGray),
}

// RenderWordCloud renders word frequencies as a flowed tag cloud.
// Terminals have one glyph size, so weight is carried by color and
// boldness tiers instead; the heaviest words come first in reading
// order and carry their counts.
func RenderWordCloud(title string, words []stats.Count, width int) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(styles.AccentStyle.Render(title))
		b.WriteString("\n\n")
	}

	if len(words) == 0 {
		b.WriteString(styles.DimStyle.Render("no data"))
		return b.String()
	}

	max := words[0].N
	min := words[len(words)-1].N
	span := max - min
	if span == 0 {
		span = 1
	}

	lineLen := 0
	for _, w := range words {
		tier := (max - w.N) * len(cloudTiers) / (span + 1)
		if tier >= len(cloudTiers) {
			tier = len(cloudTiers) - 1
		}

		text := w.Key
		if tier == 0 {
			text = fmt.Sprintf("%s(%d)", w.Key, w.N)
		}

		if lineLen > 0 && lineLen+len(text)+2 > width {
			b.WriteString("\n")
			lineLen = 0
		}
		if lineLen > 0 {
			b.WriteString("  ")
			lineLen += 2
		}
		b.WriteString(cloudTiers[tier].Render(text))
		lineLen += len(text)
	}

	return b.String()
}

// RenderHistogram renders a title-length histogram, one bar per bin
func RenderHistogram(title string, bins []stats.HistBin, width int) string {
	counts := make([]stats.Count, len(bins))
	for i, bin := range bins {
		counts[i] = stats.Count{
			Key: fmt.Sprintf("%d-%d", bin.Lo, bin.Hi-1),
			N:   bin.N,
		}
	}
	return RenderBarChart(title, counts, width, styles.BarStyle)
}
