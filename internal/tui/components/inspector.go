package components

import (
	"fmt"
	"strings"

	"flickdash/internal/domain"
	"flickdash/internal/tui/styles"
)

// Inspector renders the detail panel for the title under the browser
// cursor.
type Inspector struct {
	width  int
	height int
}

// NewInspector creates an empty inspector
func NewInspector() Inspector {
	return Inspector{}
}

// SetSize updates the component dimensions
func (c *Inspector) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// View renders the detail panel for t, or a placeholder when nil
func (c Inspector) View(t *domain.Title) string {
	frameW, frameH := styles.InactiveBorder.GetFrameSize()
	innerWidth := c.width - frameW - 2

	var b strings.Builder
	if t == nil {
		b.WriteString(styles.DimStyle.Render("select a title"))
	} else {
		c.renderTitle(&b, t, innerWidth)
	}

	return styles.InactiveBorder.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(b.String())
}

func (c Inspector) renderTitle(b *strings.Builder, t *domain.Title, width int) {
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(t.Name, width)))
	b.WriteString("\n")
	b.WriteString(styles.AccentStyle.Render(t.Type.String()))
	if t.ReleaseYear > 0 {
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("  %d", t.ReleaseYear)))
	}
	if t.Rating != "" {
		b.WriteString(styles.SubtitleStyle.Render("  " + t.Rating))
	}
	if dur := t.FormattedDuration(); dur != "" {
		b.WriteString(styles.SubtitleStyle.Render("  " + dur))
	}
	b.WriteString("\n\n")

	c.field(b, "Director", t.Director, width)
	c.field(b, "Cast", strings.Join(t.Cast, ", "), width)
	c.field(b, "Country", strings.Join(t.Countries, ", "), width)
	c.field(b, "Genres", strings.Join(t.Genres, ", "), width)
	if t.HasDateAdded() {
		c.field(b, "Added", t.FormattedDateAdded(), width)
	}

	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Width(width).Render(t.Description))
	}
}

func (c Inspector) field(b *strings.Builder, label, value string, width int) {
	if value == "" {
		return
	}
	b.WriteString(styles.DimStyle.Render(label + ": "))
	b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(value, width-len(label)-2)))
	b.WriteString("\n")
}
