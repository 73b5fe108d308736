package components

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"flickdash/internal/domain"
	"flickdash/internal/tui/styles"
)

// Browser is the catalog list column with inline fuzzy filtering
type Browser struct {
	titles []domain.Title

	// filtered holds indexes into titles; nil = no filter active
	filtered     []int
	filterQuery  string
	filterTyping bool

	cursor int
	offset int
	width  int
	height int
}

// NewBrowser creates a browser over the catalog titles
func NewBrowser() Browser {
	return Browser{}
}

// SetTitles replaces the catalog contents
func (c *Browser) SetTitles(titles []domain.Title) {
	c.titles = titles
	c.cursor = 0
	c.offset = 0
	c.ClearFilter()
}

// SetSize updates the component dimensions
func (c *Browser) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Len returns the number of visible (filtered) rows
func (c Browser) Len() int {
	if c.filtered != nil {
		return len(c.filtered)
	}
	return len(c.titles)
}

// Selected returns the title under the cursor, nil when empty
func (c Browser) Selected() *domain.Title {
	n := c.Len()
	if n == 0 || c.cursor >= n {
		return nil
	}
	if c.filtered != nil {
		return &c.titles[c.filtered[c.cursor]]
	}
	return &c.titles[c.cursor]
}

// IsFilterTyping reports whether keystrokes belong to the filter input
func (c Browser) IsFilterTyping() bool {
	return c.filterTyping
}

// IsFiltering reports whether a filter is applied
func (c Browser) IsFiltering() bool {
	return c.filterQuery != ""
}

// SelectTitle clears any filter and moves the cursor to the title
// with the given key. Used when a search hit jumps into the browser.
func (c *Browser) SelectTitle(key string) {
	c.ClearFilter()
	for i, t := range c.titles {
		if t.Key() == key {
			c.cursor = i
			c.offset = 0
			c.moveCursor(0)
			return
		}
	}
}

// StartFilter enters filter-typing mode
func (c *Browser) StartFilter() {
	c.filterTyping = true
}

// ClearFilter removes the filter and shows the full catalog
func (c *Browser) ClearFilter() {
	c.filterQuery = ""
	c.filtered = nil
	c.filterTyping = false
	c.clampCursor()
}

// applyFilter recomputes the filtered index set for the current query,
// closest match first.
func (c *Browser) applyFilter() {
	if c.filterQuery == "" {
		c.filtered = nil
		c.clampCursor()
		return
	}

	names := make([]string, len(c.titles))
	for i, t := range c.titles {
		names[i] = t.Name
	}
	matches := fuzzy.RankFindFold(c.filterQuery, names)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	c.filtered = make([]int, len(matches))
	for i, m := range matches {
		c.filtered[i] = m.OriginalIndex
	}
	c.cursor = 0
	c.offset = 0
}

func (c *Browser) clampCursor() {
	if n := c.Len(); c.cursor >= n {
		c.cursor = n - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// visibleRows returns how many list rows fit in the panel
func (c Browser) visibleRows() int {
	rows := c.height - 3 // title line, filter line, border slack
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Update handles keys when the browser is focused
func (c Browser) Update(msg tea.Msg) (Browser, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.filterTyping {
		switch key.String() {
		case "enter", "esc":
			c.filterTyping = false
			if key.String() == "esc" {
				c.ClearFilter()
			}
		case "backspace":
			if len(c.filterQuery) > 0 {
				runes := []rune(c.filterQuery)
				c.filterQuery = string(runes[:len(runes)-1])
				c.applyFilter()
			}
		default:
			if len(key.Runes) > 0 {
				c.filterQuery += string(key.Runes)
				c.applyFilter()
			}
		}
		return c, nil
	}

	switch key.String() {
	case "j", "down":
		c.moveCursor(1)
	case "k", "up":
		c.moveCursor(-1)
	case "ctrl+d", "pgdown":
		c.moveCursor(c.visibleRows())
	case "ctrl+u", "pgup":
		c.moveCursor(-c.visibleRows())
	case "g":
		c.cursor = 0
		c.offset = 0
	case "G":
		c.cursor = c.Len() - 1
		c.clampCursor()
	}
	return c, nil
}

func (c *Browser) moveCursor(delta int) {
	c.cursor += delta
	c.clampCursor()

	rows := c.visibleRows()
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+rows {
		c.offset = c.cursor - rows + 1
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

// View renders the component
func (c Browser) View(focused bool) string {
	style := styles.InactiveBorder
	if focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	contentWidth := c.width - frameW - 2

	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render(fmt.Sprintf("Titles (%d)", c.Len())))
	b.WriteString("\n")

	if c.filterTyping || c.filterQuery != "" {
		prompt := styles.AccentStyle.Render("/") + c.filterQuery
		if c.filterTyping {
			prompt += styles.AccentStyle.Render("▌")
		}
		b.WriteString(prompt)
	}
	b.WriteString("\n")

	rows := c.visibleRows()
	n := c.Len()
	for row := c.offset; row < c.offset+rows && row < n; row++ {
		var t domain.Title
		if c.filtered != nil {
			t = c.titles[c.filtered[row]]
		} else {
			t = c.titles[row]
		}
		b.WriteString(c.renderRow(t, row == c.cursor, contentWidth))
		b.WriteString("\n")
	}
	if n == 0 {
		b.WriteString(styles.DimStyle.Render("no matching titles"))
	}

	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(b.String())
}

func (c Browser) renderRow(t domain.Title, selected bool, width int) string {
	icon := "🎬"
	if t.Type == domain.TypeShow {
		icon = "📺"
	}

	name := t.Name
	if t.ReleaseYear > 0 {
		name = fmt.Sprintf("%s (%d)", t.Name, t.ReleaseYear)
	}
	name = styles.Truncate(name, width-8)

	rowStyle := styles.NormalItemStyle
	if selected {
		rowStyle = styles.SelectedItemStyle
	}
	return rowStyle.Width(width).Render(fmt.Sprintf("%s %s", icon, name))
}
