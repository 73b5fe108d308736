package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flickdash/internal/domain"
	"flickdash/internal/search"
	"flickdash/internal/tui/styles"
)

const omnibarMaxResults = 12

// Omnibar is the global fuzzy-search modal. It queries the search
// service on every keystroke and highlights matched characters in the
// result list.
type Omnibar struct {
	searcher *search.Service
	input    textinput.Model

	results []search.Result
	cursor  int

	open   bool
	width  int
	height int
}

// NewOmnibar creates the search modal bound to a search service
func NewOmnibar(searcher *search.Service) Omnibar {
	ti := textinput.New()
	ti.Placeholder = "search titles..."
	ti.Prompt = styles.AccentStyle.Render("> ")
	ti.CharLimit = 80

	return Omnibar{
		searcher: searcher,
		input:    ti,
	}
}

// SetSize updates the terminal dimensions the modal centers within
func (c *Omnibar) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// IsOpen reports whether the modal is showing
func (c Omnibar) IsOpen() bool {
	return c.open
}

// Open shows the modal with an empty query
func (c *Omnibar) Open() tea.Cmd {
	c.open = true
	c.results = nil
	c.cursor = 0
	c.input.SetValue("")
	return c.input.Focus()
}

// Close hides the modal
func (c *Omnibar) Close() {
	c.open = false
	c.input.Blur()
}

// Selected returns the result under the cursor, nil when none
func (c Omnibar) Selected() *domain.Title {
	if len(c.results) == 0 || c.cursor >= len(c.results) {
		return nil
	}
	return &c.results[c.cursor].Title
}

// Update handles keys while the modal is open
func (c Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd) {
	if !c.open {
		return c, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			c.Close()
			return c, nil
		case "down", "ctrl+n":
			if c.cursor < len(c.results)-1 {
				c.cursor++
			}
			return c, nil
		case "up", "ctrl+p":
			if c.cursor > 0 {
				c.cursor--
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	before := c.input.Value()
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() != before {
		c.results = c.searcher.Query(c.input.Value())
		if len(c.results) > omnibarMaxResults {
			c.results = c.results[:omnibarMaxResults]
		}
		c.cursor = 0
	}
	return c, cmd
}

// View renders the modal centered in the terminal
func (c Omnibar) View() string {
	modalWidth := c.width * 2 / 3
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > c.width-4 {
		modalWidth = c.width - 4
	}
	innerWidth := modalWidth - 6 // modal padding + border

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(c.input.View())
	b.WriteString("\n\n")

	if c.input.Value() == "" {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%d titles indexed", c.searcher.Count())))
	} else if len(c.results) == 0 {
		b.WriteString(styles.DimStyle.Render("no matches"))
	} else {
		for i, r := range c.results {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(c.renderResult(r, i == c.cursor, innerWidth))
		}
	}

	modal := styles.ModalStyle.Width(modalWidth).Render(b.String())
	return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderResult renders one hit, bolding the matched characters
func (c Omnibar) renderResult(r search.Result, selected bool, width int) string {
	matched := make(map[int]bool, len(r.MatchedIndexes))
	for _, idx := range r.MatchedIndexes {
		matched[idx] = true
	}

	base := styles.SubtitleStyle
	if selected {
		base = styles.TitleStyle
	}

	var name strings.Builder
	for i, ch := range []rune(r.Title.Name) {
		if matched[i] {
			name.WriteString(styles.MatchHighlightStyle.Render(string(ch)))
		} else {
			name.WriteString(base.Render(string(ch)))
		}
	}

	meta := r.Title.Type.String()
	if r.Title.ReleaseYear > 0 {
		meta = fmt.Sprintf("%s, %d", meta, r.Title.ReleaseYear)
	}

	marker := "  "
	if selected {
		marker = styles.AccentStyle.Render("▸ ")
	}
	return marker + name.String() + styles.DimStyle.Render("  "+styles.Truncate(meta, width/3))
}
