package components

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flickdash/internal/tui/styles"
)

// View identifies one analysis view in the sidebar
type View struct {
	ID   string // stable identifier, persisted in the session
	Name string // display name
	Hint string // one-line description shown under the name
}

// viewItem implements list.Item for views
type viewItem struct {
	view View
}

func (i viewItem) FilterValue() string { return i.view.Name }
func (i viewItem) Title() string       { return i.view.Name }
func (i viewItem) Description() string { return i.view.Hint }

// Border overhead for the sidebar panel
const BorderSize = 2

// Sidebar is the analysis-view selector
type Sidebar struct {
	list    list.Model
	focused bool
	width   int
	height  int
	views   []View
}

// NewSidebar creates a sidebar over the given views
func NewSidebar(views []View) Sidebar {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.White).
		Background(styles.SlateLight).
		Padding(0, 1)
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(styles.LightGray).
		Padding(0, 1)

	items := make([]list.Item, len(views))
	for i, v := range views {
		items[i] = viewItem{view: v}
	}

	l := list.New(items, delegate, 0, 0)
	l.Title = "Analysis"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(styles.NetflixRed).
		Bold(true).
		Padding(0, 1)

	return Sidebar{list: l, views: views}
}

// SetSize updates the component dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.list.SetSize(width-BorderSize, height-BorderSize)
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s Sidebar) IsFocused() bool {
	return s.focused
}

// Selected returns the currently selected view
func (s Sidebar) Selected() View {
	item := s.list.SelectedItem()
	if item == nil {
		return View{}
	}
	return item.(viewItem).view
}

// Select moves the selection to the view with the given ID
func (s *Sidebar) Select(id string) {
	for i, v := range s.views {
		if v.ID == id {
			s.list.Select(i)
			return
		}
	}
}

// Update handles messages
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	if !s.focused {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			s.list.CursorDown()
		case "k", "up":
			s.list.CursorUp()
		case "g":
			s.list.Select(0)
		case "G":
			s.list.Select(len(s.list.Items()) - 1)
		}
	}

	return s, nil
}

// View renders the component
func (s Sidebar) View() string {
	style := styles.InactiveBorder
	if s.focused {
		style = styles.ActiveBorder
	}

	frameW, frameH := style.GetFrameSize()

	return style.
		Width(s.width - frameW).
		Height(s.height - frameH).
		Render(s.list.View())
}
