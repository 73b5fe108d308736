// Package tui implements the terminal dashboard: a sidebar of
// analysis views on the left and the selected view's charts on the
// right, following the Elm architecture.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flickdash/internal/catalog"
	"flickdash/internal/config"
	"flickdash/internal/domain"
	"flickdash/internal/search"
	"flickdash/internal/store"
	"flickdash/internal/tui/components"
)

// Focus targets
const (
	focusSidebar = iota
	focusContent
)

// View IDs, also the values persisted in the session
const (
	ViewOverview  = "overview"
	ViewGenres    = "genres"
	ViewTrends    = "trends"
	ViewDirectors = "directors"
	ViewWords     = "words"
	ViewBrowse    = "browse"
)

const sidebarWidth = 26

// Top-N bounds for the genre chart
const (
	topGenresMin = 5
	topGenresMax = 20
)

var analysisViews = []components.View{
	{ID: ViewOverview, Name: "Overview", Hint: "Catalog totals and ratings"},
	{ID: ViewGenres, Name: "Content Analysis", Hint: "Genre distribution"},
	{ID: ViewTrends, Name: "Trends", Hint: "Additions over time"},
	{ID: ViewDirectors, Name: "Directors & Countries", Hint: "Top creators and origins"},
	{ID: ViewWords, Name: "Word Cloud", Hint: "Title word frequencies"},
	{ID: ViewBrowse, Name: "Browse", Hint: "Full catalog with details"},
}

// Model is the root bubbletea model
type Model struct {
	cfg      *config.Config
	logger   *slog.Logger
	catalog  *catalog.Service
	searcher *search.Service
	store    *store.Store // nil = no persistence

	sidebar   components.Sidebar
	browser   components.Browser
	inspector components.Inspector
	omnibar   components.Omnibar

	snapshot *catalog.Snapshot

	focus     int
	topGenres int
	cloudType domain.TitleType
	trendMode int // 0 yearly, 1 monthly, 2 by type

	width  int
	height int
	ready  bool

	loading      bool
	spinnerFrame int

	status      string
	statusError bool
	showHelp    bool
}

// NewModel builds the root model, restoring the persisted session
func NewModel(cfg *config.Config, cat *catalog.Service, searcher *search.Service, st *store.Store, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		cfg:       cfg,
		logger:    logger,
		catalog:   cat,
		searcher:  searcher,
		store:     st,
		sidebar:   components.NewSidebar(analysisViews),
		browser:   components.NewBrowser(),
		inspector: components.NewInspector(),
		omnibar:   components.NewOmnibar(searcher),
		focus:     focusSidebar,
		topGenres: cfg.UI.TopGenres,
		cloudType: domain.TypeMovie,
		loading:   true,
	}
	m.sidebar.SetFocused(true)
	m.sidebar.Select(cfg.UI.DefaultView)

	if st != nil {
		if sess, ok := st.GetSession(); ok {
			if sess.View != "" {
				m.sidebar.Select(sess.View)
			}
			if sess.TopGenres >= topGenresMin && sess.TopGenres <= topGenresMax {
				m.topGenres = sess.TopGenres
			}
		}
	}
	m.clampTopGenres()

	return m
}

func (m *Model) clampTopGenres() {
	if m.topGenres < topGenresMin {
		m.topGenres = topGenresMin
	}
	if m.topGenres > topGenresMax {
		m.topGenres = topGenresMax
	}
}

// Init starts the catalog load and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(LoadCatalogCmd(m.catalog, false), TickCmd())
}

// Update routes messages to the focused component
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case TickMsg:
		if m.loading {
			m.spinnerFrame++
			return m, TickCmd()
		}
		return m, nil

	case CatalogLoadedMsg:
		m.loading = false
		m.snapshot = msg.Snapshot
		m.browser.SetTitles(msg.Snapshot.Titles)
		m.searcher.Index(msg.Snapshot.Titles)
		m.logger.Info("catalog ready", "titles", len(msg.Snapshot.Titles))
		if msg.Forced {
			return m, m.setStatus("catalog reloaded", false)
		}
		return m, nil

	case ErrMsg:
		m.loading = false
		m.logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		return m, m.setStatus(msg.Error(), true)

	case StatusMsg:
		return m, m.setStatus(msg.Text, msg.IsError)

	case ClearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil

	case SessionSavedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The omnibar swallows everything while open
	if m.omnibar.IsOpen() {
		if key.String() == "enter" {
			if hit := m.omnibar.Selected(); hit != nil {
				m.omnibar.Close()
				m.sidebar.Select(ViewBrowse)
				m.browser.SelectTitle(hit.Key())
				m.setFocus(focusContent)
				return m, m.saveSession()
			}
		}
		var cmd tea.Cmd
		m.omnibar, cmd = m.omnibar.Update(key)
		return m, cmd
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Filter typing owns printable keys
	if m.focus == focusContent && m.currentView() == ViewBrowse && m.browser.IsFilterTyping() {
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(key)
		return m, cmd
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch key.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "f", "ctrl+f":
		return m, m.omnibar.Open()

	case "r":
		m.loading = true
		if m.store != nil {
			m.store.InvalidateSnapshot(m.catalog.Path())
		}
		return m, tea.Batch(LoadCatalogCmd(m.catalog, true), TickCmd())

	case "tab":
		if m.focus == focusSidebar {
			m.setFocus(focusContent)
		} else {
			m.setFocus(focusSidebar)
		}
		return m, nil

	case "h", "left":
		m.setFocus(focusSidebar)
		return m, nil

	case "l", "right", "enter":
		if m.focus == focusSidebar {
			m.setFocus(focusContent)
			return m, m.saveSession()
		}
	}

	if m.focus == focusSidebar {
		before := m.sidebar.Selected().ID
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(key)
		if m.sidebar.Selected().ID != before {
			return m, tea.Batch(cmd, m.saveSession())
		}
		return m, cmd
	}

	return m.handleViewKey(key)
}

// handleViewKey handles keys scoped to the focused content view
func (m Model) handleViewKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentView() {
	case ViewGenres:
		switch key.String() {
		case "+", "=":
			if m.topGenres < topGenresMax {
				m.topGenres++
				return m, m.saveSession()
			}
		case "-", "_":
			if m.topGenres > topGenresMin {
				m.topGenres--
				return m, m.saveSession()
			}
		}

	case ViewTrends:
		if key.String() == "t" {
			m.trendMode = (m.trendMode + 1) % 3
		}

	case ViewWords:
		if key.String() == "m" {
			if m.cloudType == domain.TypeMovie {
				m.cloudType = domain.TypeShow
			} else {
				m.cloudType = domain.TypeMovie
			}
		}

	case ViewBrowse:
		if key.String() == "/" {
			m.browser.StartFilter()
			return m, nil
		}
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(key)
		return m, cmd
	}

	return m, nil
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.sidebar.SetFocused(focus == focusSidebar)
}

func (m Model) currentView() string {
	return m.sidebar.Selected().ID
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.status = text
	m.statusError = isError
	return ClearStatusCmd()
}

// saveSession persists the current view and chart settings
func (m Model) saveSession() tea.Cmd {
	return SaveSessionCmd(m.store, store.Session{
		View:      m.currentView(),
		TopGenres: m.topGenres,
	})
}

// layout recomputes component sizes from the terminal dimensions
func (m *Model) layout() {
	bodyHeight := m.height - 2 // header + footer
	if bodyHeight < 4 {
		bodyHeight = 4
	}
	contentWidth := m.width - sidebarWidth

	m.sidebar.SetSize(sidebarWidth, bodyHeight)
	m.omnibar.SetSize(m.width, m.height)

	browserWidth := contentWidth * 2 / 5
	m.browser.SetSize(browserWidth, bodyHeight)
	m.inspector.SetSize(contentWidth-browserWidth, bodyHeight)
}

// View renders the full screen
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.omnibar.IsOpen() {
		return m.omnibar.View()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.renderContent())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}
