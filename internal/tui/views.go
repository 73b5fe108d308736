package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"flickdash/internal/domain"
	"flickdash/internal/stats"
	"flickdash/internal/tui/components"
	"flickdash/internal/tui/styles"
)

func (m Model) renderHeader() string {
	left := styles.AccentStyle.Bold(true).Render(" flickdash ")

	right := ""
	if m.snapshot != nil {
		right = styles.DimStyle.Render(fmt.Sprintf("%s  %d titles ", m.snapshot.Path, len(m.snapshot.Titles)))
	} else if m.loading {
		right = styles.RenderSpinner(m.spinnerFrame) + styles.DimStyle.Render(" loading catalog... ")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	return left + styles.Spaces(gap) + right
}

func (m Model) renderFooter() string {
	if m.status != "" {
		style := styles.SuccessStyle
		if m.statusError {
			style = styles.ErrorStyle
		}
		return " " + style.Render(styles.Truncate(m.status, m.width-2))
	}

	hints := "tab focus  f search  r reload  ? help  q quit"
	switch m.currentView() {
	case ViewGenres:
		hints = "+/- top-n  " + hints
	case ViewTrends:
		hints = "t chart  " + hints
	case ViewWords:
		hints = "m movies/tv  " + hints
	case ViewBrowse:
		hints = "/ filter  j/k move  " + hints
	}
	return " " + styles.DimStyle.Render(hints)
}

// renderContent renders the selected analysis view in the main panel
func (m Model) renderContent() string {
	bodyHeight := m.height - 2
	contentWidth := m.width - sidebarWidth

	if m.currentView() == ViewBrowse {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.browser.View(m.focus == focusContent),
			m.inspector.View(m.browser.Selected()),
		)
	}

	style := styles.InactiveBorder
	if m.focus == focusContent {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	innerWidth := contentWidth - frameW - 2
	innerHeight := bodyHeight - frameH

	var body string
	switch {
	case m.loading:
		body = styles.RenderSpinner(m.spinnerFrame) + styles.DimStyle.Render(" loading catalog...")
	case m.snapshot == nil:
		body = styles.DimStyle.Render("no catalog loaded  (r to retry)")
	default:
		titles := m.snapshot.Titles
		switch m.currentView() {
		case ViewOverview:
			body = m.renderOverview(titles, innerWidth)
		case ViewGenres:
			body = m.renderGenres(titles, innerWidth)
		case ViewTrends:
			body = m.renderTrends(titles, innerWidth)
		case ViewDirectors:
			body = m.renderDirectors(titles, innerWidth, innerHeight)
		case ViewWords:
			body = m.renderWords(titles, innerWidth)
		}
	}

	return style.
		Width(contentWidth - frameW).
		Height(innerHeight).
		Render(body)
}

func (m Model) renderOverview(titles []domain.Title, width int) string {
	sum := stats.Summarize(titles)

	latest := "-"
	if sum.LatestYearAdded > 0 {
		latest = fmt.Sprintf("%d", sum.LatestYearAdded)
	}
	cards := components.RenderMetricCards([]components.Metric{
		components.IntMetric("Total Titles", sum.Total),
		components.IntMetric("Movies", sum.Movies),
		components.IntMetric("TV Shows", sum.Shows),
		{Label: "Latest Year Added", Value: latest},
	}, width)

	typeBar := components.RenderProportionBar("Content Type Split", stats.CountTypes(titles), width)
	ratings := components.RenderBarChart("Top 10 Content Ratings", stats.TopRatings(titles, 10), width, styles.BarStyle)

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", typeBar, "", ratings)
}

func (m Model) renderGenres(titles []domain.Title, width int) string {
	chart := components.RenderBarChart(
		fmt.Sprintf("Top %d Genres", m.topGenres),
		stats.TopGenres(titles, m.topGenres),
		width, styles.BarStyle,
	)

	in := stats.SummarizeGenres(titles)
	insights := lipgloss.JoinVertical(lipgloss.Left,
		styles.AccentStyle.Render("Genre Insights"),
		"",
		styles.DimStyle.Render("Unique genres: ")+styles.TitleStyle.Render(fmt.Sprintf("%d", in.Unique)),
		styles.DimStyle.Render("Most popular:  ")+styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", in.Top, in.TopCount)),
		styles.DimStyle.Render("Mean per genre: ")+styles.TitleStyle.Render(fmt.Sprintf("%.1f", in.MeanPerGenre)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, chart, "", insights)
}

func (m Model) renderTrends(titles []domain.Title, width int) string {
	switch m.trendMode {
	case 1:
		return components.RenderMonthTrend("Additions by Calendar Month", stats.AddedByMonth(titles), width)
	case 2:
		return components.RenderTypeTrend("Yearly Growth by Content Type", stats.AddedByYearType(titles), width)
	default:
		return components.RenderYearTrend("Titles Added per Year", stats.AddedByYear(titles), width)
	}
}

func (m Model) renderDirectors(titles []domain.Title, width, height int) string {
	directors := components.RenderBarChart("Top 15 Directors", stats.TopDirectors(titles, 15), width, styles.BarStyle)

	mapHeight := height - 18 // directors chart rows + spacing
	if mapHeight < 6 {
		mapHeight = 6
	}
	countries := components.RenderTreemap("Content by Country", stats.TopCountries(titles, 15), width, mapHeight)

	return lipgloss.JoinVertical(lipgloss.Left, directors, "", countries)
}

func (m Model) renderWords(titles []domain.Title, width int) string {
	label := "Movie Titles"
	if m.cloudType == domain.TypeShow {
		label = "TV Show Titles"
	}

	cloud := components.RenderWordCloud(
		fmt.Sprintf("Most Common Words in %s", label),
		stats.TitleWords(titles, m.cloudType, stats.MaxCloudWords),
		width,
	)
	hist := components.RenderHistogram(
		fmt.Sprintf("%s Length (characters)", label),
		stats.TitleLengthHistogram(titles, m.cloudType, 5),
		width,
	)

	return lipgloss.JoinVertical(lipgloss.Left, cloud, "", hist)
}

func (m Model) renderHelp() string {
	row := func(key, desc string) string {
		return styles.HelpKeyStyle.Render(styles.Pad(key, 10)) + styles.HelpDescStyle.Render(desc)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Keybindings"),
		row("j/k", "move selection"),
		row("g/G", "jump to top / bottom"),
		row("tab h l", "switch focus between sidebar and view"),
		row("enter", "open the selected view"),
		row("f", "fuzzy search all titles"),
		row("/", "filter the browse list"),
		row("+/-", "grow / shrink the genre chart"),
		row("t", "cycle trend charts"),
		row("m", "toggle movie / tv word cloud"),
		row("r", "reload the catalog from disk"),
		row("?", "toggle this help"),
		row("q", "quit"),
		"",
		styles.DimStyle.Render("press any key to close"),
	)

	modal := styles.ModalStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
