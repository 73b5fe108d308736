package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	NetflixRed = lipgloss.Color("#E50914")
	Charcoal   = lipgloss.Color("#221F1F")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(NetflixRed)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(NetflixRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(NetflixRed).
			Padding(0, 1)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(NetflixRed).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(NetflixRed)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Chart styles
var (
	BarStyle = lipgloss.NewStyle().
			Foreground(NetflixRed)

	BarAltStyle = lipgloss.NewStyle().
			Foreground(Blue)

	BarEmptyStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AxisStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style and frames
var (
	SpinnerStyle  = lipgloss.NewStyle().Foreground(NetflixRed)
	SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// Match highlight style for search results
var MatchHighlightStyle = lipgloss.NewStyle().
	Foreground(NetflixRed).
	Bold(true)

// Helper functions

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + Spaces(width-len(runes))
}

// Spaces returns n spaces
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// Bar renders a horizontal bar of the given cell width scaled to
// value/max, using full blocks with a light-shade remainder.
func Bar(value, max, width int) string {
	if width <= 0 || max <= 0 || value <= 0 {
		return ""
	}
	filled := value * width / max
	if filled == 0 {
		filled = 1 // non-zero values always show
	}
	if filled > width {
		filled = width
	}
	out := ""
	for i := 0; i < filled; i++ {
		out += "█"
	}
	return out
}

// RenderSpinner renders a loading spinner frame
func RenderSpinner(frame int) string {
	return SpinnerStyle.Render(SpinnerFrames[frame%len(SpinnerFrames)])
}
