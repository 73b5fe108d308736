package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flickdash/internal/domain"
)

func browserWith(names ...string) Browser {
	titles := make([]domain.Title, len(names))
	for i, n := range names {
		titles[i] = domain.Title{ID: n, Name: n, Type: domain.TypeMovie}
	}
	b := NewBrowser()
	b.SetSize(40, 20)
	b.SetTitles(titles)
	return b
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{}
}

func TestBrowserNavigation(t *testing.T) {
	b := browserWith("Alpha", "Beta", "Gamma")

	require.NotNil(t, b.Selected())
	assert.Equal(t, "Alpha", b.Selected().Name)

	b, _ = b.Update(keyMsg("j"))
	assert.Equal(t, "Beta", b.Selected().Name)

	b, _ = b.Update(keyMsg("G"))
	assert.Equal(t, "Gamma", b.Selected().Name)

	// Cursor clamps at the end
	b, _ = b.Update(keyMsg("j"))
	assert.Equal(t, "Gamma", b.Selected().Name)

	b, _ = b.Update(keyMsg("g"))
	assert.Equal(t, "Alpha", b.Selected().Name)
}

func TestBrowserFilter(t *testing.T) {
	b := browserWith("Stranger Things", "The Crown", "Strange Days")

	b.StartFilter()
	require.True(t, b.IsFilterTyping())

	for _, r := range "strange" {
		b, _ = b.Update(keyMsg(string(r)))
	}

	assert.Equal(t, 2, b.Len())
	require.NotNil(t, b.Selected())
	assert.Contains(t, b.Selected().Name, "Strange")

	// Enter keeps the filter applied but stops capturing keys
	b, _ = b.Update(keyMsg("enter"))
	assert.False(t, b.IsFilterTyping())
	assert.True(t, b.IsFiltering())
	assert.Equal(t, 2, b.Len())
}

func TestBrowserFilterRanksClosestFirst(t *testing.T) {
	b := browserWith("Stranger Things", "Strange Days")

	b.StartFilter()
	for _, r := range "strange" {
		b, _ = b.Update(keyMsg(string(r)))
	}

	require.Equal(t, 2, b.Len())
	// The shorter edit distance to the query wins the top slot
	assert.Equal(t, "Strange Days", b.Selected().Name)
}

func TestBrowserFilterEscClears(t *testing.T) {
	b := browserWith("Alpha", "Beta")

	b.StartFilter()
	b, _ = b.Update(keyMsg("a"))
	b, _ = b.Update(keyMsg("esc"))

	assert.False(t, b.IsFiltering())
	assert.Equal(t, 2, b.Len())
}

func TestBrowserFilterBackspace(t *testing.T) {
	b := browserWith("Alpha", "Beta")

	b.StartFilter()
	b, _ = b.Update(keyMsg("x"))
	assert.Equal(t, 0, b.Len())

	b, _ = b.Update(keyMsg("backspace"))
	assert.Equal(t, 2, b.Len())
}

func TestBrowserSelectTitle(t *testing.T) {
	b := browserWith("Alpha", "Beta", "Gamma")

	b.SelectTitle("Gamma")
	require.NotNil(t, b.Selected())
	assert.Equal(t, "Gamma", b.Selected().Name)

	// Unknown keys leave the selection unchanged
	b.SelectTitle("missing")
	assert.Equal(t, "Gamma", b.Selected().Name)
}

func TestBrowserEmpty(t *testing.T) {
	b := NewBrowser()
	b.SetSize(40, 20)

	assert.Nil(t, b.Selected())
	assert.NotPanics(t, func() { b.View(true) })
}
