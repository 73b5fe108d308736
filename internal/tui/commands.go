package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flickdash/internal/catalog"
	"flickdash/internal/store"
)

// LoadCatalogCmd loads the catalog snapshot off the UI loop
func LoadCatalogCmd(svc *catalog.Service, force bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snap, err := svc.Load(ctx, force)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading catalog"}
		}
		return CatalogLoadedMsg{Snapshot: snap, Forced: force}
	}
}

// TickCmd drives the spinner while loading
func TickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the footer status after a delay
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// SaveSessionCmd persists the UI session state. A nil store is a no-op.
func SaveSessionCmd(st *store.Store, sess store.Session) tea.Cmd {
	return func() tea.Msg {
		if st == nil {
			return nil
		}
		if err := st.SaveSession(sess); err != nil {
			return ErrMsg{Err: err, Context: "saving session"}
		}
		return SessionSavedMsg{}
	}
}
