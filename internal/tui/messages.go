package tui

import "flickdash/internal/catalog"

// CatalogLoadedMsg carries the parsed catalog snapshot
type CatalogLoadedMsg struct {
	Snapshot *catalog.Snapshot
	Forced   bool
}

// ErrMsg wraps an error with the operation that produced it
type ErrMsg struct {
	Err     error
	Context string
}

func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// TickMsg drives the loading spinner
type TickMsg struct{}

// StatusMsg shows a transient message in the footer
type StatusMsg struct {
	Text    string
	IsError bool
}

// ClearStatusMsg clears the footer status line
type ClearStatusMsg struct{}

// SessionSavedMsg confirms the session state was persisted
type SessionSavedMsg struct{}
