package tui

import (
	"github.com/mmcdole/dailyart/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ArtworkLoadedMsg signals that an artwork has been resolved
type ArtworkLoadedMsg struct {
	Artwork   domain.Artwork
	Refreshed bool // true for an explicit refresh, false for the daily pick
}

// FavoritesChangedMsg carries the favorites after a mutation
type FavoritesChangedMsg struct {
	Favorites []domain.Artwork
	ID        string
	Added     bool
}

// PreferencesSavedMsg carries the preferences after an edit
type PreferencesSavedMsg struct {
	Preferences domain.Preferences
}

// OpenedMsg signals that a URL was handed to the external viewer
type OpenedMsg struct {
	URL string
}

// ResetDoneMsg signals that local data was wiped
type ResetDoneMsg struct{}
