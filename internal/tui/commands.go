package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dailyart/internal/acquire"
	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/favorites"
	"github.com/mmcdole/dailyart/internal/preferences"
	"github.com/mmcdole/dailyart/internal/session"
)

// Command factories for async operations

// fetchTimeout bounds one acquisition, including retries and fallback
const fetchTimeout = 2 * time.Minute

// Opener opens a URL in an external viewer
type Opener interface {
	Open(url string) error
}

// LoadDailyCmd resolves today's artwork, from cache when possible
func LoadDailyCmd(svc *acquire.Service, prefs domain.Preferences) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		art, err := svc.DailyArtwork(ctx, prefs)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading today's artwork"}
		}
		return ArtworkLoadedMsg{Artwork: *art}
	}
}

// RefreshCmd fetches a new artwork and makes it today's
func RefreshCmd(svc *acquire.Service, prefs domain.Preferences) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		art, err := svc.Refresh(ctx, prefs)
		if err != nil {
			return ErrMsg{Err: err, Context: "fetching a new artwork"}
		}
		return ArtworkLoadedMsg{Artwork: *art, Refreshed: true}
	}
}

// ToggleFavoriteCmd flips the favorite state of an artwork
func ToggleFavoriteCmd(svc *favorites.Service, art domain.Artwork) tea.Cmd {
	return func() tea.Msg {
		added, err := svc.Toggle(art)
		if err != nil {
			return ErrMsg{Err: err, Context: "updating favorites"}
		}
		return FavoritesChangedMsg{Favorites: svc.List(), ID: art.ID, Added: added}
	}
}

// SetAxisCmd replaces one preference axis from comma-separated input
func SetAxisCmd(svc *preferences.Service, axis domain.Axis, input string) tea.Cmd {
	return func() tea.Msg {
		prefs, err := svc.SetAxis(axis, preferences.ParseTokens(input))
		if err != nil {
			return ErrMsg{Err: err, Context: "saving preferences"}
		}
		return PreferencesSavedMsg{Preferences: prefs}
	}
}

// OpenURLCmd hands a URL to the external viewer
func OpenURLCmd(opener Opener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return ErrMsg{Err: err, Context: "opening viewer"}
		}
		return OpenedMsg{URL: url}
	}
}

// ResetCmd wipes local data and the seen pool
func ResetCmd(svc *session.Service) tea.Cmd {
	return func() tea.Msg {
		svc.Reset()
		return ResetDoneMsg{}
	}
}
