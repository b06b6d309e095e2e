package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dailyart/internal/acquire"
	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/favorites"
	"github.com/mmcdole/dailyart/internal/preferences"
	"github.com/mmcdole/dailyart/internal/recommend"
	"github.com/mmcdole/dailyart/internal/session"
	"github.com/mmcdole/dailyart/internal/tui/components"
	"github.com/mmcdole/dailyart/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateEditing
	StateHelp
	StateConfirmReset
)

// Screen is one of the top-level tabs
type Screen int

const (
	ScreenDaily Screen = iota
	ScreenRecommendations
	ScreenFavorites
	ScreenPreferences
)

var screenTitles = []string{"Today", "Recommended", "Favorites", "Preferences"}

// ChromeHeight is the tab bar plus the footer line
const ChromeHeight = 3

// Services bundles what the UI calls into
type Services struct {
	Acquire     *acquire.Service
	Recommend   *recommend.Engine
	Favorites   *favorites.Service
	Preferences *preferences.Service
	Session     *session.Service
	Opener      Opener
	Logger      *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State  ApplicationState
	Screen Screen
	Ready  bool

	svc  Services
	keys KeyMap

	// UI Components
	Spinner    spinner.Model
	Detail     viewport.Model
	RecsList   components.ArtworkList
	FavsList   components.ArtworkList
	InputModal components.InputModal

	// Data
	Current     *domain.Artwork // artwork shown on the daily screen
	Favorites   []domain.Artwork
	Preferences domain.Preferences
	PrefCursor  int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	Loading     bool
}

// NewModel creates a new application model
func NewModel(svc Services) Model {
	if svc.Logger == nil {
		svc.Logger = slog.Default()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := Model{
		State:       StateBrowsing,
		Screen:      ScreenDaily,
		svc:         svc,
		keys:        DefaultKeyMap(),
		Spinner:     sp,
		Detail:      viewport.New(0, 0),
		RecsList:    components.NewArtworkList("Nothing to recommend yet. Press r to see more artworks."),
		FavsList:    components.NewArtworkList("No favorites yet. Press f on an artwork to add it."),
		InputModal:  components.NewInputModal(),
		Favorites:   svc.Favorites.List(),
		Preferences: svc.Preferences.Get(),
		Loading:     true,
	}
	m.FavsList.SetMatcher(svc.Favorites.Search)

	// Paint today's cached artwork without waiting on the network
	if entry, ok := svc.Acquire.Today(); ok {
		art := entry.Artwork
		m.Current = &art
		m.Loading = false
		svc.Session.Pool().Add(art)
	}
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if !m.Loading {
		return nil
	}
	return tea.Batch(
		LoadDailyCmd(m.svc.Acquire, m.Preferences),
		m.Spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case ArtworkLoadedMsg:
		art := msg.Artwork
		m.Current = &art
		m.Loading = false
		m.svc.Session.Pool().Add(art)
		if msg.Refreshed {
			m.setStatus(fmt.Sprintf("New artwork: %s", art.Title), false)
		} else {
			m.setStatus("", false)
		}
		m.Detail.GotoTop()
		m.refreshViews()
		return m, nil

	case FavoritesChangedMsg:
		m.Favorites = msg.Favorites
		if msg.Added {
			m.setStatus("Added to favorites", false)
		} else {
			m.setStatus("Removed from favorites", false)
		}
		m.refreshViews()
		return m, nil

	case PreferencesSavedMsg:
		m.Preferences = msg.Preferences
		m.setStatus("Preferences saved. Press r for a matching artwork.", false)
		m.refreshViews()
		return m, nil

	case OpenedMsg:
		m.setStatus("Opened in viewer", false)
		return m, nil

	case ResetDoneMsg:
		m.Favorites = nil
		m.Preferences = domain.Preferences{}
		m.Current = nil
		m.Loading = true
		m.setStatus("Local data cleared", false)
		m.refreshViews()
		return m, tea.Batch(LoadDailyCmd(m.svc.Acquire, m.Preferences), m.Spinner.Tick)

	case ErrMsg:
		m.Loading = false
		m.svc.Logger.Error("ui error", "context", msg.Context, "error", msg.Err)
		if errors.Is(msg.Err, domain.ErrUnavailable) {
			m.setStatus("No artwork with an image is available right now. Press r to retry.", true)
		} else if domain.IsUpstream(msg.Err) {
			m.setStatus("The collection service is not responding ("+msg.Context+"). Press r to retry.", true)
		} else {
			m.setStatus(msg.Error(), true)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
}

// isFavorite checks the in-memory favorites snapshot
func (m Model) isFavorite(id string) bool {
	for _, f := range m.Favorites {
		if f.ID == id {
			return true
		}
	}
	return false
}

// refreshViews rebuilds derived content after data changes
func (m *Model) refreshViews() {
	if m.Current != nil {
		m.Detail.SetContent(components.RenderArtwork(*m.Current, m.isFavorite(m.Current.ID), m.Width))
	} else {
		m.Detail.SetContent("")
	}

	scored := m.svc.Recommend.Rank(m.svc.Session.Pool().Items(), m.Favorites, m.Preferences)
	recs := make([]components.ListEntry, len(scored))
	for i, s := range scored {
		recs[i] = components.ListEntry{Artwork: s.Artwork, Detail: fmt.Sprintf("%5.1f", s.Score)}
	}
	m.RecsList.SetEntries(recs)

	favs := make([]components.ListEntry, len(m.Favorites))
	for i, f := range m.Favorites {
		favs[i] = components.ListEntry{Artwork: f, Favorite: true, Detail: f.Date}
	}
	m.FavsList.SetEntries(favs)
}

// updateLayout sizes components to the terminal
func (m *Model) updateLayout() {
	contentHeight := m.Height - ChromeHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.Detail.Width = m.Width
	m.Detail.Height = contentHeight
	m.RecsList.SetSize(m.Width, contentHeight)
	m.FavsList.SetSize(m.Width, contentHeight)
	m.refreshViews()
}

// activeList returns the list on the current screen, if any
func (m *Model) activeList() *components.ArtworkList {
	switch m.Screen {
	case ScreenRecommendations:
		return &m.RecsList
	case ScreenFavorites:
		return &m.FavsList
	default:
		return nil
	}
}

// focusedArtwork is the artwork key actions apply to on the current screen
func (m Model) focusedArtwork() (domain.Artwork, bool) {
	if l := m.activeList(); l != nil {
		return l.Selected()
	}
	if m.Screen == ScreenDaily && m.Current != nil {
		return *m.Current, true
	}
	return domain.Artwork{}, false
}
