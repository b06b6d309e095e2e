package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/preferences"
)

// handleKeyMsg routes key presses by application state
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateEditing:
		return m.handleEditingKeys(msg)
	case StateConfirmReset:
		return m.handleConfirmResetKeys(msg)
	case StateHelp:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.State = StateBrowsing
		return m, nil
	}

	if l := m.activeList(); l != nil && l.IsFiltering() {
		return m.handleFilterKeys(msg)
	}
	return m.handleBrowsingKeys(msg)
}

func (m Model) handleBrowsingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.Screen = (m.Screen + 1) % Screen(len(screenTitles))
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.Screen = (m.Screen + Screen(len(screenTitles)) - 1) % Screen(len(screenTitles))
		return m, nil

	case key.Matches(msg, m.keys.Daily):
		m.Screen = ScreenDaily
		return m, nil
	case key.Matches(msg, m.keys.Recs):
		m.Screen = ScreenRecommendations
		return m, nil
	case key.Matches(msg, m.keys.Favs):
		m.Screen = ScreenFavorites
		return m, nil
	case key.Matches(msg, m.keys.Prefs):
		m.Screen = ScreenPreferences
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		return m.moveCursor(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		return m.moveCursor(m.pageSize())

	case key.Matches(msg, m.keys.Refresh):
		if m.Loading {
			return m, nil
		}
		m.Loading = true
		m.setStatus("Fetching a new artwork...", false)
		return m, tea.Batch(RefreshCmd(m.svc.Acquire, m.Preferences), m.Spinner.Tick)

	case key.Matches(msg, m.keys.Favorite):
		art, ok := m.focusedArtwork()
		if !ok {
			return m, nil
		}
		return m, ToggleFavoriteCmd(m.svc.Favorites, art)

	case key.Matches(msg, m.keys.OpenPage):
		art, ok := m.focusedArtwork()
		if !ok || art.DetailURL == "" {
			m.setStatus("No page to open", true)
			return m, nil
		}
		return m, OpenURLCmd(m.svc.Opener, art.DetailURL)

	case key.Matches(msg, m.keys.OpenImage):
		art, ok := m.focusedArtwork()
		if !ok || art.DisplayImage() == "" {
			m.setStatus("No image to open", true)
			return m, nil
		}
		return m, OpenURLCmd(m.svc.Opener, art.DisplayImage())

	case key.Matches(msg, m.keys.Filter):
		if l := m.activeList(); l != nil {
			return m, l.StartFilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Edit):
		return m.activate()

	case key.Matches(msg, m.keys.Escape):
		if l := m.activeList(); l != nil && l.FilterQuery() != "" {
			l.StopFilter(false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.State = StateConfirmReset
		return m, nil
	}

	return m, nil
}

// activate opens the selected list artwork or edits the selected axis
func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.Screen {
	case ScreenRecommendations, ScreenFavorites:
		art, ok := m.activeList().Selected()
		if !ok {
			return m, nil
		}
		m.Current = &art
		m.Screen = ScreenDaily
		m.Detail.GotoTop()
		m.refreshViews()
		return m, nil

	case ScreenPreferences:
		axis := domain.Axes[m.PrefCursor]
		m.InputModal.Show(
			fmt.Sprintf("Edit %s", axisTitle(axis)),
			axisHint(axis),
			preferences.FormatTokens(m.Preferences.Tokens(axis)),
		)
		m.State = StateEditing
		return m, nil
	}
	return m, nil
}

func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	switch m.Screen {
	case ScreenDaily:
		m.Detail.SetYOffset(m.Detail.YOffset + delta)
	case ScreenPreferences:
		m.PrefCursor += delta
		if m.PrefCursor < 0 {
			m.PrefCursor = 0
		}
		if m.PrefCursor >= len(domain.Axes) {
			m.PrefCursor = len(domain.Axes) - 1
		}
	default:
		m.activeList().MoveCursor(delta)
	}
	return m, nil
}

func (m Model) pageSize() int {
	if h := m.Height - ChromeHeight; h > 1 {
		return h / 2
	}
	return 1
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.activeList().StopFilter(false)
		return m, nil
	case "enter":
		m.activeList().StopFilter(true)
		return m, nil
	case "up", "ctrl+p":
		m.activeList().MoveCursor(-1)
		return m, nil
	case "down", "ctrl+n":
		m.activeList().MoveCursor(1)
		return m, nil
	}
	return m, m.activeList().UpdateFilter(msg)
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.InputModal, cmd, submitted = m.InputModal.Update(msg)

	if submitted {
		axis := domain.Axes[m.PrefCursor]
		value := m.InputModal.Value()
		m.InputModal.Hide()
		m.State = StateBrowsing
		return m, SetAxisCmd(m.svc.Preferences, axis, value)
	}
	if !m.InputModal.IsVisible() {
		m.State = StateBrowsing
	}
	return m, cmd
}

func (m Model) handleConfirmResetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.State = StateBrowsing
		return m, ResetCmd(m.svc.Session)
	case key.Matches(msg, m.keys.Deny):
		m.State = StateBrowsing
	}
	return m, nil
}
