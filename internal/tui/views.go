package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/preferences"
	"github.com/mmcdole/dailyart/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	switch m.State {
	case StateHelp:
		return m.renderHelp()
	case StateConfirmReset:
		return m.renderResetConfirmation()
	}

	var content string
	switch m.Screen {
	case ScreenDaily:
		content = m.renderDaily()
	case ScreenRecommendations:
		content = m.RecsList.View()
	case ScreenFavorites:
		content = m.FavsList.View()
	case ScreenPreferences:
		content = m.renderPreferences()
	}

	contentHeight := m.Height - ChromeHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)

	if m.State == StateEditing {
		content = lipgloss.Place(m.Width, contentHeight, lipgloss.Center, lipgloss.Center, m.InputModal.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		content,
		m.renderFooter(),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(screenTitles))
	for i, title := range screenTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		switch Screen(i) {
		case ScreenRecommendations:
			label = fmt.Sprintf("%s (%d)", label, m.RecsList.Len())
		case ScreenFavorites:
			label = fmt.Sprintf("%s (%d)", label, len(m.Favorites))
		}
		if Screen(i) == m.Screen {
			tabs[i] = styles.ActiveTabStyle.Render(label)
		} else {
			tabs[i] = styles.InactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderDaily() string {
	if m.Current == nil {
		if m.Loading {
			return m.Spinner.View() + " Finding today's artwork..."
		}
		return styles.DimStyle.Render("No artwork loaded. Press r to try again.")
	}
	return m.Detail.View()
}

func (m Model) renderPreferences() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Artworks matching any style or medium are preferred; periods boost recommendations."))
	b.WriteString("\n\n")

	for i, axis := range domain.Axes {
		tokens := m.Preferences.Tokens(axis)
		value := styles.DimStyle.Render("any")
		if len(tokens) > 0 {
			value = styles.AccentStyle.Render(preferences.FormatTokens(tokens))
		}
		line := fmt.Sprintf("%-8s %s", axisTitle(axis), value)
		if i == m.PrefCursor {
			b.WriteString(styles.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(styles.NormalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	if m.StatusMsg != "" {
		prefix := ""
		if m.Loading {
			prefix = m.Spinner.View() + " "
		}
		if m.StatusIsErr {
			return styles.ErrorStyle.Render(m.StatusMsg)
		}
		return prefix + styles.SuccessStyle.Render(m.StatusMsg)
	}

	hints := []string{"r new", "f favorite", "o page", "i image", "tab views", "? help", "q quit"}
	if m.Screen == ScreenPreferences {
		hints = []string{"enter edit", "j/k select", "tab views", "? help", "q quit"}
	}
	return styles.FooterStyle.Render(strings.Join(hints, " · "))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	for _, section := range m.keys.HelpSections() {
		b.WriteString(styles.AccentStyle.Render(section.Title))
		b.WriteString("\n")
		for _, binding := range section.Bindings {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.HelpKeyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
				styles.HelpDescStyle.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.DimStyle.Render("Press any key to close"))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, styles.ModalStyle.Render(b.String()))
}

func (m Model) renderResetConfirmation() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Start over?"),
		"This clears today's artwork, favorites and preferences.",
		"",
		styles.DimStyle.Render("y to confirm, n to cancel"),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, styles.ModalStyle.Render(body))
}

func axisTitle(axis domain.Axis) string {
	switch axis {
	case domain.AxisStyle:
		return "Styles"
	case domain.AxisMedium:
		return "Mediums"
	case domain.AxisPeriod:
		return "Periods"
	default:
		return string(axis)
	}
}

func axisHint(axis domain.Axis) string {
	switch axis {
	case domain.AxisStyle:
		return "e.g. Impressionism, Prints, Japanese"
	case domain.AxisMedium:
		return "e.g. oil, watercolor, bronze"
	case domain.AxisPeriod:
		return "e.g. 1880, Edo period, Renaissance"
	default:
		return ""
	}
}
