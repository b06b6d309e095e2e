package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/tui/styles"
)

// RenderArtwork renders the detail card of an artwork at the given width
func RenderArtwork(a domain.Artwork, favorite bool, width int) string {
	if width < 20 {
		width = 20
	}
	inner := width - 6 // border + padding

	star := styles.DimStyle.Render(styles.NotFavoriteChar)
	if favorite {
		star = styles.FavoriteStar
	}

	title := lipgloss.NewStyle().Inherit(styles.TitleStyle).Width(inner - 2).Render(a.Title)
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, star+" ", title),
		styles.AccentStyle.Render(a.DisplayArtist()),
	}
	if a.ArtistBio != "" {
		lines = append(lines, styles.DimStyle.Render(a.ArtistBio))
	}
	lines = append(lines, "")

	fields := []struct{ label, value string }{
		{"Date", a.Date},
		{"Period", a.Period},
		{"Medium", a.Medium},
		{"Style", strings.ReplaceAll(a.Style, "|", ", ")},
		{"Dimensions", a.Dimensions},
		{"Department", a.Department},
		{"Credit", a.CreditLine},
	}
	valueStyle := lipgloss.NewStyle().Foreground(styles.LightGray).Width(inner - 12)
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			styles.LabelStyle.Render(f.label),
			valueStyle.Render(f.value),
		))
	}

	lines = append(lines, "")
	if img := a.DisplayImage(); img != "" {
		lines = append(lines, styles.DimStyle.Render("Image  ")+styles.SubtitleStyle.Render(img))
	}
	if n := len(a.ImageURLs()); n > 1 {
		lines = append(lines, styles.DimStyle.Render("       + more views"))
	}
	if a.DetailURL != "" {
		lines = append(lines, styles.DimStyle.Render("Page   ")+styles.SubtitleStyle.Render(a.DetailURL))
	}
	if a.PublicDomain {
		lines = append(lines, styles.SuccessStyle.Render("Public domain"))
	}

	return styles.CardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}
