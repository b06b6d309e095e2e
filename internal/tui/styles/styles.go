package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	MetRed     = lipgloss.Color("#E4002B")
	Gold       = lipgloss.Color("#C9A227")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
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
			Foreground(Gold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	LabelStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Width(12)
)

// Favorite marker
const (
	FavoriteChar    = "★"
	NotFavoriteChar = "☆"
)

var FavoriteStar = lipgloss.NewStyle().Foreground(Gold).Render(FavoriteChar)

// Tabs
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(MetRed).
			Bold(true).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Padding(0, 1)
)

// Panel styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MetRed).
			Padding(1, 2)

	FooterStyle = lipgloss.NewStyle().
			Foreground(DimGray)
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
			BorderForeground(MetRed).
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
			Foreground(Gold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().Foreground(MetRed)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Gold).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Gold).
				Bold(true)
)

// Truncate truncates a string to the given display width with ellipsis
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

// Highlight renders the bytes of s at the matched offsets in the match style
func Highlight(s string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}
	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}
	var b strings.Builder
	for i, r := range s {
		if hits[i] {
			b.WriteString(MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
