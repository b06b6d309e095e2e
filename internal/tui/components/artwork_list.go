package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/tui/styles"
)

// ListEntry is a row of an ArtworkList
type ListEntry struct {
	Artwork  domain.Artwork
	Detail   string // right-hand annotation, e.g. a score
	Favorite bool
}

// entrySource adapts entries to fuzzy.Source over "title artist"
type entrySource []ListEntry

func (s entrySource) String(i int) string {
	return strings.ToLower(s[i].Artwork.Title + " " + s[i].Artwork.DisplayArtist())
}

func (s entrySource) Len() int { return len(s) }

// ArtworkList is a scrollable artwork list with an inline fuzzy filter
type ArtworkList struct {
	entries []ListEntry
	visible []int         // indexes into entries after filtering
	matches map[int][]int // entry index -> matched byte offsets of the title
	cursor  int
	offset  int
	width   int
	height  int
	empty   string

	filtering bool
	filter    textinput.Model
	matcher   Matcher
}

// Matcher returns the artworks matching query, best first. Entries are
// shown in the order the matcher returns them.
type Matcher func(query string) []domain.Artwork

// NewArtworkList creates a list with a message for the empty state
func NewArtworkList(empty string) ArtworkList {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = styles.FilterPromptStyle
	ti.CharLimit = 60
	return ArtworkList{empty: empty, filter: ti}
}

// SetMatcher replaces the built-in fuzzy filter
func (l *ArtworkList) SetMatcher(fn Matcher) {
	l.matcher = fn
	l.applyFilter()
}

// SetEntries replaces the rows, keeping the active filter
func (l *ArtworkList) SetEntries(entries []ListEntry) {
	l.entries = entries
	l.applyFilter()
}

// SetSize sets the render area
func (l *ArtworkList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampOffset()
}

// Len returns the number of visible rows
func (l ArtworkList) Len() int {
	return len(l.visible)
}

// Selected returns the artwork under the cursor
func (l ArtworkList) Selected() (domain.Artwork, bool) {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return domain.Artwork{}, false
	}
	return l.entries[l.visible[l.cursor]].Artwork, true
}

// MoveCursor moves the selection by delta rows
func (l *ArtworkList) MoveCursor(delta int) {
	if len(l.visible) == 0 {
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	l.clampOffset()
}

// IsFiltering reports whether the filter input has focus
func (l ArtworkList) IsFiltering() bool {
	return l.filtering
}

// FilterQuery returns the current filter text
func (l ArtworkList) FilterQuery() string {
	return l.filter.Value()
}

// StartFilter focuses the filter input
func (l *ArtworkList) StartFilter() tea.Cmd {
	l.filtering = true
	return l.filter.Focus()
}

// StopFilter blurs the filter input, keeping the query when keep is set
func (l *ArtworkList) StopFilter(keep bool) {
	l.filtering = false
	l.filter.Blur()
	if !keep {
		l.filter.SetValue("")
		l.applyFilter()
	}
}

// UpdateFilter feeds a message to the filter input and refilters
func (l *ArtworkList) UpdateFilter(msg tea.Msg) tea.Cmd {
	before := l.filter.Value()
	var cmd tea.Cmd
	l.filter, cmd = l.filter.Update(msg)
	if l.filter.Value() != before {
		l.applyFilter()
	}
	return cmd
}

func (l *ArtworkList) applyFilter() {
	l.matches = nil
	query := strings.ToLower(strings.TrimSpace(l.filter.Value()))
	if query == "" {
		l.visible = make([]int, len(l.entries))
		for i := range l.entries {
			l.visible[i] = i
		}
	} else if l.matcher != nil {
		l.visible = l.matchedEntries(l.matcher(query))
	} else {
		found := fuzzy.FindFrom(query, entrySource(l.entries))
		l.visible = make([]int, len(found))
		l.matches = make(map[int][]int, len(found))
		for i, m := range found {
			l.visible[i] = m.Index
			l.matches[m.Index] = titleOffsets(m.MatchedIndexes, len(l.entries[m.Index].Artwork.Title))
		}
	}
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampOffset()
}

// matchedEntries maps matcher results back to entry indexes
func (l *ArtworkList) matchedEntries(found []domain.Artwork) []int {
	index := make(map[string]int, len(l.entries))
	for i, e := range l.entries {
		if _, ok := index[e.Artwork.ID]; !ok {
			index[e.Artwork.ID] = i
		}
	}
	visible := make([]int, 0, len(found))
	for _, a := range found {
		if i, ok := index[a.ID]; ok {
			visible = append(visible, i)
			delete(index, a.ID)
		}
	}
	return visible
}

// titleOffsets keeps the matched offsets that fall inside the title
func titleOffsets(matched []int, titleLen int) []int {
	var out []int
	for _, i := range matched {
		if i < titleLen {
			out = append(out, i)
		}
	}
	return out
}

func (l *ArtworkList) rows() int {
	rows := l.height
	if l.filtering || l.filter.Value() != "" {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *ArtworkList) clampOffset() {
	rows := l.rows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list
func (l ArtworkList) View() string {
	var b strings.Builder
	if l.filtering || l.filter.Value() != "" {
		b.WriteString(l.filter.View())
		b.WriteString("\n")
	}

	if len(l.visible) == 0 {
		msg := l.empty
		if l.filter.Value() != "" {
			msg = "No matches"
		}
		b.WriteString(styles.DimStyle.Render(msg))
		return b.String()
	}

	end := min(l.offset+l.rows(), len(l.visible))
	for row := l.offset; row < end; row++ {
		idx := l.visible[row]
		b.WriteString(l.renderRow(idx, row == l.cursor))
		if row < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (l ArtworkList) renderRow(idx int, selected bool) string {
	e := l.entries[idx]
	marker := "  "
	if e.Favorite {
		marker = styles.FavoriteChar + " "
	}

	detailWidth := len(e.Detail)
	titleWidth := l.width - detailWidth - 6
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := styles.Truncate(e.Artwork.Title+" · "+e.Artwork.DisplayArtist(), titleWidth)

	base := styles.NormalItemStyle
	if selected {
		base = styles.SelectedItemStyle
	}
	line := fmt.Sprintf("%s%-*s %s", marker, titleWidth, title, e.Detail)
	if matched := l.matches[idx]; len(matched) > 0 && !selected {
		padded := fmt.Sprintf("%-*s", titleWidth, title)
		return base.Render(marker) + styles.Highlight(padded, matched, styles.NormalItemStyle.UnsetPadding()) + " " + e.Detail
	}
	return base.Render(line)
}
