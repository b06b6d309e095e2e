package match

import (
	"strings"

	"github.com/mmcdole/dailyart/internal/domain"
)

// CountMatches returns how many distinct requested tokens are a
// case-insensitive substring of at least one candidate token.
// Candidates are expected to be lowercase (as produced by the tokenizers).
func CountMatches(requested []string, candidates []string) int {
	if len(candidates) == 0 {
		return 0
	}
	count := 0
	for _, q := range QueryTokens(requested) {
		for _, c := range candidates {
			if strings.Contains(c, q) {
				count++
				break
			}
		}
	}
	return count
}

// AnyMatch reports whether at least one requested token matches
func AnyMatch(requested []string, candidates []string) bool {
	return CountMatches(requested, candidates) > 0
}

// FreeText returns how many distinct requested tokens occur as a
// case-insensitive substring of any of the given free-text fields.
func FreeText(requested []string, fields ...string) int {
	var candidates []string
	for _, f := range fields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			candidates = append(candidates, f)
		}
	}
	return CountMatches(requested, candidates)
}

// Constraints reports whether an artwork satisfies fetch constraints:
// OR across the style and medium axes, OR within an axis. When both axes
// are empty every artwork matches.
func Constraints(a domain.Artwork, c domain.Preferences) bool {
	styles := QueryTokens(c.Styles)
	mediums := QueryTokens(c.Mediums)
	if len(styles) == 0 && len(mediums) == 0 {
		return true
	}
	if AnyMatch(styles, StyleTokens(a.Style)) {
		return true
	}
	return AnyMatch(mediums, MediumTokens(a.Medium))
}
