// Package match tokenizes the free-text attribution fields of an artwork
// and matches preference tokens against them. It performs no I/O.
package match

import (
	"regexp"
	"strings"
)

// andSeparator splits medium phrases like "Oil and tempera" on the
// standalone word "and", leaving words such as "sand" intact.
var andSeparator = regexp.MustCompile(`(?i)\s*\band\b\s*`)

// StyleTokens splits a pipe-delimited style/classification string into
// lowercase tokens.
func StyleTokens(style string) []string {
	return collect(strings.Split(style, "|"))
}

// MediumTokens splits a medium description on ",", ";" and the word "and"
// into lowercase tokens.
func MediumTokens(medium string) []string {
	parts := strings.FieldsFunc(medium, func(r rune) bool {
		return r == ',' || r == ';'
	})
	var split []string
	for _, p := range parts {
		split = append(split, andSeparator.Split(p, -1)...)
	}
	return collect(split)
}

// QueryTokens normalizes user-supplied preference tokens: trimmed,
// lowercased, blanks and duplicates dropped, original order kept.
func QueryTokens(tokens []string) []string {
	return collect(tokens)
}

func collect(parts []string) []string {
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
