package domain

import (
	"sort"
	"strings"
)

// Axis identifies one of the three independent preference axes
type Axis string

const (
	AxisStyle  Axis = "style"
	AxisMedium Axis = "medium"
	AxisPeriod Axis = "period"
)

// Axes lists the preference axes in display order
var Axes = []Axis{AxisStyle, AxisMedium, AxisPeriod}

// Preferences holds the user's content filters. Each axis is a set of
// free-text tokens; an empty axis places no constraint.
type Preferences struct {
	Styles  []string
	Mediums []string
	Periods []string
}

// IsEmpty returns true if no axis carries a token
func (p Preferences) IsEmpty() bool {
	return len(p.Styles) == 0 && len(p.Mediums) == 0 && len(p.Periods) == 0
}

// Tokens returns the tokens for a single axis
func (p Preferences) Tokens(axis Axis) []string {
	switch axis {
	case AxisStyle:
		return p.Styles
	case AxisMedium:
		return p.Mediums
	case AxisPeriod:
		return p.Periods
	default:
		return nil
	}
}

// WithAxis returns a copy of p with one axis replaced
func (p Preferences) WithAxis(axis Axis, tokens []string) Preferences {
	switch axis {
	case AxisStyle:
		p.Styles = tokens
	case AxisMedium:
		p.Mediums = tokens
	case AxisPeriod:
		p.Periods = tokens
	}
	return p
}

// Normalize trims tokens, drops blanks and case-insensitive duplicates,
// and sorts each axis so equal sets persist identically.
func (p Preferences) Normalize() Preferences {
	return Preferences{
		Styles:  normalizeSet(p.Styles),
		Mediums: normalizeSet(p.Mediums),
		Periods: normalizeSet(p.Periods),
	}
}

func normalizeSet(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
