// Package recommend ranks previously seen artworks against the user's
// preferences. Scoring is pure apart from an injected random source that
// adds a small diversity term.
package recommend

import (
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/match"
)

// Scoring weights. A single style or medium match outweighs the largest
// diversity term, so preference matches always rank first.
const (
	StyleWeight     = 40.0
	MediumWeight    = 40.0
	PeriodWeight    = 20.0
	DiversityWeight = 10.0

	// DefaultLimit is the maximum number of recommendations returned
	DefaultLimit = 12
)

// Source supplies the diversity term, uniform in [0, 1)
type Source interface {
	Float64() float64
}

// Scored is a ranked recommendation
type Scored struct {
	Artwork   domain.Artwork
	Score     float64
	Diversity float64
}

// Recommend returns up to DefaultLimit artworks from pool, excluding
// favorites, ranked by preference score.
func Recommend(pool, favorites []domain.Artwork, prefs domain.Preferences, rng Source) []domain.Artwork {
	return artworks(Rank(pool, favorites, prefs, rng, DefaultLimit))
}

// Rank scores pool against prefs and returns at most limit results in
// descending score order. Equal scores keep pool order. Pool duplicates
// collapse to their first occurrence.
func Rank(pool, favorites []domain.Artwork, prefs domain.Preferences, rng Source, limit int) []Scored {
	excluded := make(map[string]bool, len(favorites)+len(pool))
	for _, f := range favorites {
		excluded[f.ID] = true
	}

	q := newQuery(prefs)
	scored := make([]Scored, 0, len(pool))
	for _, a := range pool {
		if excluded[a.ID] {
			continue
		}
		excluded[a.ID] = true
		diversity := rng.Float64() * DiversityWeight
		scored = append(scored, Scored{
			Artwork:   a,
			Score:     q.score(a) + diversity,
			Diversity: diversity,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// query holds normalized preference tokens for scoring
type query struct {
	styles, mediums, periods []string
}

func newQuery(p domain.Preferences) query {
	return query{
		styles:  match.QueryTokens(p.Styles),
		mediums: match.QueryTokens(p.Mediums),
		periods: match.QueryTokens(p.Periods),
	}
}

// score is the deterministic part of an artwork's ranking
func (q query) score(a domain.Artwork) float64 {
	var s float64
	if len(q.styles) > 0 {
		s += StyleWeight * float64(match.CountMatches(q.styles, match.StyleTokens(a.Style)))
	}
	if len(q.mediums) > 0 {
		s += MediumWeight * float64(match.CountMatches(q.mediums, match.MediumTokens(a.Medium)))
	}
	if len(q.periods) > 0 {
		s += PeriodWeight * float64(match.FreeText(q.periods, a.Date))
	}
	return s
}

func artworks(scored []Scored) []domain.Artwork {
	out := make([]domain.Artwork, len(scored))
	for i, s := range scored {
		out[i] = s.Artwork
	}
	return out
}

// Engine binds a random source and result limit for concurrent callers
type Engine struct {
	mu     sync.Mutex
	rng    Source
	limit  int
	logger *slog.Logger
}

// NewEngine creates an Engine. A nil source uses math/rand/v2. Limits
// outside (0, DefaultLimit] are clamped to DefaultLimit.
func NewEngine(rng Source, limit int, logger *slog.Logger) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{rng: rng, limit: limit, logger: logger}
}

// Recommend ranks pool for display
func (e *Engine) Recommend(pool, favorites []domain.Artwork, prefs domain.Preferences) []domain.Artwork {
	return artworks(e.Rank(pool, favorites, prefs))
}

// Rank returns scored recommendations
func (e *Engine) Rank(pool, favorites []domain.Artwork, prefs domain.Preferences) []Scored {
	e.mu.Lock()
	defer e.mu.Unlock()

	scored := Rank(pool, favorites, prefs, e.rng, e.limit)
	e.logger.Debug("ranked recommendations",
		"pool", len(pool), "favorites", len(favorites), "results", len(scored))
	return scored
}
