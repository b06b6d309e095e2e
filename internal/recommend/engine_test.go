package recommend

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/mmcdole/dailyart/internal/adapter"
	"github.com/mmcdole/dailyart/internal/domain"
)

// fixedSource returns the same value on every call
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// seqSource replays values in order
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func art(id, style, medium, date string) domain.Artwork {
	return domain.Artwork{ID: id, Style: style, Medium: medium, Date: date}
}

func ids(arts []domain.Artwork) []string {
	out := make([]string, len(arts))
	for i, a := range arts {
		out[i] = a.ID
	}
	return out
}

func TestImpressionismRanksFirst(t *testing.T) {
	pool := []domain.Artwork{
		art("B", "Baroque", "", ""),
		art("A", "Impressionism", "", ""),
	}
	prefs := domain.Preferences{Styles: []string{"impressionism"}}

	// Worst case for A: B gets the maximum diversity term, A the minimum.
	rng := &seqSource{vals: []float64{0.999999, 0}}
	got := Rank(pool, nil, prefs, rng, DefaultLimit)

	if len(got) != 2 || got[0].Artwork.ID != "A" {
		t.Fatalf("ranking = %v, want A first", got)
	}
	if got[0].Score < StyleWeight {
		t.Errorf("A score = %v, want >= %v", got[0].Score, StyleWeight)
	}
	if got[1].Score >= DiversityWeight {
		t.Errorf("B score = %v, want < %v", got[1].Score, DiversityWeight)
	}
}

func TestRecommendExcludesFavorites(t *testing.T) {
	pool := []domain.Artwork{art("1", "", "", ""), art("2", "", "", ""), art("3", "", "", "")}
	favorites := []domain.Artwork{art("2", "", "", "")}

	got := Recommend(pool, favorites, domain.Preferences{}, rand.New(rand.NewPCG(1, 1)))
	for _, a := range got {
		if a.ID == "2" {
			t.Errorf("favorite 2 recommended: %v", ids(got))
		}
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestRecommendBounds(t *testing.T) {
	var pool []domain.Artwork
	for i := 0; i < 30; i++ {
		pool = append(pool, art(fmt.Sprint(i), "Paintings", "Oil on canvas", ""))
	}
	favorites := pool[:5]

	tests := []struct {
		name string
		pool []domain.Artwork
		want int
	}{
		{"large pool capped", pool, DefaultLimit},
		{"small pool", pool[:8], 3},
		{"only favorites", pool[:5], 0},
		{"empty pool", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.pool, favorites, domain.Preferences{Styles: []string{"paint"}}, fixedSource(0.5))
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestRecommendEmptyPreferences(t *testing.T) {
	pool := []domain.Artwork{art("1", "", "", ""), art("2", "", "", "")}

	got := Recommend(pool, nil, domain.Preferences{}, &seqSource{vals: []float64{0.1, 0.9}})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "2" {
		t.Errorf("order = %v, want diversity order [2 1]", ids(got))
	}
}

func TestRankStableTies(t *testing.T) {
	pool := []domain.Artwork{art("x", "", "", ""), art("y", "", "", ""), art("z", "", "", "")}

	got := Rank(pool, nil, domain.Preferences{}, fixedSource(0), -1)
	if want := []string{"x", "y", "z"}; fmt.Sprint(ids(artworks(got))) != fmt.Sprint(want) {
		t.Errorf("order = %v, want pool order %v", ids(artworks(got)), want)
	}
}

func TestRankCollapsesDuplicates(t *testing.T) {
	pool := []domain.Artwork{art("1", "", "", ""), art("1", "", "", ""), art("2", "", "", "")}

	got := Rank(pool, nil, domain.Preferences{}, fixedSource(0), DefaultLimit)
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestScoreAxes(t *testing.T) {
	a := domain.Artwork{
		ID:     "1",
		Style:  "Paintings|Impressionism|Landscapes",
		Medium: "Oil and charcoal on canvas",
		Date:   "ca. 1880",
		Period: "Meiji period",
	}

	tests := []struct {
		name  string
		prefs domain.Preferences
		want  float64
	}{
		{"none", domain.Preferences{}, 0},
		{"one style", domain.Preferences{Styles: []string{"Impression"}}, 40},
		{"two styles", domain.Preferences{Styles: []string{"impressionism", "landscape"}}, 80},
		{"duplicate tokens count once", domain.Preferences{Styles: []string{"Paintings", "paintings"}}, 40},
		{"medium split on and", domain.Preferences{Mediums: []string{"charcoal", "oil"}}, 80},
		{"period in date", domain.Preferences{Periods: []string{"188"}}, 20},
		{"period field alone does not score", domain.Preferences{Periods: []string{"meiji"}}, 0},
		{"miss", domain.Preferences{Styles: []string{"cubism"}, Mediums: []string{"bronze"}}, 0},
		{
			"all axes",
			domain.Preferences{Styles: []string{"impressionism"}, Mediums: []string{"oil"}, Periods: []string{"1880"}},
			100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newQuery(tt.prefs).score(a); got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine(t *testing.T) {
	e := NewEngine(fixedSource(0.5), 2, adapter.NullLogger())
	pool := []domain.Artwork{
		art("1", "Baroque", "", ""),
		art("2", "Impressionism", "", ""),
		art("3", "Impressionism", "Oil", ""),
	}

	got := e.Recommend(pool, nil, domain.Preferences{Styles: []string{"impressionism"}, Mediums: []string{"oil"}})
	if want := "[3 2]"; fmt.Sprint(ids(got)) != want {
		t.Errorf("Recommend = %v, want %s", ids(got), want)
	}

	scored := e.Rank(pool, nil, domain.Preferences{})
	if len(scored) != 2 || scored[0].Diversity != 5 {
		t.Errorf("Rank = %+v, want 2 results with diversity 5", scored)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(nil, 0, nil)
	if e.limit != DefaultLimit || e.rng == nil || e.logger == nil {
		t.Errorf("defaults not applied: %+v", e)
	}
}

func TestNewEngineClampsLimit(t *testing.T) {
	pool := make([]domain.Artwork, 30)
	for i := range pool {
		pool[i] = art(fmt.Sprint(i), "", "", "")
	}

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 5, want: 5},
		{limit: 12, want: 12},
		{limit: 50, want: DefaultLimit},
		{limit: -1, want: DefaultLimit},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.limit), func(t *testing.T) {
			e := NewEngine(fixedSource(0), tt.limit, adapter.NullLogger())
			if got := len(e.Recommend(pool, nil, domain.Preferences{})); got != tt.want {
				t.Errorf("len(Recommend) = %d, want %d", got, tt.want)
			}
		})
	}
}
