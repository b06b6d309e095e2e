package match

import (
	"reflect"
	"testing"

	"github.com/mmcdole/dailyart/internal/domain"
)

func TestStyleTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "Paintings", []string{"paintings"}},
		{"pipes with blanks", "Paintings| |Impressionism|", []string{"paintings", "impressionism"}},
		{"duplicates", "Prints|prints|PRINTS", []string{"prints"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StyleTokens(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StyleTokens(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMediumTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "Oil on canvas", []string{"oil on canvas"}},
		{"comma and semicolon", "Ink, color; gold", []string{"ink", "color", "gold"}},
		{"and word", "Tempera and gold on wood", []string{"tempera", "gold on wood"}},
		{"and case insensitive", "Ink AND wash", []string{"ink", "wash"}},
		{"sand stays whole", "Sandstone", []string{"sandstone"}},
		{"mixed", "Bronze, silver and gold; enamel", []string{"bronze", "silver", "gold", "enamel"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MediumTokens(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MediumTokens(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountMatches(t *testing.T) {
	candidates := StyleTokens("Paintings|Impressionism|Landscapes")

	if got := CountMatches([]string{"impression"}, candidates); got != 1 {
		t.Errorf("substring match: got %d, want 1", got)
	}
	if got := CountMatches([]string{"IMPRESSIONISM", "impressionism"}, candidates); got != 1 {
		t.Errorf("duplicate requested tokens should count once, got %d", got)
	}
	if got := CountMatches([]string{"paint", "land", "baroque"}, candidates); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := CountMatches([]string{"paint"}, nil); got != 0 {
		t.Errorf("no candidates should match nothing, got %d", got)
	}
	if got := CountMatches(nil, candidates); got != 0 {
		t.Errorf("no requested tokens should match nothing, got %d", got)
	}
}

func TestFreeText(t *testing.T) {
	if got := FreeText([]string{"19th"}, "19th century", ""); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := FreeText([]string{"edo"}, "ca. 1830", "Edo period (1615–1868)"); got != 1 {
		t.Errorf("period field should be consulted, got %d", got)
	}
	if got := FreeText([]string{"ming"}, "", "  "); got != 0 {
		t.Errorf("blank fields should match nothing, got %d", got)
	}
}

func TestConstraints(t *testing.T) {
	art := domain.Artwork{Style: "Paintings|Impressionism", Medium: "Oil on canvas"}

	tests := []struct {
		name string
		c    domain.Preferences
		want bool
	}{
		{"empty matches everything", domain.Preferences{}, true},
		{"period only is unconstrained", domain.Preferences{Periods: []string{"baroque"}}, true},
		{"style hit", domain.Preferences{Styles: []string{"impressionism"}}, true},
		{"medium hit", domain.Preferences{Mediums: []string{"canvas"}}, true},
		{"style miss medium hit", domain.Preferences{Styles: []string{"cubism"}, Mediums: []string{"oil"}}, true},
		{"both miss", domain.Preferences{Styles: []string{"cubism"}, Mediums: []string{"bronze"}}, false},
		{"any token within axis", domain.Preferences{Styles: []string{"cubism", "paint"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Constraints(art, tt.c); got != tt.want {
				t.Errorf("Constraints() = %v, want %v", got, tt.want)
			}
		})
	}
}
