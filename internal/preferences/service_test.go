package preferences

import (
	"reflect"
	"testing"

	"github.com/mmcdole/dailyart/internal/adapter"
	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/store"
)

func TestGetEmpty(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), adapter.NullLogger())
	if got := svc.Get(); !got.IsEmpty() {
		t.Errorf("Get() = %+v, want empty", got)
	}
}

func TestSetNormalizes(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, adapter.NullLogger())

	err := svc.Set(domain.Preferences{
		Styles:  []string{" Impressionism ", "cubism", "impressionism", ""},
		Mediums: []string{"Oil"},
	})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}

	want := domain.Preferences{Styles: []string{"cubism", "Impressionism"}, Mediums: []string{"Oil"}}
	if got := svc.Get(); !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if stored, _ := st.GetPreferences(); !reflect.DeepEqual(stored, want) {
		t.Errorf("stored = %+v, want %+v", stored, want)
	}
}

func TestSetAxis(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), adapter.NullLogger())
	if err := svc.Set(domain.Preferences{Styles: []string{"Baroque"}}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.SetAxis(domain.AxisPeriod, []string{"1880", "Edo"})
	if err != nil {
		t.Fatalf("SetAxis: %v", err)
	}
	want := domain.Preferences{Styles: []string{"Baroque"}, Periods: []string{"1880", "Edo"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetAxis = %+v, want %+v", got, want)
	}

	got, _ = svc.SetAxis(domain.AxisStyle, nil)
	if got.Styles != nil || !reflect.DeepEqual(got.Periods, want.Periods) {
		t.Errorf("clearing style axis = %+v", got)
	}
}

func TestParseTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ,  ,", nil},
		{"oil", []string{"oil"}},
		{"Oil on canvas, tempera ,gold", []string{"Oil on canvas", "tempera", "gold"}},
	}
	for _, tt := range tests {
		if got := ParseTokens(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTokens(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
	if got := FormatTokens([]string{"a", "b"}); got != "a, b" {
		t.Errorf("FormatTokens = %q", got)
	}
}
