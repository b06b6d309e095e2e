package favorites

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mmcdole/dailyart/internal/adapter"
	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/store"
)

func artwork(id, title, artist string) domain.Artwork {
	return domain.Artwork{ID: id, Title: title, Artist: artist, PrimaryImage: "https://img/" + id}
}

func ids(arts []domain.Artwork) []string {
	out := []string{}
	for _, a := range arts {
		out = append(out, a.ID)
	}
	return out
}

func TestAddIsIdempotent(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), adapter.NullLogger())
	a := artwork("1", "Wheat Field with Cypresses", "Vincent van Gogh")

	once, err := svc.Add(a)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	twice, err := svc.Add(a)
	if err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Add twice = %v, want %v", ids(twice), ids(once))
	}
	if len(svc.List()) != 1 {
		t.Errorf("List len = %d, want 1", len(svc.List()))
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), adapter.NullLogger())
	for _, id := range []string{"3", "1", "2"} {
		if _, err := svc.Add(artwork(id, "", "")); err != nil {
			t.Fatal(err)
		}
	}
	if got := ids(svc.List()); !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
		t.Errorf("List = %v, want [3 1 2]", got)
	}
}

func TestRemove(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, adapter.NullLogger())
	_, _ = svc.Add(artwork("1", "", ""))
	_, _ = svc.Add(artwork("2", "", ""))

	got, err := svc.Remove("1")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !reflect.DeepEqual(ids(got), []string{"2"}) {
		t.Errorf("Remove = %v, want [2]", ids(got))
	}
	if svc.IsFavorite("1") {
		t.Error("1 still a favorite")
	}

	got, err = svc.Remove("missing")
	if err != nil || !reflect.DeepEqual(ids(got), []string{"2"}) {
		t.Errorf("Remove(missing) = %v, %v", ids(got), err)
	}

	persisted, _ := st.GetFavorites()
	if !reflect.DeepEqual(ids(persisted), []string{"2"}) {
		t.Errorf("persisted = %v, want [2]", ids(persisted))
	}
}

func TestPersistsAcrossServices(t *testing.T) {
	st := store.NewMemoryStore()
	_, _ = NewService(st, adapter.NullLogger()).Add(artwork("7", "", ""))

	if !NewService(st, adapter.NullLogger()).IsFavorite("7") {
		t.Error("favorite not visible to a second service over the same store")
	}
}

func TestToggle(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), adapter.NullLogger())
	a := artwork("1", "", "")

	on, err := svc.Toggle(a)
	if err != nil || !on {
		t.Fatalf("Toggle on = %v, %v", on, err)
	}
	off, err := svc.Toggle(a)
	if err != nil || off {
		t.Fatalf("Toggle off = %v, %v", off, err)
	}
	if len(svc.List()) != 0 {
		t.Errorf("List len = %d, want 0", len(svc.List()))
	}
}

func TestSearch(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), adapter.NullLogger())
	_, _ = svc.Add(artwork("1", "Wheat Field with Cypresses", "Vincent van Gogh"))
	_, _ = svc.Add(artwork("2", "The Harvesters", "Pieter Bruegel the Elder"))
	_, _ = svc.Add(artwork("3", "Bridge over a Pond of Water Lilies", "Claude Monet"))

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"gogh", []string{"1"}},
		{"harv", []string{"2"}},
		{"MONET", []string{"3"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		if got := ids(svc.Search(tt.query)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

// brokenStore fails every favorites write
type brokenStore struct {
	*store.SlotStore
}

func (brokenStore) SaveFavorites([]domain.Artwork) error { return errors.New("read-only") }

func TestAddSaveFailure(t *testing.T) {
	svc := NewService(brokenStore{store.NewMemoryStore()}, adapter.NullLogger())
	if _, err := svc.Add(artwork("1", "", "")); err == nil {
		t.Error("Add() = nil error, want save failure")
	}
}
