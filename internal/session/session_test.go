package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/mmcdole/dailyart/internal/adapter"
	"github.com/mmcdole/dailyart/internal/domain"
	"github.com/mmcdole/dailyart/internal/store"
)

func TestPoolDeduplicates(t *testing.T) {
	p := NewPool()
	if n := p.Add(domain.Artwork{ID: "1", Title: "first"}, domain.Artwork{ID: "2"}); n != 2 {
		t.Errorf("Add = %d, want 2", n)
	}
	if n := p.Add(domain.Artwork{ID: "1", Title: "second"}); n != 0 {
		t.Errorf("Add duplicate = %d, want 0", n)
	}

	items := p.Items()
	if len(items) != 2 || items[0].ID != "1" || items[1].ID != "2" {
		t.Fatalf("Items = %+v", items)
	}
	if items[0].Title != "first" {
		t.Errorf("duplicate replaced the first-seen artwork: %q", items[0].Title)
	}
	if !p.Contains("2") || p.Contains("3") {
		t.Error("Contains mismatch")
	}
}

func TestPoolItemsIsSnapshot(t *testing.T) {
	p := NewPool()
	p.Add(domain.Artwork{ID: "1"})
	items := p.Items()
	items[0].ID = "mutated"

	if !p.Contains("1") || p.Items()[0].ID != "1" {
		t.Error("Items exposed internal storage")
	}
}

func TestPoolConcurrentAdd(t *testing.T) {
	p := NewPool()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				p.Add(domain.Artwork{ID: fmt.Sprint(i)})
			}
		}()
	}
	wg.Wait()

	if p.Len() != 50 {
		t.Errorf("Len = %d, want 50", p.Len())
	}
}

func TestServiceReset(t *testing.T) {
	st := store.NewMemoryStore()
	_ = st.SaveDailyEntry(domain.DailyEntry{Date: "2024-03-15", Artwork: domain.Artwork{ID: "1"}})
	_ = st.SaveFavorites([]domain.Artwork{{ID: "1"}})
	_ = st.SavePreferences(domain.Preferences{Styles: []string{"Baroque"}})

	svc := NewService(st, nil, adapter.NullLogger())
	svc.Pool().Add(domain.Artwork{ID: "1"})
	svc.Reset()

	if svc.Pool().Len() != 0 {
		t.Error("pool not emptied")
	}
	if _, ok := st.GetDailyEntry(); ok {
		t.Error("daily entry survived reset")
	}
	if _, ok := st.GetFavorites(); ok {
		t.Error("favorites survived reset")
	}
	if _, ok := st.GetPreferences(); ok {
		t.Error("preferences survived reset")
	}
}
