package theme

import (
	"fmt"
	"sync"
	"testing"
)

func TestNewStoreActivatesFirstPreset(t *testing.T) {
	store := NewStore([]Theme{completeTheme("kosmos"), completeTheme("matrix")})
	if store.Active().ID != "kosmos" {
		t.Fatalf("expected first preset active, got %q", store.Active().ID)
	}
	if len(store.History()) != 0 {
		t.Fatal("expected empty history")
	}
}

func TestStoreSetActiveLeavesHistory(t *testing.T) {
	store := NewStore([]Theme{completeTheme("kosmos")})
	store.RecordGenerated(completeTheme("gen-1"))

	store.SetActive(completeTheme("other"))
	if store.Active().ID != "other" {
		t.Fatalf("expected other active, got %q", store.Active().ID)
	}
	if h := store.History(); len(h) != 1 || h[0].ID != "gen-1" {
		t.Fatalf("history changed: %+v", h)
	}
}

func TestStoreHistoryCap(t *testing.T) {
	store := NewStore([]Theme{completeTheme("kosmos")})
	for i := 1; i <= 13; i++ {
		store.RecordGenerated(completeTheme(fmt.Sprintf("gen-%d", i)))
	}

	history := store.History()
	if len(history) != HistoryLimit {
		t.Fatalf("expected %d entries, got %d", HistoryLimit, len(history))
	}
	for i, th := range history {
		want := fmt.Sprintf("gen-%d", 13-i)
		if th.ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, th.ID)
		}
	}
}

func TestStoreHistoryReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	store.RecordGenerated(completeTheme("gen-1"))

	h := store.History()
	h[0].Name = "mutated"
	if store.History()[0].Name == "mutated" {
		t.Fatal("History must return a copy")
	}
}

func TestStoreLookup(t *testing.T) {
	store := NewStore([]Theme{completeTheme("kosmos")})
	store.RecordGenerated(completeTheme("gen-1"))

	if _, ok := store.Lookup("kosmos"); !ok {
		t.Fatal("expected preset lookup to succeed")
	}
	if _, ok := store.Lookup("gen-1"); !ok {
		t.Fatal("expected history lookup to succeed")
	}
	if _, ok := store.Lookup("missing"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

func TestStoreConcurrentWrites(t *testing.T) {
	store := NewStore([]Theme{completeTheme("kosmos")})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			th := completeTheme(fmt.Sprintf("gen-%d", i))
			store.SetActive(th)
			store.RecordGenerated(th)
		}(i)
	}
	wg.Wait()

	if len(store.History()) != HistoryLimit {
		t.Fatalf("expected capped history, got %d", len(store.History()))
	}
}
