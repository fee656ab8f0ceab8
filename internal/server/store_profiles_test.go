package server

import (
	"fmt"
	"testing"
	"time"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

func TestProfileStoreHistoryCap(t *testing.T) {
	_, profiles, _ := setupStores(t)

	id, err := profiles.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < maxHistory+5; i++ {
		_, err := profiles.AppendHistory(id, catquiz.HistoryEntry{
			BreedID:   fmt.Sprintf("breed-%d", i),
			BreedName: "테스트",
			Score:     i,
			TakenAt:   time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("AppendHistory %d: %v", i, err)
		}
	}

	entries := profiles.History(id)
	if len(entries) != maxHistory {
		t.Fatalf("got %d entries, want the cap of %d", len(entries), maxHistory)
	}
	// Newest first; the oldest five fell off the end.
	if entries[0].BreedID != fmt.Sprintf("breed-%d", maxHistory+4) {
		t.Errorf("newest entry = %s", entries[0].BreedID)
	}
	if entries[len(entries)-1].BreedID != "breed-5" {
		t.Errorf("oldest kept entry = %s, want breed-5", entries[len(entries)-1].BreedID)
	}
}

func TestProfileStoreExists(t *testing.T) {
	_, profiles, _ := setupStores(t)

	id, err := profiles.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !profiles.Exists(id) {
		t.Error("created profile does not exist")
	}
	if profiles.Exists("nope") {
		t.Error("unregistered id reported as existing")
	}

	n, err := profiles.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
