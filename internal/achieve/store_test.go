package achieve

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/nyangbti/catquiz/internal/kvstore"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := kvstore.Open("")
	if err != nil {
		t.Fatalf("opening in-memory badger: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStoreLoadMissingProfile(t *testing.T) {
	s := setupStore(t)

	st := s.Load("nobody")
	if !reflect.DeepEqual(st, State{}) {
		t.Errorf("Load(missing) = %+v, want zero state", st)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := setupStore(t)

	want := State{
		TestsCompleted: 3,
		BreedsMatched:  []string{"bengal", "persian"},
		HighestScore:   88,
		Unlocked:       []string{"first-test", "great-match"},
	}
	if err := s.Save("p1", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.Load("p1")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestStoreLoadCorruptBlob(t *testing.T) {
	s := setupStore(t)

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+"p1"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}

	st := s.Load("p1")
	if !reflect.DeepEqual(st, State{}) {
		t.Errorf("Load(corrupt) = %+v, want zero state", st)
	}
}

func TestStoreTrackPersists(t *testing.T) {
	s := setupStore(t)

	one := 1
	st, fresh, err := s.Track("p1", Event{TestsCompleted: &one, MatchedBreed: "somali"})
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	if st.TestsCompleted != 1 {
		t.Errorf("TestsCompleted = %d, want 1", st.TestsCompleted)
	}
	if len(fresh) != 1 || fresh[0].ID != "first-test" {
		t.Errorf("fresh = %v, want first-test", fresh)
	}

	// The merged state must be readable after Track returns.
	loaded := s.Load("p1")
	if loaded.TestsCompleted != 1 || !reflect.DeepEqual(loaded.BreedsMatched, []string{"somali"}) {
		t.Errorf("persisted state = %+v", loaded)
	}
	if !reflect.DeepEqual(loaded.Unlocked, []string{"first-test"}) {
		t.Errorf("persisted unlocked = %v", loaded.Unlocked)
	}
}

func TestStoreReset(t *testing.T) {
	s := setupStore(t)

	if err := s.Save("p1", State{TestsCompleted: 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Reset("p1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if st := s.Load("p1"); !reflect.DeepEqual(st, State{}) {
		t.Errorf("Load after Reset = %+v, want zero state", st)
	}
}
