package server

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

const (
	profileKeyPrefix = "profile:"
	historyKeyPrefix = "history:"

	// maxHistory caps the per-profile result history, newest first.
	maxHistory = 20
)

type profileDoc struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// ProfileStore keeps anonymous profiles and their result history in
// badger. Histories are whole-blob JSON with last-write-wins
// semantics across concurrent sessions; unreadable blobs degrade to
// an empty history rather than an error.
type ProfileStore struct {
	db     *badger.DB
	logger *slog.Logger
}

func NewProfileStore(db *badger.DB, logger *slog.Logger) *ProfileStore {
	return &ProfileStore{db: db, logger: logger}
}

// Create registers a new profile and returns its id, which doubles as
// the bearer token.
func (s *ProfileStore) Create() (string, error) {
	doc := profileDoc{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKeyPrefix+doc.ID), data)
	})
	if err != nil {
		return "", fmt.Errorf("creating profile: %w", err)
	}
	return doc.ID, nil
}

// Exists reports whether a profile id is registered.
func (s *ProfileStore) Exists(id string) bool {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(profileKeyPrefix + id))
		return err
	})
	return err == nil
}

// History returns the profile's persisted result history, newest
// first. Missing or unreadable blobs yield an empty history.
func (s *ProfileStore) History(profileID string) []catquiz.HistoryEntry {
	var entries []catquiz.HistoryEntry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(historyKeyPrefix + profileID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entries)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Warn("result history unreadable, starting fresh",
			"profile_id", profileID, "error", err)
		return nil
	}
	return entries
}

// AppendHistory prepends an entry and writes the capped list back.
func (s *ProfileStore) AppendHistory(profileID string, e catquiz.HistoryEntry) ([]catquiz.HistoryEntry, error) {
	entries := append([]catquiz.HistoryEntry{e}, s.History(profileID)...)
	if len(entries) > maxHistory {
		entries = entries[:maxHistory]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(historyKeyPrefix+profileID), data)
	})
	if err != nil {
		return nil, fmt.Errorf("writing result history: %w", err)
	}
	return entries, nil
}

// ClearHistory removes the profile's history blob.
func (s *ProfileStore) ClearHistory(profileID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(historyKeyPrefix + profileID))
	})
	if err != nil {
		return fmt.Errorf("clearing result history: %w", err)
	}
	return nil
}

// Count reports the number of registered profiles via a prefix scan.
func (s *ProfileStore) Count() (int, error) {
	var n int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(profileKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Ping verifies the store is usable.
func (s *ProfileStore) Ping() error {
	return s.db.View(func(txn *badger.Txn) error { return nil })
}
