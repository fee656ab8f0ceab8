package achieve

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"
)

const keyPrefix = "achv:"

// Store persists achievement state per profile in badger. Reads that
// fail — missing key, unreadable blob — fall back to the zero-value
// state instead of surfacing an error; concurrent sessions reconcile
// through last-write-wins on the persisted blob.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

func NewStore(db *badger.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Load returns the persisted state for a profile, or the zero value
// if nothing usable is stored.
func (s *Store) Load(profileID string) State {
	var st State
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + profileID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &st)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return State{}
	}
	if err != nil {
		s.logger.Warn("achievement state unreadable, resetting to defaults",
			"profile_id", profileID, "error", err)
		return State{}
	}
	return st
}

// Save writes the state blob for a profile.
func (s *Store) Save(profileID string, st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding achievement state: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+profileID), data)
	})
	if err != nil {
		return fmt.Errorf("writing achievement state: %w", err)
	}
	return nil
}

// Reset removes a profile's achievement state. Used only for the
// explicit user-initiated reset.
func (s *Store) Reset(profileID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + profileID))
	})
	if err != nil {
		return fmt.Errorf("deleting achievement state: %w", err)
	}
	return nil
}

// Track merges an event into the persisted state and writes it back
// before returning, per the tracker contract.
func (s *Store) Track(profileID string, e Event) (State, []Achievement, error) {
	st, fresh := Apply(s.Load(profileID), e, time.Now())
	if err := s.Save(profileID, st); err != nil {
		return State{}, nil, err
	}
	return st, fresh, nil
}
