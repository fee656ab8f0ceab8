// Package kvstore opens the embedded badger key-value store that
// backs profile, achievement, and history persistence.
package kvstore

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// Open opens (or creates) a badger database at dir. An empty dir
// opens an in-memory database, which the tests rely on.
func Open(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening key-value store: %w", err)
	}
	return db, nil
}
