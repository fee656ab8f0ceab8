package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

var ErrNotFound = errors.New("not found")

// shareDoc is a persisted quiz result behind a share link, stored as
// JSONB. Breakdown may be empty when the share was created from a
// URL-only result.
type shareDoc struct {
	ID        string                   `json:"id"`
	BreedID   string                   `json:"breedId"`
	Score     int                      `json:"score"`
	Breakdown map[catquiz.Category]int `json:"breakdown,omitempty"`
	CreatedAt string                   `json:"createdAt"`
}

// DocStore keeps share documents and admin sessions in SQLite using
// per-model tables with JSONB data columns.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(ctx context.Context, db *sql.DB) (*DocStore, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS shares (
			id         TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			data       JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admin_sessions (
			id         TEXT PRIMARY KEY,
			created_at TEXT NOT NULL
		)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}
	return &DocStore{db: db}, nil
}

func (s *DocStore) PutShare(ctx context.Context, doc shareDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO shares (id, created_at, data) VALUES (?, ?, jsonb(?))`,
		doc.ID, doc.CreatedAt, string(data),
	)
	return err
}

func (s *DocStore) GetShare(ctx context.Context, id string) (shareDoc, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM shares WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return shareDoc{}, ErrNotFound
	}
	if err != nil {
		return shareDoc{}, err
	}
	var doc shareDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return shareDoc{}, err
	}
	return doc, nil
}

func (s *DocStore) CountShares(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shares`).Scan(&n)
	return n, err
}

func (s *DocStore) CreateAdminSession(ctx context.Context) (string, error) {
	id := randomToken()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admin_sessions (id, created_at) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *DocStore) HasAdminSession(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM admin_sessions WHERE id = ?`, id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *DocStore) DeleteAdminSession(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = ?`, id)
	return err
}

func (s *DocStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func randomToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
