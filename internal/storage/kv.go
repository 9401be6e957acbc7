// Package storage persists the generation history and theme preference in a
// key/value backend. Persistence is best-effort: failures are logged and the
// caller carries on with its in-memory state.
package storage

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is the minimal key/value capability the persistence adapter needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// SettingsStore is satisfied by *database.DB.
type SettingsStore interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// SQLStore adapts the SQLite settings table to KV.
type SQLStore struct {
	db SettingsStore
}

func NewSQLStore(db SettingsStore) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(_ context.Context, key string) (string, error) {
	v, err := s.db.GetSetting(key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return v, err
}

func (s *SQLStore) Set(_ context.Context, key, value string) error {
	return s.db.SetSetting(key, value)
}
