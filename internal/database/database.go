package database

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	conn *sql.DB
	path string

	cacheMu  sync.RWMutex
	settings map[string]string
}

func New(path string) (*DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(2)

	return open(conn, path)
}

// open prepares conn for use and closes it if any step fails.
func open(conn *sql.DB, path string) (*DB, error) {
	db := newDB(conn, path)
	if err := db.init(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) init() error {
	if err := db.conn.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := db.migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := db.loadSettingsCache(); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return nil
}

func newDB(conn *sql.DB, path string) *DB {
	return &DB{conn: conn, path: path, settings: make(map[string]string)}
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// DatabaseSizeBytes returns the file size of the database.
func (db *DB) DatabaseSizeBytes() (int64, error) {
	info, err := os.Stat(db.path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func parseTime(s string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04:05", s)
}

func (db *DB) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE TABLE IF NOT EXISTS generation_log (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			kind          TEXT    NOT NULL,
			provider      TEXT    NOT NULL DEFAULT '',
			model         TEXT    NOT NULL DEFAULT '',
			tokens_used   INTEGER NOT NULL DEFAULT 0,
			duration_ms   INTEGER NOT NULL DEFAULT 0,
			error_message TEXT,
			created_at    TEXT    NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generation_log_created ON generation_log(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w\nstatement: %s", err, stmt)
		}
	}

	return db.seedSettings()
}

func (db *DB) seedSettings() error {
	defaults := map[string]string{
		"ai_provider":    "",
		"gemini_api_key": "",
		"ollama_url":     "",
		"ollama_model":   "",
		"api_key_hash":   "",
	}

	stmt, err := db.conn.Prepare(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range defaults {
		if _, err := stmt.Exec(key, value); err != nil {
			return err
		}
	}
	return nil
}
