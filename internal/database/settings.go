package database

import (
	"database/sql"
	"fmt"

	"github.com/thinkscotty/contentspark/internal/models"
)

// loadSettingsCache populates the in-memory settings cache from the database.
func (db *DB) loadSettingsCache() error {
	rows, err := db.conn.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return err
	}
	defer rows.Close()

	db.cacheMu.Lock()
	defer db.cacheMu.Unlock()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		db.settings[key] = value
	}
	return rows.Err()
}

// GetSetting returns the value stored under key, or sql.ErrNoRows if there is none.
func (db *DB) GetSetting(key string) (string, error) {
	db.cacheMu.RLock()
	v, ok := db.settings[key]
	db.cacheMu.RUnlock()
	if ok {
		return v, nil
	}
	// Fallback to DB for keys not yet cached
	var value string
	err := db.conn.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", err
	}
	db.cacheMu.Lock()
	db.settings[key] = value
	db.cacheMu.Unlock()
	return value, nil
}

func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, datetime('now'))`,
		key, value)
	if err != nil {
		return err
	}
	db.cacheMu.Lock()
	db.settings[key] = value
	db.cacheMu.Unlock()
	return nil
}

// GetSettings returns the cached values of the given keys. Missing keys map to "".
func (db *DB) GetSettings(keys ...string) map[string]string {
	db.cacheMu.RLock()
	defer db.cacheMu.RUnlock()
	result := make(map[string]string, len(keys))
	for _, k := range keys {
		result[k] = db.settings[k]
	}
	return result
}

func (db *DB) LogGeneration(entry models.GenerationLog) error {
	var errMsg sql.NullString
	if entry.ErrorMessage != "" {
		errMsg = sql.NullString{String: entry.ErrorMessage, Valid: true}
	}
	_, err := db.conn.Exec(`
		INSERT INTO generation_log (kind, provider, model, tokens_used, duration_ms, error_message)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Kind, entry.Provider, entry.Model, entry.TokensUsed, entry.DurationMs, errMsg)
	return err
}

func (db *DB) GetStats() (models.Stats, error) {
	var s models.Stats

	err := db.conn.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN error_message IS NOT NULL THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(tokens_used), 0)
		FROM generation_log`).Scan(&s.TotalRequests, &s.FailedRequests, &s.TotalTokensUsed)
	if err != nil {
		return s, fmt.Errorf("query generation stats: %w", err)
	}

	size, _ := db.DatabaseSizeBytes()
	s.DatabaseSizeBytes = size

	return s, nil
}

func (db *DB) RecentGenerations(limit int) ([]models.GenerationLog, error) {
	rows, err := db.conn.Query(`
		SELECT id, kind, provider, model, tokens_used, duration_ms,
		       COALESCE(error_message, ''), created_at
		FROM generation_log
		ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.GenerationLog
	for rows.Next() {
		var entry models.GenerationLog
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Provider, &entry.Model,
			&entry.TokensUsed, &entry.DurationMs, &entry.ErrorMessage, &createdAt); err != nil {
			return nil, err
		}
		entry.CreatedAt, _ = parseTime(createdAt)
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// CleanOldGenerationLogs removes log entries older than the given number of days.
func (db *DB) CleanOldGenerationLogs(days int) error {
	_, err := db.conn.Exec(`DELETE FROM generation_log WHERE created_at < datetime('now', ?)`,
		fmt.Sprintf("-%d days", days))
	return err
}
