package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkscotty/contentspark/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSettingsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	v, err := db.GetSetting("ai_provider")
	require.NoError(t, err)
	assert.Equal(t, "", v, "seeded settings start empty")

	require.NoError(t, db.SetSetting("ai_provider", "ollama"))
	v, err = db.GetSetting("ai_provider")
	require.NoError(t, err)
	assert.Equal(t, "ollama", v)

	_, err = db.GetSetting("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSettingsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.SetSetting("contentSparkTheme", `{"mode":"dark","accent":"green"}`))
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	defer db.Close()

	v, err := db.GetSetting("contentSparkTheme")
	require.NoError(t, err)
	assert.Equal(t, `{"mode":"dark","accent":"green"}`, v)
}

func TestGenerationLogAndStats(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.LogGeneration(models.GenerationLog{
		Kind: "post", Provider: "gemini", Model: "gemini-2.5-flash", TokensUsed: 120, DurationMs: 900,
	}))
	require.NoError(t, db.LogGeneration(models.GenerationLog{
		Kind: "image", Provider: "gemini", Model: "imagen-4.0-generate-001", ErrorMessage: "quota exceeded",
	}))

	stats, err := db.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRequests)
	assert.Equal(t, 1, stats.FailedRequests)
	assert.Equal(t, 120, stats.TotalTokensUsed)

	recent, err := db.RecentGenerations(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "image", recent[0].Kind, "newest entry first")
	assert.Equal(t, "quota exceeded", recent[0].ErrorMessage)
	assert.Equal(t, "", recent[1].ErrorMessage)
}

func TestOpenClosesConnectionOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		expect func(mock sqlmock.Sqlmock)
	}{
		{"ping", func(mock sqlmock.Sqlmock) {
			mock.ExpectPing().WillReturnError(errors.New("unable to open database file"))
		}},
		{"migrate", func(mock sqlmock.Sqlmock) {
			mock.ExpectPing()
			mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("disk I/O error"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)

			tt.expect(mock)
			mock.ExpectClose()

			db, err := open(conn, "")
			require.Error(t, err)
			assert.Nil(t, db)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetSettingFailureLeavesCacheUntouched(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db := newDB(conn, "")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT OR REPLACE INTO settings`)).
		WithArgs("contentSparkHistory", "[]").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM settings WHERE key = ?`)).
		WithArgs("contentSparkHistory").
		WillReturnError(sql.ErrNoRows)

	err = db.SetSetting("contentSparkHistory", "[]")
	require.Error(t, err)

	_, err = db.GetSetting("contentSparkHistory")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
