// Package datastore persists finished reports into a local SQLite database
// so past analyses can be queried later.
package datastore

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lepinkainen/cardscout/internal/report"
)

// Store defines the interface for local report persistence.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// SaveReport writes all rows of one analysis run for the given SteamID
	SaveReport(steamID string, rows []report.Row) error

	// Close closes the connection to the data store
	Close() error
}

const reportSchema = `CREATE TABLE IF NOT EXISTS report_rows (
	steamid TEXT NOT NULL,
	appid INTEGER NOT NULL,
	name TEXT,
	playtime_forever_min INTEGER,
	playtime_forever_hrs REAL,
	playtime_category TEXT,
	has_trading_cards TEXT,
	card_drops_remaining TEXT,
	achievements_status TEXT,
	generated_at TEXT NOT NULL,
	PRIMARY KEY (steamid, appid)
)`

// SQLiteStore implements Store on a local SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string

	// now is stubbed in tests for a stable generated_at column
	now func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore instance
func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{
		dbPath: dbPath,
		now:    time.Now,
	}
}

// Connect opens the SQLite database and ensures the report table exists.
func (s *SQLiteStore) Connect() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(reportSchema); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return fmt.Errorf("failed to create report table: %w (close: %v)", err, closeErr)
		}
		return fmt.Errorf("failed to create report table: %w", err)
	}
	s.db = db
	return nil
}

// SaveReport upserts all rows of one run in a single transaction, so a
// re-analysis of the same library replaces the previous snapshot per appid.
func (s *SQLiteStore) SaveReport(steamID string, rows []report.Row) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// Rollback is a no-op after a successful commit
		_ = tx.Rollback()
	}()

	stmt, err := tx.Prepare(`INSERT INTO report_rows (
		steamid, appid, name, playtime_forever_min, playtime_forever_hrs,
		playtime_category, has_trading_cards, card_drops_remaining,
		achievements_status, generated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(steamid, appid) DO UPDATE SET
		name = excluded.name,
		playtime_forever_min = excluded.playtime_forever_min,
		playtime_forever_hrs = excluded.playtime_forever_hrs,
		playtime_category = excluded.playtime_category,
		has_trading_cards = excluded.has_trading_cards,
		card_drops_remaining = excluded.card_drops_remaining,
		achievements_status = excluded.achievements_status,
		generated_at = excluded.generated_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	generatedAt := s.now().UTC().Format(time.RFC3339)
	for _, row := range rows {
		if _, err := stmt.Exec(
			steamID,
			row.AppID,
			row.Name,
			row.PlaytimeForeverMin,
			row.PlaytimeForeverHrs,
			row.PlaytimeCategory,
			row.HasTradingCards,
			row.CardDropsRemaining,
			row.AchievementsStatus,
			generatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert report row for appid %d: %w", row.AppID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
