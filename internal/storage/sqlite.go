// Package storage provides SQLite-based persistence for level results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-platformer/internal/driver"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Outcome labels stored in the outcome column.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// ResultEntry represents one finished level attempt.
type ResultEntry struct {
	ID         int64
	PackID     string
	LevelIndex int // 0-based
	Outcome    string
	Ticks      int
	Coins      int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_pack ON results(pack_id);
		CREATE INDEX IF NOT EXISTS idx_results_fastest ON results(pack_id, outcome, ticks);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished level attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	if e.Outcome != OutcomeWon && e.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: invalid outcome %q", e.Outcome)
	}

	result, err := s.db.Exec(
		"INSERT INTO results (pack_id, level_index, outcome, ticks, coins) VALUES (?, ?, ?, ?, ?)",
		e.PackID, e.LevelIndex, e.Outcome, e.Ticks, e.Coins,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordResult implements driver.ResultRecorder.
func (s *Store) RecordResult(r driver.Result) error {
	_, err := s.SaveResult(ResultEntry{
		PackID:     r.PackID,
		LevelIndex: r.LevelIndex,
		Outcome:    r.Outcome.String(),
		Ticks:      r.Ticks,
		Coins:      r.Coins,
	})
	return err
}

// Ensure Store implements ResultRecorder
var _ driver.ResultRecorder = (*Store)(nil)

// TopResults retrieves the fastest winning attempts for the given pack.
// Ties on ticks go to the earlier record.
func (s *Store) TopResults(packID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, level_index, outcome, ticks, coins, created_at
		 FROM results
		 WHERE pack_id = ? AND outcome = ?
		 ORDER BY ticks ASC, id ASC
		 LIMIT ?`,
		packID, OutcomeWon, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// RecentResults retrieves the latest attempts for the given pack, won or lost.
func (s *Store) RecentResults(packID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, level_index, outcome, ticks, coins, created_at
		 FROM results
		 WHERE pack_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PackID, &e.LevelIndex, &e.Outcome, &e.Ticks, &e.Coins, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestTicks returns the fewest ticks any win of the level took.
// The bool is false when the level has never been won.
func (s *Store) BestTicks(packID string, levelIndex int) (int, bool, error) {
	var ticks sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(ticks) FROM results WHERE pack_id = ? AND level_index = ? AND outcome = ?",
		packID, levelIndex, OutcomeWon,
	).Scan(&ticks)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best ticks: %w", err)
	}

	if !ticks.Valid {
		return 0, false, nil
	}

	return int(ticks.Int64), true, nil
}

// ClearResults deletes all results for the given pack.
func (s *Store) ClearResults(packID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	PackID     string
	Attempts   int
	Wins       int
	Losses     int
	TotalCoins int64
	BestLevel  int // Highest 0-based level index ever won, -1 if none
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a specific pack.
func (s *Store) Stats(packID string) (*PackStats, error) {
	stats := &PackStats{PackID: packID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(coins), 0),
		        COALESCE(MAX(CASE WHEN outcome = 'won' THEN level_index END), -1)
		 FROM results WHERE pack_id = ?`,
		packID,
	).Scan(&stats.Attempts, &stats.Wins, &stats.Losses, &stats.TotalCoins, &stats.BestLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE pack_id = ? ORDER BY id DESC LIMIT 1`,
		packID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllPackStats retrieves statistics for every pack that has been played.
func (s *Store) AllPackStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT pack_id FROM results`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list packs: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan pack row: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := make(map[string]*PackStats, len(ids))
	for _, id := range ids {
		st, err := s.Stats(id)
		if err != nil {
			return nil, err
		}
		stats[id] = st
	}
	return stats, nil
}
