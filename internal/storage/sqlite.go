// Package storage provides SQLite-based persistence for finished games.
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

	"github.com/vovakirdan/number-grab/internal/game"
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished game in the ledger.
type ResultEntry struct {
	ID         int64
	GameID     string
	Seed       int64
	Length     int
	Max        int
	Difficulty int
	Mode       string
	P1Total    int
	P2Total    int
	Winner     string // "P1", "P2" or empty
	Reason     string
	P1Seconds  float64
	P2Seconds  float64
	Duration   time.Duration
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

	// Serialize access; SSH sessions record results concurrently
	db.SetMaxOpenConns(1)

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
			game_id TEXT NOT NULL UNIQUE,
			seed INTEGER NOT NULL,
			length INTEGER NOT NULL,
			max_value INTEGER NOT NULL,
			difficulty INTEGER NOT NULL,
			mode TEXT NOT NULL,
			p1_total INTEGER NOT NULL DEFAULT 0,
			p2_total INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL,
			p1_seconds REAL NOT NULL DEFAULT 0,
			p2_seconds REAL NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO results
		 (game_id, seed, length, max_value, difficulty, mode, p1_total, p2_total,
		  winner, reason, p1_seconds, p2_seconds, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.GameID, e.Seed, e.Length, e.Max, e.Difficulty, e.Mode, e.P1Total, e.P2Total,
		e.Winner, e.Reason, e.P1Seconds, e.P2Seconds, e.Duration.Milliseconds(),
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

// SaveSummary implements game.Recorder.
func (s *Store) SaveSummary(sum game.Summary) error {
	_, err := s.SaveResult(ResultEntry{
		GameID:     sum.GameID,
		Seed:       sum.Seed,
		Length:     sum.Length,
		Max:        sum.Max,
		Difficulty: sum.Difficulty,
		Mode:       sum.Mode,
		P1Total:    sum.P1Total,
		P2Total:    sum.P2Total,
		Winner:     sum.Winner,
		Reason:     sum.Reason,
		P1Seconds:  sum.P1Seconds,
		P2Seconds:  sum.P2Seconds,
		Duration:   sum.Duration,
	})
	return err
}

// Ensure Store implements Recorder
var _ game.Recorder = (*Store)(nil)

const resultColumns = `id, game_id, seed, length, max_value, difficulty, mode, p1_total, p2_total,
		winner, reason, p1_seconds, p2_seconds, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (ResultEntry, error) {
	var e ResultEntry
	var durationMS int64
	var createdAt any
	err := row.Scan(
		&e.ID,
		&e.GameID,
		&e.Seed,
		&e.Length,
		&e.Max,
		&e.Difficulty,
		&e.Mode,
		&e.P1Total,
		&e.P2Total,
		&e.Winner,
		&e.Reason,
		&e.P1Seconds,
		&e.P2Seconds,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return e, err
	}
	e.Duration = time.Duration(durationMS) * time.Millisecond
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles both time.Time and string datetimes.
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

// RecentResults retrieves the most recent results, newest first.
// An empty mode selects every mode.
func (s *Store) RecentResults(mode string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		e, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ResultByID retrieves a result by its game ID.
// Returns nil if there is no such game.
func (s *Store) ResultByID(gameID string) (*ResultEntry, error) {
	e, err := scanResult(s.db.QueryRow(
		`SELECT `+resultColumns+` FROM results WHERE game_id = ?`,
		gameID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &e, nil
}

// Modes returns every mode that has at least one result, sorted.
func (s *Store) Modes() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT mode FROM results ORDER BY mode`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query modes: %w", err)
	}
	defer rows.Close()

	var modes []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		modes = append(modes, m)
	}
	return modes, rows.Err()
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode       string
	Games      int
	P1Wins     int
	P2Wins     int
	Ties       int
	BestTotal  int
	LastPlayed time.Time
}

// Stats retrieves statistics for every mode that has been played.
// Quit and restarted games count as played but have no winner.
func (s *Store) Stats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode,
		        COUNT(*),
		        SUM(CASE WHEN winner = 'P1' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = 'P2' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = '' AND reason = 'line-empty' THEN 1 ELSE 0 END),
		        MAX(MAX(p1_total, p2_total)),
		        MAX(created_at)
		 FROM results
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var st ModeStats
		var lastPlayed any
		if err := rows.Scan(&st.Mode, &st.Games, &st.P1Wins, &st.P2Wins, &st.Ties, &st.BestTotal, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Clear deletes the results of mode, or every result when mode is empty.
func (s *Store) Clear(mode string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR mode = ?", mode, mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
