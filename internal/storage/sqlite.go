// Package storage provides SQLite-based persistence for runs, high scores,
// ghosts and achievements.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/neon-highway/internal/games/racer"
)

const timestampLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Ensure Store implements racer.Persistence
var _ racer.Persistence = (*Store)(nil)

// RunEntry is one finished run as stored in the scores table.
type RunEntry struct {
	ID            int64
	Mode          string
	Score         int
	Distance      float64
	Level         int
	MaxMultiplier float64
	ComboBonus    int
	Duration      time.Duration
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer keeps SQLITE_BUSY away from concurrent SSH sessions.
	db.SetMaxOpenConns(1)

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

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p[1:], "/")), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			max_multiplier REAL NOT NULL DEFAULT 1,
			combo_bonus INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			mode TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS ghosts (
			mode TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// HighScore returns the best score recorded for mode, or 0.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM (
			SELECT score FROM high_scores WHERE mode = ?
			UNION ALL
			SELECT score FROM scores WHERE mode = ?
		)`,
		mode, mode,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// SaveHighScore raises the stored high score for mode. Lower values are
// ignored, so writes can arrive in any order.
func (s *Store) SaveHighScore(mode string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (mode, score) VALUES (?, ?)
		 ON CONFLICT(mode) DO UPDATE SET
			score = MAX(score, excluded.score),
			updated_at = CURRENT_TIMESTAMP`,
		mode, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveRun records a finished run. Its ghost replaces the stored one when
// the run beat it.
func (s *Store) SaveRun(run racer.RunRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(
		`INSERT INTO scores (mode, score, distance, level, max_multiplier, combo_bonus, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Mode, run.Score, run.Distance, run.Level, run.MaxMultiplier, run.ComboBonus, run.Duration.Milliseconds(),
	); err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO high_scores (mode, score) VALUES (?, ?)
		 ON CONFLICT(mode) DO UPDATE SET
			score = MAX(score, excluded.score),
			updated_at = CURRENT_TIMESTAMP`,
		run.Mode, run.Score,
	); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}

	if len(run.Ghost) > 0 {
		if _, err := tx.Exec(
			`INSERT INTO ghosts (mode, score, data) VALUES (?, ?, ?)
			 ON CONFLICT(mode) DO UPDATE SET
				score = excluded.score,
				data = excluded.data,
				created_at = CURRENT_TIMESTAMP
			 WHERE excluded.score > ghosts.score`,
			run.Mode, run.Score, run.Ghost,
		); err != nil {
			return fmt.Errorf("storage: cannot save ghost: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return nil
}

// BestGhost returns the encoded ghost of the best run for mode, or nil.
func (s *Store) BestGhost(mode string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM ghosts WHERE mode = ?", mode).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ghost: %w", err)
	}
	return data, nil
}

// UnlockAchievement marks an achievement as unlocked. Unlocking twice keeps
// the first timestamp.
func (s *Store) UnlockAchievement(id string) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO achievements (id) VALUES (?)", id)
	if err != nil {
		return fmt.Errorf("storage: cannot unlock achievement: %w", err)
	}
	return nil
}

// Achievements returns the ids of every unlocked achievement, oldest first.
func (s *Store) Achievements() ([]string, error) {
	rows, err := s.db.Query("SELECT id FROM achievements ORDER BY unlocked_at, id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// TopScores retrieves the top N runs for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, distance, level, max_multiplier, combo_bonus, duration_ms, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.Distance, &e.Level,
			&e.MaxMultiplier, &e.ComboBonus, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores deletes every run, high score and ghost for the given mode.
func (s *Store) ClearScores(mode string) error {
	for _, table := range []string{"scores", "high_scores", "ghosts"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE mode = ?", mode); err != nil { //#nosec G202 -- table names are constants
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode          string
	RunsCount     int
	HighScore     int
	AvgScore      float64
	TotalDistance float64
	LastPlayed    time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(distance), 0), MAX(created_at)
		 FROM scores WHERE mode = ?`,
		mode,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalDistance, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	// A throttled high score can be ahead of the last finished run.
	hs, err := s.HighScore(mode)
	if err != nil {
		return nil, err
	}
	stats.HighScore = max(stats.HighScore, hs)

	return stats, nil
}

// GetAllModesStats retrieves statistics for all modes that have been played.
func (s *Store) GetAllModesStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(distance), MAX(created_at)
		 FROM scores
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all modes stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.RunsCount, &m.HighScore, &m.AvgScore, &m.TotalDistance, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTimestamp(lastPlayed)
		stats[m.Mode] = &m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timestampLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
