// Package storage provides SQLite-based persistence for finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionRecord represents one finished session.
type SessionRecord struct {
	ID          int64
	Mode        string
	Score       int
	FuelLeft    int
	ElapsedSecs int
	Goods       map[string]int // Delivered goods by item type
	Medal       bool
	CreatedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			fuel_left INTEGER NOT NULL DEFAULT 0,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			goods TEXT NOT NULL DEFAULT '{}',
			medal INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(mode, score DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	goods := rec.Goods
	if goods == nil {
		goods = map[string]int{}
	}
	blob, err := json.Marshal(goods)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode goods: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (mode, score, fuel_left, elapsed_secs, goods, medal)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Mode, rec.Score, rec.FuelLeft, rec.ElapsedSecs, string(blob), boolToInt(rec.Medal),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopSessions retrieves the top N sessions for a mode, ordered by score
// descending.
func (s *Store) TopSessions(mode string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, fuel_left, elapsed_secs, goods, medal, created_at
		 FROM sessions
		 WHERE mode = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// AllSessions retrieves all sessions for a mode (no limit).
func (s *Store) AllSessions(mode string) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, score, fuel_left, elapsed_secs, goods, medal, created_at
		 FROM sessions
		 WHERE mode = ?
		 ORDER BY score DESC`,
		mode,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearSessions deletes all sessions for the given mode.
func (s *Store) ClearSessions(mode string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a session mode.
type ModeStats struct {
	Mode       string
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Medals     int
	LastPlayed time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), COALESCE(SUM(medal), 0)
		 FROM sessions WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.Medals)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// GetAllModeStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(score), SUM(medal), MAX(created_at)
		 FROM sessions
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.Runs, &m.HighScore, &m.AvgScore, &m.TotalScore, &m.Medals, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseCreatedAt(lastPlayed)
		stats[m.Mode] = &m
	}

	return stats, nil
}

func scanSessions(rows *sql.Rows) ([]SessionRecord, error) {
	var entries []SessionRecord
	for rows.Next() {
		var e SessionRecord
		var goods string
		var medal int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.FuelLeft, &e.ElapsedSecs, &goods, &medal, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(goods), &e.Goods); err != nil {
			return nil, fmt.Errorf("storage: cannot decode goods: %w", err)
		}
		e.Medal = medal != 0
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles both time.Time and string values from the driver.
func parseCreatedAt(v any) time.Time {
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
