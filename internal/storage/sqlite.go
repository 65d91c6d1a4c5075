// Package storage provides SQLite-based persistence for level completions
// and run scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run: the number of levels solved in a pack.
type ScoreEntry struct {
	ID        int64
	Pack      string
	Score     int
	CreatedAt time.Time
}

// Completion records one solved level.
type Completion struct {
	ID        int64
	Pack      string
	Level     int // 1-based index in the pack
	LevelName string
	Moves     int
	Pushes    int
	Duration  time.Duration
	SessionID string // empty for local play
	CreatedAt time.Time
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

// DefaultPath returns the database path used when none is configured.
func DefaultPath() string {
	return filepath.Join("~", ".sokoban", "records.db")
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(pack, score DESC);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			session_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level ON completions(pack, level, moves, pushes);
		CREATE INDEX IF NOT EXISTS idx_completions_session ON completions(session_id);
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

// parseTime handles both time.Time and string datetime values.
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

// SaveScore records a finished run for the given pack.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(pack string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (pack, score) VALUES (?, ?)",
		pack, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N runs for the given pack.
// Results are ordered by score descending.
func (s *Store) TopScores(pack string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack, score, created_at
		 FROM scores
		 WHERE pack = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pack, &e.Score, &createdAt); err != nil {
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

// HighScore returns the most levels solved in one run of the given pack.
// Returns 0 if no scores exist.
func (s *Store) HighScore(pack string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE pack = ?",
		pack,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearPack deletes all scores and completions for the given pack.
func (s *Store) ClearPack(pack string) error {
	for _, table := range []string{"scores", "completions"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE pack = ?", pack); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// SaveCompletion records a solved level.
// Returns the ID of the inserted record.
func (s *Store) SaveCompletion(c Completion) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO completions (pack, level, level_name, moves, pushes, duration_ms, session_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.Pack, c.Level, c.LevelName, c.Moves, c.Pushes, c.Duration.Milliseconds(), c.SessionID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const completionColumns = `id, pack, level, level_name, moves, pushes, duration_ms, session_id, created_at`

func scanCompletions(rows *sql.Rows) ([]Completion, error) {
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Pack, &c.Level, &c.LevelName, &c.Moves, &c.Pushes,
			&durationMS, &c.SessionID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan completion: %w", err)
		}
		c.Duration = time.Duration(durationMS) * time.Millisecond
		c.CreatedAt = parseTime(createdAt)
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestCompletion returns the fewest-moves completion of one level, with
// pushes and then the earliest record breaking ties. Returns nil if the
// level was never solved.
func (s *Store) BestCompletion(pack string, level int) (*Completion, error) {
	rows, err := s.db.Query(
		`SELECT `+completionColumns+`
		 FROM completions
		 WHERE pack = ? AND level = ?
		 ORDER BY moves ASC, pushes ASC, id ASC
		 LIMIT 1`,
		pack, level,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best completion: %w", err)
	}

	list, err := scanCompletions(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// BestCompletions returns the best completion of every solved level in the
// pack, ordered by level.
func (s *Store) BestCompletions(pack string) ([]Completion, error) {
	rows, err := s.db.Query(
		`SELECT `+completionColumns+`
		 FROM completions c
		 WHERE pack = ? AND id = (
			SELECT id FROM completions
			WHERE pack = c.pack AND level = c.level
			ORDER BY moves ASC, pushes ASC, id ASC
			LIMIT 1
		 )
		 ORDER BY level ASC`,
		pack,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best completions: %w", err)
	}
	return scanCompletions(rows)
}

// CompletedLevels returns the set of solved level indexes in the pack.
func (s *Store) CompletedLevels(pack string) (map[int]bool, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT level FROM completions WHERE pack = ?",
		pack,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completed levels: %w", err)
	}
	defer rows.Close()

	done := make(map[int]bool)
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		done[level] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return done, nil
}

// SessionCompletions retrieves the most recent completions of one SSH session.
func (s *Store) SessionCompletions(sessionID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+completionColumns+`
		 FROM completions
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session completions: %w", err)
	}
	return scanCompletions(rows)
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	Pack        string
	Runs        int
	HighScore   int
	Completions int
	Solved      int // distinct levels solved
	LastPlayed  time.Time
}

// GetPackStats retrieves aggregated statistics for a specific pack.
func (s *Store) GetPackStats(pack string) (*PackStats, error) {
	stats := &PackStats{Pack: pack}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0) FROM scores WHERE pack = ?`,
		pack,
	).Scan(&stats.Runs, &stats.HighScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level) FROM completions WHERE pack = ?`,
		pack,
	).Scan(&stats.Completions, &stats.Solved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get completion stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM completions WHERE pack = ? ORDER BY id DESC LIMIT 1`,
		pack,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
