// Package storage keeps scores and finished runs in SQLite, using the
// pure-Go modernc.org/sqlite driver so builds need no CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Run outcomes.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// ScoreEntry is one saved score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Run is one finished game: how it ended and what was left.
type Run struct {
	ID        int64
	GameID    string
	Score     int
	Lives     int    // lives left at the end
	Outcome   string // OutcomeWon or OutcomeLost
	Ticks     int    // simulation ticks played
	CreatedAt time.Time
}

// GameStats aggregates everything stored for one game.
type GameStats struct {
	GameID     string
	GamesCount int // saved scores
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Wins       int
	Losses     int
	LastPlayed time.Time
}

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`,

	`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		lives INTEGER NOT NULL DEFAULT 0,
		outcome TEXT NOT NULL CHECK (outcome IN ('won', 'lost')),
		ticks INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(game_id, id DESC);`,
}

// Store is a handle on the scores database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating parent directories
// and bringing the schema up to date. A leading ~ is the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records score for gameID and returns the new row ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return lastID(res)
}

// SaveRun records a finished game and returns the new row ID.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.Outcome != OutcomeWon && run.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: unknown run outcome %q", run.Outcome)
	}
	res, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, lives, outcome, ticks) VALUES (?, ?, ?, ?, ?)",
		run.GameID, run.Score, run.Lives, run.Outcome, run.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return lastID(res)
}

func lastID(res sql.Result) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit scores for gameID, best first; ties keep
// insertion order. limit <= 0 means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return queryAll(s.db, func(rows *sql.Rows) (ScoreEntry, error) {
		var e ScoreEntry
		var created any
		err := rows.Scan(&e.ID, &e.GameID, &e.Score, &created)
		e.CreatedAt = parseTime(created)
		return e, err
	}, `SELECT id, game_id, score, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
}

// RecentRuns returns up to limit runs for gameID, newest first.
// limit <= 0 means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return queryAll(s.db, func(rows *sql.Rows) (Run, error) {
		var r Run
		var created any
		err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Lives, &r.Outcome, &r.Ticks, &created)
		r.CreatedAt = parseTime(created)
		return r, err
	}, `SELECT id, game_id, score, lives, outcome, ticks, created_at FROM runs
		WHERE game_id = ? ORDER BY id DESC LIMIT ?`, gameID, limit)
}

func queryAll[T any](db *sql.DB, scan func(*sql.Rows) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query failed: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// HighScore returns the best score for gameID, or 0 when none is saved.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// GetGameStats aggregates scores and runs for gameID. A game with no
// history gets zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
			COALESCE(SUM(score), 0), MAX(created_at)
		FROM scores WHERE game_id = ?`, gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)

	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(outcome = ?), 0), COALESCE(SUM(outcome = ?), 0)
		FROM runs WHERE game_id = ?`, OutcomeWon, OutcomeLost, gameID,
	).Scan(&stats.Wins, &stats.Losses)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	return stats, nil
}

// ClearScores deletes every score and run for gameID.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, table := range []string{"scores", "runs"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// parseTime reads a DATETIME column. The driver hands back either a
// time.Time or SQLite's text form depending on the expression.
func parseTime(v any) time.Time {
	var text string
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		text = t
	case []byte:
		text = string(t)
	default:
		return time.Time{}
	}
	parsed, err := time.Parse(time.DateTime, text)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
