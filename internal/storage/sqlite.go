// Package storage provides SQLite-based persistence for stars and scores.
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
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished round.
type ScoreEntry struct {
	ID        int64
	Profile   string
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS stars (
			profile TEXT NOT NULL,
			game_id TEXT NOT NULL,
			earned_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, game_id)
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_profile ON scores(profile, game_id);
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

// LoadStars returns the stars earned by profile. Missing rows are unearned.
func (s *Store) LoadStars(profile string) (Stars, error) {
	var stars Stars

	rows, err := s.db.Query("SELECT game_id FROM stars WHERE profile = ?", profile)
	if err != nil {
		return stars, fmt.Errorf("storage: cannot query stars: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var gameID string
		if err := rows.Scan(&gameID); err != nil {
			return Stars{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stars.Set(gameID, true)
	}

	if err := rows.Err(); err != nil {
		return Stars{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stars, nil
}

// SaveStars writes the full star set for profile in one transaction.
// Earned stars keep their original earned_at; cleared ones are deleted.
func (s *Store) SaveStars(profile string, stars Stars) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, id := range StarGames {
		if stars.Has(id) {
			_, err = tx.Exec(
				"INSERT OR IGNORE INTO stars (profile, game_id) VALUES (?, ?)",
				profile, id,
			)
		} else {
			_, err = tx.Exec(
				"DELETE FROM stars WHERE profile = ? AND game_id = ?",
				profile, id,
			)
		}
		if err != nil {
			return fmt.Errorf("storage: cannot save star %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit stars: %w", err)
	}
	return nil
}

// AwardStar marks a single star as earned for profile.
func (s *Store) AwardStar(profile, gameID string) error {
	if !IsStarGame(gameID) {
		return fmt.Errorf("storage: %q has no star slot", gameID)
	}
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO stars (profile, game_id) VALUES (?, ?)",
		profile, gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot award star: %w", err)
	}
	return nil
}

// ResetStars clears every star for profile.
func (s *Store) ResetStars(profile string) error {
	_, err := s.db.Exec("DELETE FROM stars WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot reset stars: %w", err)
	}
	return nil
}

// SaveScore records a finished round for profile.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(profile, gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (profile, game_id, score) VALUES (?, ?, ?)",
		profile, gameID, score,
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

// BestScore returns the highest score profile reached in gameID.
// Returns 0 if no scores exist.
func (s *Store) BestScore(profile, gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE profile = ? AND game_id = ?",
		profile, gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// TopScores retrieves the top N scores for the given game across profiles.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.GameID, &e.Score, &createdAt); err != nil {
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

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Stars      int // Profiles holding the star
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	err = s.db.QueryRow(
		"SELECT COUNT(*) FROM stars WHERE game_id = ?",
		gameID,
	).Scan(&stats.Stars)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count stars: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and SQLite's text datetime.
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
