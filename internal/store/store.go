// Package store handles SQLite persistence of game history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/typit/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// playedAtLayout has a fixed width so text ordering matches time ordering.
const playedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for score history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY,
			played_at TEXT NOT NULL,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			wpm INTEGER NOT NULL,
			elapsed_s INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_played_at ON scores(played_at);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AppendScore stores a completed game round.
func (s *Store) AppendScore(ctx context.Context, rec model.ScoreRecord) error {
	playedAt := rec.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (played_at, player, difficulty, score, total, wpm, elapsed_s)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		playedAt.UTC().Format(playedAtLayout),
		rec.PlayerName,
		string(rec.Difficulty),
		rec.Score,
		rec.Total,
		rec.WordsPerMinute,
		rec.ElapsedSeconds,
	)
	if err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

// ListScores returns persisted rounds matching filter, oldest first.
// filter.Last is applied by callers.
func (s *Store) ListScores(ctx context.Context, filter model.HistoryFilter) ([]model.ScoreRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Player != "" {
		clauses = append(clauses, "player = ?")
		args = append(args, filter.Player)
	}
	if filter.Difficulty != "" {
		clauses = append(clauses, "difficulty = ?")
		args = append(args, string(filter.Difficulty))
	}
	if filter.Since != nil {
		clauses = append(clauses, "played_at >= ?")
		args = append(args, filter.Since.UTC().Format(playedAtLayout))
	}
	query := fmt.Sprintf(`SELECT played_at, player, difficulty, score, total, wpm, elapsed_s
		FROM scores
		WHERE %s
		ORDER BY played_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.ScoreRecord
	for rows.Next() {
		var rec model.ScoreRecord
		var playedAt, difficulty string
		if err := rows.Scan(&playedAt, &rec.PlayerName, &difficulty, &rec.Score, &rec.Total, &rec.WordsPerMinute, &rec.ElapsedSeconds); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(playedAtLayout, playedAt)
		if err != nil {
			return nil, err
		}
		rec.PlayedAt = parsed
		rec.Difficulty = model.Difficulty(difficulty)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
