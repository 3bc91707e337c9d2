// Package storage persists the per-difficulty leaderboard in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ucakyunus/sudoku/internal/domain"
)

// Store handles leaderboard reads and writes on a single SQLite file.
type Store struct {
	db  *sql.DB
	cap int
}

// New opens (or creates) the database at path and applies the schema.
// cap bounds how many rows each difficulty keeps; older low scores are
// pruned on write.
func New(path string, cap int) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db, cap: cap}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		id TEXT PRIMARY KEY,
		player TEXT NOT NULL,
		difficulty INTEGER NOT NULL,
		score INTEGER NOT NULL,
		elapsed_seconds INTEGER NOT NULL,
		mistakes INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_scores_difficulty_score ON scores(difficulty, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Submit inserts a score and prunes rows beyond the per-difficulty cap.
func (s *Store) Submit(ctx context.Context, e *domain.ScoreEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (id, player, difficulty, score, elapsed_seconds, mistakes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Player, int(e.Difficulty), e.Score, e.Elapsed, e.Mistakes, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM scores WHERE difficulty = ? AND id NOT IN (
			SELECT id FROM scores WHERE difficulty = ?
			ORDER BY score DESC, created_at ASC LIMIT ?
		)`,
		int(e.Difficulty), int(e.Difficulty), s.cap,
	)
	if err != nil {
		return fmt.Errorf("prune scores: %w", err)
	}
	return nil
}

// Top returns up to n entries for a difficulty, best score first.
func (s *Store) Top(ctx context.Context, d domain.Difficulty, n int) ([]domain.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player, difficulty, score, elapsed_seconds, mistakes, created_at
		 FROM scores WHERE difficulty = ?
		 ORDER BY score DESC, created_at ASC LIMIT ?`,
		int(d), n,
	)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var out []domain.ScoreEntry
	for rows.Next() {
		var e domain.ScoreEntry
		var diff int
		if err := rows.Scan(&e.ID, &e.Player, &diff, &e.Score, &e.Elapsed, &e.Mistakes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		e.Difficulty = domain.Difficulty(diff)
		out = append(out, e)
	}
	return out, rows.Err()
}
