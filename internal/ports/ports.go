package ports

import (
	"context"
	"time"

	"github.com/ucakyunus/sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a grid and can count its solutions up to a cutoff.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (domain.Grid, Stats, error)
	Count(ctx context.Context, g *domain.Grid, cutoff int) (int, Stats, error)
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty. It returns the
// carved puzzle together with the complete solution it was carved from.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/block).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error)
}

// ScoreStore persists the leaderboard.
type ScoreStore interface {
	Submit(ctx context.Context, e *domain.ScoreEntry) error
	Top(ctx context.Context, d domain.Difficulty, n int) ([]domain.ScoreEntry, error)
}
