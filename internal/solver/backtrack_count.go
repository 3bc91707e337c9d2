package solver

import (
	"context"
	"time"

	"github.com/ucakyunus/sudoku/internal/domain"
	"github.com/ucakyunus/sudoku/internal/ports"
)

// Count enumerates solutions of g, stopping as soon as the count reaches
// cutoff. The early exit is what keeps carving cheap: a sparse grid can
// have combinatorially many completions, and the caller only ever needs
// to know whether there are fewer than cutoff.
func (s *BacktrackingSolver) Count(ctx context.Context, g *domain.Grid, cutoff int) (int, ports.Stats, error) {
	start := time.Now()
	grid := *g
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= cutoff {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= cutoff
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

// Unique reports whether g has exactly one solution.
func (s *BacktrackingSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	n, st, err := s.Count(ctx, g, 2)
	return n == 1, st, err
}
