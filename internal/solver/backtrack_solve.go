package solver

import (
	"context"
	"time"

	"github.com/ucakyunus/sudoku/internal/domain"
	"github.com/ucakyunus/sudoku/internal/ports"
)

// Solve fills the first solution of g, searching empty cells in row-major
// order and digits 1-9 ascending. It works on its own copy and returns
// ErrNoSolution when the search space is exhausted.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := *g
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
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
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		return domain.Grid{}, st, ErrNoSolution
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
