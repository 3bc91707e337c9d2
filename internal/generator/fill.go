package generator

import (
	"context"
	"math/rand"

	"github.com/ucakyunus/sudoku/internal/domain"
)

// FillSolution produces a complete valid grid by row-major backtracking,
// trying the digits 1-9 in a freshly shuffled order at every cell. The
// shuffle is the only source of variety between calls, so rng must be
// seeded by the caller; the engine keeps no random state of its own.
func FillSolution(ctx context.Context, rng *rand.Rand) (domain.Grid, error) {
	var grid domain.Grid
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if allowed(&grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs(0, 0) {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, err
		}
		// A full valid grid always exists for an empty board; getting
		// here means the search itself is broken.
		panic("generator: backtracking failed to fill an empty grid")
	}
	return grid, nil
}

// allowed mirrors the row/col/block checks locally for the fill loop.
func allowed(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
