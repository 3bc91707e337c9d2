package solver

import (
	"errors"

	"github.com/ucakyunus/sudoku/internal/domain"
)

// ErrNoSolution signals an exhausted search space. Absence of a solution
// is an expected outcome for inconsistent inputs, not a failure of the
// solver itself.
var ErrNoSolution = errors.New("solver: no solution")

// BacktrackingSolver is a straightforward recursive solver. Digits are
// tried in ascending order, so results are deterministic for a given
// input; callers must pass internally consistent grids.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func isValid(g *domain.Grid, r, c int, v uint8) bool {
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

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
