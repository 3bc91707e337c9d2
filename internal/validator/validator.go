package validator

import (
	"context"
	"errors"

	"github.com/ucakyunus/sudoku/internal/domain"
)

// ErrOutOfRange reports coordinates or a value outside the board.
var ErrOutOfRange = errors.New("validator: row, col or value out of range")

// IsValidPlacement reports whether writing v at (row, col) keeps the grid
// consistent: v must not already appear elsewhere in the same row, column
// or 3x3 block. The cell at (row, col) itself is never compared, so the
// check is the same whether the cell is empty or being overwritten.
func IsValidPlacement(g *domain.Grid, row, col int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != col && g[row][i] == v {
			return false
		}
		if i != row && g[i][col] == v {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if (r != row || c != col) && g[r][c] == v {
				return false
			}
		}
	}
	return true
}

// CheckPlacement is the bounds-checked public form of IsValidPlacement.
func CheckPlacement(g *domain.Grid, row, col int, v uint8) (bool, error) {
	if row < 0 || row > 8 || col < 0 || col > 8 || v < 1 || v > 9 {
		return false, ErrOutOfRange
	}
	return IsValidPlacement(g, row, col, v), nil
}

// FastValidator scans a whole grid for row/col/block duplicates.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate returns every cell that collides with an earlier occurrence of
// its digit in some row, column or block. An empty conflict list means the
// grid is consistent (not necessarily complete).
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// blocks
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
