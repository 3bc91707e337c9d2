package domain

// Grid is a 9x9 Sudoku grid of digits 0-9, where 0 marks an empty cell.
// Being an array type it copies by assignment, which is how the engine
// takes private working copies.
type Grid [9][9]uint8

// BlockIndex returns the 3x3 block containing (row, col), 0-8 row-major.
func BlockIndex(row, col int) int {
	return (row/3)*3 + col/3
}

// Filled counts the non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Full reports whether every cell holds a digit.
func (g *Grid) Full() bool {
	return g.Filled() == 81
}
