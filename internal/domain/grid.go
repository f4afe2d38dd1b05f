package domain

// Grid is a 9x9 Sudoku board; 0 marks an empty cell, 1..9 a placed digit.
// Grids are plain values: assignment copies all 81 cells, so search code can
// hand out and mutate copies without aliasing hazards.
type Grid [9][9]uint8

// MinGivens is the smallest number of givens a 9x9 puzzle can have while
// still admitting a unique solution.
const MinGivens = 17

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int
	Col int
}

// Safe reports whether v may legally occupy (r, c): false iff v already
// appears among the nonzero cells of row r, column c, or the 3x3 box holding
// (r, c). This is the single legality predicate shared by the fill search,
// the solution counters, and the hinter.
func (g *Grid) Safe(r, c int, v uint8) bool {
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

// FirstEmpty returns the first empty cell in row-major order, or ok=false
// when the grid is completely filled.
func (g *Grid) FirstEmpty() (r, c int, ok bool) {
	for r = 0; r < 9; r++ {
		for c = 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// GivenCount returns the number of nonzero cells.
func (g *Grid) GivenCount() int {
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
