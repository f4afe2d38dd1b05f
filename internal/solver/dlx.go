package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// DLX implements Algorithm X with dancing links as an alternative Counter
// and Solver. Exact-cover mapping: 324 constraint columns, 729 candidate
// rows (r,c,v). Columns 0..80 mean cell (r,c) is filled, 81..161 row r
// contains digit v, 162..242 col c contains digit v, and 243..323 box b
// contains digit v with b = (r/3)*3 + c/3.
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

const (
	dlxSize  = 9
	dlxCells = dlxSize * dlxSize // 81
	dlxCols  = 4 * dlxCells      // 324
	dlxRows  = dlxCells * dlxSize

	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type link struct {
	left, right, up, down *link
	head                  *header
	rowIdx                int // 0..728 identifies (r,c,v)
}

type header struct {
	link
	size   int
	active bool // still uncovered
}

type matrix struct {
	heads     [dlxCols]*header
	rowHead   [dlxRows]*link
	chosen    [dlxCells]*link
	chosenLen int
	nodes     int
	activeCnt int
}

func rowIndex(r, c, v int) int {
	return (r*dlxSize+c)*dlxSize + (v - 1)
}

func decodeRow(row int) (r, c, v int) {
	cell := row / dlxSize
	v = row%dlxSize + 1
	r = cell / dlxSize
	c = cell % dlxSize
	return
}

func rowColumns(r, c, v int) [4]int {
	box := (r/3)*3 + c/3
	return [4]int{
		colCell + r*dlxSize + c,
		colRowNum + r*dlxSize + (v - 1),
		colColNum + c*dlxSize + (v - 1),
		colBoxNum + box*dlxSize + (v - 1),
	}
}

func newMatrix() *matrix {
	m := &matrix{}
	for i := 0; i < dlxCols; i++ {
		h := &header{active: true}
		h.up = &h.link
		h.down = &h.link
		m.heads[i] = h
	}
	m.activeCnt = dlxCols

	for r := 0; r < dlxSize; r++ {
		for c := 0; c < dlxSize; c++ {
			for v := 1; v <= dlxSize; v++ {
				row := rowIndex(r, c, v)
				var first, prev *link
				for _, colID := range rowColumns(r, c, v) {
					h := m.heads[colID]
					n := &link{head: h, rowIdx: row}
					// append at the bottom of the column
					n.down = &h.link
					n.up = h.link.up
					h.link.up.down = n
					h.link.up = n
					h.size++
					// close the horizontal ring of the row's 4 nodes
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rowHead[row] = first
			}
		}
	}
	return m
}

func (m *matrix) cover(h *header) {
	if h.active {
		h.active = false
		m.activeCnt--
	}
	for i := h.down; i != &h.link; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.head.size--
		}
	}
}

func (m *matrix) uncover(h *header) {
	for i := h.up; i != &h.link; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.head.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !h.active {
		h.active = true
		m.activeCnt++
	}
}

// chooseColumn picks the active column of minimum size (fewest candidates).
func (m *matrix) chooseColumn() *header {
	var best *header
	for _, h := range m.heads {
		if !h.active {
			continue
		}
		if best == nil || h.size < best.size {
			best = h
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// search explores the matrix depth-first. Every full cover increments *found;
// when limit > 0 the search stops as soon as *found reaches it, while
// limit <= 0 counts every solution. The return value means "stop unwinding".
func (m *matrix) search(ctx context.Context, k, limit int, found *int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if m.activeCnt == 0 {
		m.chosenLen = k
		*found++
		return limit > 0 && *found >= limit
	}

	h := m.chooseColumn()
	if h == nil || h.size == 0 {
		return false
	}
	m.cover(h)
	for r := h.down; r != &h.link; r = r.down {
		m.nodes++
		m.chosen[k] = r
		for j := r.right; j != r; j = j.right {
			if j.head.active {
				m.cover(j.head)
			}
		}
		if m.search(ctx, k+1, limit, found) {
			for j := r.left; j != r; j = j.left {
				m.uncover(j.head)
			}
			m.uncover(h)
			return true
		}
		for j := r.left; j != r; j = j.left {
			m.uncover(j.head)
		}
	}
	m.uncover(h)
	return false
}

// ErrConflictingGivens means two givens share a digit in a row, column, or
// box, so the grid is not a valid partial Sudoku.
var ErrConflictingGivens = errors.New("dlx: conflicting givens")

// applyGiven selects the (r,c,v) row at the top level by covering its
// columns. A column that is already covered was claimed by an earlier given,
// which covering again would corrupt, so it is reported as a conflict.
func (m *matrix) applyGiven(r, c, v int) error {
	head := m.rowHead[rowIndex(r, c, v)]
	if head == nil {
		return errors.New("dlx: invalid row mapping")
	}
	for j := head; ; j = j.right {
		if !j.head.active {
			return ErrConflictingGivens
		}
		m.cover(j.head)
		if j.right == head {
			break
		}
	}
	return nil
}

func buildMatrix(g *domain.Grid) (*matrix, error) {
	m := newMatrix()
	for r := 0; r < dlxSize; r++ {
		for c := 0; c < dlxSize; c++ {
			if v := int(g[r][c]); v != 0 {
				if v < 1 || v > 9 {
					return nil, errors.New("dlx: digit out of range")
				}
				if err := m.applyGiven(r, c, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

// Count returns the exact number of completions of g.
func (s *DLX) Count(ctx context.Context, g domain.Grid) (int, ports.Stats, error) {
	start := time.Now()
	m, err := buildMatrix(&g)
	if err != nil {
		return 0, ports.Stats{}, err
	}
	found := 0
	_ = m.search(ctx, 0, 0, &found)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return 0, st, err
	}
	return found, st, nil
}

// Solve returns the first completion found.
func (s *DLX) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	m, err := buildMatrix(&g)
	if err != nil {
		return domain.Grid{}, ports.Stats{}, err
	}
	found := 0
	_ = m.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return domain.Grid{}, st, err
	}
	if found < 1 {
		return domain.Grid{}, st, ErrNoSolution
	}
	out := g // givens stay, chosen rows fill the rest
	for i := 0; i < m.chosenLen; i++ {
		r, c, v := decodeRow(m.chosen[i].rowIdx)
		out[r][c] = uint8(v)
	}
	return out, st, nil
}
