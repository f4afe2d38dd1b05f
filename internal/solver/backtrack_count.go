package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Count returns the exact number of completions of g. Every legal digit at
// the first empty cell is tried and the subtree counts are summed; a grid
// with no empty cell contributes exactly 1. There is no early stop: the
// masking oracle depends on exact multiplicities.
func (s *Backtracking) Count(ctx context.Context, g domain.Grid) (int, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var dfs func() int
	dfs = func() int {
		if ctx.Err() != nil {
			return 0
		}
		r, c, ok := g.FirstEmpty()
		if !ok {
			return 1
		}
		total := 0
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if g.Safe(r, c, v) {
				g[r][c] = v
				total += dfs()
				g[r][c] = 0
			}
		}
		return total
	}
	n := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return 0, st, err
	}
	return n, st, nil
}
