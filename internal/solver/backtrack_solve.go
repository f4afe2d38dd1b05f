package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Solve returns the first completion found, depth-first.
func (s *Backtracking) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := g.FirstEmpty()
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if g.Safe(r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
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
	return g, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
