package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/domain"
)

// Singles suggests naked singles: empty cells with exactly one legal digit.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single found in row-major order.
func (h *Singles) Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(&g, r, c); ok {
				return domain.Hint{
					Message: fmt.Sprintf("Single: only %d fits here", v),
					Cell:    domain.CellCoord{Row: r, Col: c},
					Value:   v,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(g *domain.Grid, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if g.Safe(r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
