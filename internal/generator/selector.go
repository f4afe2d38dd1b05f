package generator

import (
	"math/rand"

	"svw.info/sudokugen/internal/domain"
)

// randomUnmaskedCell samples uniform coordinates until it lands on a nonzero
// cell. The caller must guarantee at least one nonzero cell exists.
func randomUnmaskedCell(rng *rand.Rand, g *domain.Grid) (int, int) {
	for {
		r, c := rng.Intn(9), rng.Intn(9)
		if g[r][c] != 0 {
			return r, c
		}
	}
}

// jitteredMirrorCell mirrors (r, c) through the grid center and perturbs each
// coordinate independently by an offset in [-3, +3], wrapping modulo 9, until
// the perturbed cell is nonzero in g. Mirrored candidates keep removal
// patterns geometrically balanced; the jitter keeps them random.
func jitteredMirrorCell(rng *rand.Rand, g *domain.Grid, r, c int) (int, int) {
	mr, mc := 8-r, 8-c
	for {
		nr := (mr + rng.Intn(7) - 3 + 9) % 9
		nc := (mc + rng.Intn(7) - 3 + 9) % 9
		if g[nr][nc] != 0 {
			return nr, nc
		}
	}
}
