package generator

import (
	"context"
	"errors"
	"math/rand"

	"svw.info/sudokugen/internal/domain"
)

// The three diagonal boxes share no row, column, or box with one another, so
// seeding them with independent permutations can never conflict.
var diagonalOffsets = [3]int{0, 3, 6}

// ErrUnfillable means the seeded grid could not be completed. A validly
// seeded 9x9 grid always has a completion, so seeing this indicates a defect
// in the seeding or the safety predicate.
var ErrUnfillable = errors.New("generator: seeded grid could not be completed")

// Fill produces one fully filled valid grid: the diagonal boxes are seeded
// with random permutations of 1..9, then the remaining 54 cells are filled by
// depth-first search over first-empty cells in row-major order, trying digits
// in a fresh random order per cell and undoing each placement on backtrack.
func Fill(ctx context.Context, rng *rand.Rand) (domain.Grid, error) {
	var g domain.Grid
	for _, off := range diagonalOffsets {
		for i, p := range rng.Perm(9) {
			g[off+i/3][off+i%3] = uint8(p + 1)
		}
	}
	if !fillDFS(ctx, rng, &g) {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, err
		}
		return domain.Grid{}, ErrUnfillable
	}
	return g, nil
}

func fillDFS(ctx context.Context, rng *rand.Rand, g *domain.Grid) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := g.FirstEmpty()
	if !ok {
		return true
	}
	digits := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.Shuffle(9, func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	for _, v := range digits {
		if g.Safe(r, c, v) {
			g[r][c] = v
			if fillDFS(ctx, rng, g) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}
