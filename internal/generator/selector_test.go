package generator

import (
	"math/rand"
	"testing"

	"svw.info/sudokugen/internal/domain"
)

func TestRandomUnmaskedCellHitsNonzero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var g domain.Grid
	g[4][4] = 5
	g[0][8] = 2
	for i := 0; i < 50; i++ {
		r, c := randomUnmaskedCell(rng, &g)
		if g[r][c] == 0 {
			t.Fatalf("sampled masked cell (%d,%d)", r, c)
		}
	}
}

func TestRandomUnmaskedCellSingleCandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var g domain.Grid
	g[6][2] = 9
	r, c := randomUnmaskedCell(rng, &g)
	if r != 6 || c != 2 {
		t.Fatalf("got (%d,%d), want (6,2)", r, c)
	}
}

func TestJitteredMirrorCellHitsNonzero(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = uint8(c + 1)
		}
	}
	for i := 0; i < 100; i++ {
		pr, pc := rng.Intn(9), rng.Intn(9)
		r, c := jitteredMirrorCell(rng, &g, pr, pc)
		if g[r][c] == 0 {
			t.Fatalf("mirror of (%d,%d) landed on masked cell (%d,%d)", pr, pc, r, c)
		}
	}
}

func TestJitteredMirrorCellWrapsAround(t *testing.T) {
	// Only (0,0) is unmasked; the mirror of (0,0) is (8,8) and the jitter must
	// wrap past the edge to reach it.
	rng := rand.New(rand.NewSource(3))
	var g domain.Grid
	g[0][0] = 1
	r, c := jitteredMirrorCell(rng, &g, 0, 0)
	if r != 0 || c != 0 {
		t.Fatalf("got (%d,%d), want wrapped (0,0)", r, c)
	}
}
