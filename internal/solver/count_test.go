package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Known to have exactly one completion.
var uniqueGrid = domain.Grid{
	{0, 1, 0, 0, 2, 0, 3, 0, 4},
	{0, 0, 2, 0, 0, 5, 6, 1, 0},
	{7, 0, 0, 0, 0, 3, 0, 8, 0},
	{5, 0, 6, 0, 4, 0, 0, 0, 1},
	{0, 0, 1, 0, 0, 0, 2, 0, 0},
	{9, 0, 0, 0, 7, 0, 4, 0, 5},
	{0, 4, 0, 6, 0, 0, 0, 0, 9},
	{0, 6, 7, 2, 0, 0, 5, 0, 0},
	{2, 0, 8, 0, 1, 0, 0, 3, 0},
}

// Verified by third-party solvers to have exactly 5 completions.
var fiveSolutionGrid = domain.Grid{
	{0, 0, 0, 0, 2, 0, 3, 0, 4},
	{0, 0, 2, 0, 0, 5, 6, 1, 0},
	{7, 0, 0, 0, 0, 3, 0, 8, 0},
	{5, 0, 6, 0, 0, 0, 0, 0, 1},
	{0, 0, 1, 0, 0, 0, 2, 0, 0},
	{9, 0, 0, 0, 7, 0, 4, 0, 5},
	{0, 4, 0, 0, 0, 0, 0, 0, 9},
	{0, 6, 7, 0, 0, 0, 5, 0, 0},
	{2, 0, 8, 0, 1, 0, 0, 0, 0},
}

// A complete valid solution (of the classic sample below).
var solvedGrid = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// A classic solvable puzzle whose solution is solvedGrid.
var classicPuzzle = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func counterImpls() []struct {
	name string
	c    ports.Counter
} {
	return []struct {
		name string
		c    ports.Counter
	}{
		{"backtrack", NewBacktracking()},
		{"dlx", NewDLX()},
	}
}

func TestCountExact(t *testing.T) {
	cases := []struct {
		name string
		g    domain.Grid
		want int
	}{
		{"unique completion", uniqueGrid, 1},
		{"five completions", fiveSolutionGrid, 5},
		{"already solved", solvedGrid, 1},
	}
	for _, impl := range counterImpls() {
		t.Run(impl.name, func(t *testing.T) {
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					got, st, err := impl.c.Count(ctx, tc.g)
					if err != nil {
						t.Fatalf("Count failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
					}
					if got != tc.want {
						t.Fatalf("Count = %d, want %d", got, tc.want)
					}
				})
			}
		})
	}
}

func TestCountLeavesInputUntouched(t *testing.T) {
	before := uniqueGrid
	ctx := context.Background()
	if _, _, err := NewBacktracking().Count(ctx, before); err != nil {
		t.Fatal(err)
	}
	if before != uniqueGrid {
		t.Fatal("Count mutated the caller's grid")
	}
}

func TestDLXRejectsConflictingGivens(t *testing.T) {
	g := uniqueGrid
	g[0][3] = 1 // row 0 already holds a 1 at (0,1)
	ctx := context.Background()
	if _, _, err := NewDLX().Count(ctx, g); !errors.Is(err, ErrConflictingGivens) {
		t.Fatalf("Count err = %v, want ErrConflictingGivens", err)
	}
	if _, _, err := NewDLX().Solve(ctx, g); !errors.Is(err, ErrConflictingGivens) {
		t.Fatalf("Solve err = %v, want ErrConflictingGivens", err)
	}
}

func TestCountCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, impl := range counterImpls() {
		if _, _, err := impl.c.Count(ctx, uniqueGrid); err == nil {
			t.Fatalf("%T: Count with canceled context returned nil error", impl.c)
		}
	}
}
