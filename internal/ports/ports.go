package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures search effort for an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Counter reports the exact number of completions of a partial grid.
// Counting is exhaustive: a result of 5 means exactly 5 distinct solutions.
type Counter interface {
	Count(ctx context.Context, g domain.Grid) (int, Stats, error)
}

// Solver produces one completion of a partial grid.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
}

// Generator builds a full solution and a puzzle masked down to givenCount
// givens with a unique completion.
type Generator interface {
	Generate(ctx context.Context, seed string, givenCount int) (solution, puzzle domain.Grid, st Stats, err error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step, if one exists.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error)
}
