package solver

import "errors"

// Backtracking explores grids by depth-first trial of digits 1..9 at the
// first empty cell, mutating a single grid buffer in place and undoing each
// placement on return.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// ErrNoSolution is returned by Solve when a grid has no completion.
var ErrNoSolution = errors.New("solver: no solution")
