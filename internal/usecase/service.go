package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Service is the facade the host program talks to.
type Service struct {
	Generator ports.Generator
	Solver    ports.Solver
	Counter   ports.Counter
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(g ports.Generator, s ports.Solver, c ports.Counter, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Generator: g, Solver: s, Counter: c, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Generate runs the engine and wraps the result with identity and metadata.
func (u *Service) Generate(ctx context.Context, seed string, givenCount int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	solution, puzzle, st, err := u.Generator.Generate(ctx, seed, givenCount)
	if err != nil {
		return nil, st, err
	}
	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		GivenCount: givenCount,
		Givens:     puzzle,
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, st, nil
}

func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Count(ctx context.Context, g domain.Grid) (int, ports.Stats, error) {
	if u.Counter == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Counter.Count(ctx, g)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}
