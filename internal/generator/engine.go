package generator

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// DefaultMaxRetries bounds the fill/mask cycles tried per Generate call.
const DefaultMaxRetries = 10

// Engine is the generation pipeline: fill a full solution, then mask it down
// to the requested number of givens with uniqueness proven at every step.
type Engine struct {
	Masker *Masker
	// MaxRetries bounds the fresh fill/mask cycles tried when masking
	// dead-ends at low given counts; 0 means DefaultMaxRetries.
	MaxRetries int
}

// NewEngine wires an engine that uses the given counter as uniqueness oracle.
func NewEngine(c ports.Counter) *Engine {
	return &Engine{Masker: NewMasker(c)}
}

// Generate builds a solved grid and a puzzle with exactly givenCount givens.
// Identical seed strings yield identical results; an empty seed draws from
// the wall clock. Each call owns its random source and grid buffers, so
// concurrent calls are independent.
//
// Masking can dead-end on grids where no remaining removal keeps the
// solution unique; when a phase exhausts its attempt budget the engine
// restarts with a fresh fill drawn from the same random source, so retries
// stay reproducible per seed.
func (e *Engine) Generate(ctx context.Context, seed string, givenCount int) (solution, puzzle domain.Grid, st ports.Stats, err error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seedValue(seed)))
	retries := e.MaxRetries
	if retries <= 0 {
		retries = DefaultMaxRetries
	}

	nodes := 0
	stats := func() ports.Stats { return ports.Stats{Nodes: nodes, Duration: time.Since(start)} }
	var lastErr error
	for i := 0; i < retries; i++ {
		full, err := Fill(ctx, rng)
		if err != nil {
			return domain.Grid{}, domain.Grid{}, stats(), err
		}
		masked, mst, err := e.Masker.Mask(ctx, full, givenCount, rng)
		nodes += mst.Nodes
		if err == nil {
			return full, masked, stats(), nil
		}
		if !errors.Is(err, ErrAttemptsExhausted) {
			return domain.Grid{}, domain.Grid{}, stats(), err
		}
		lastErr = err
	}
	return domain.Grid{}, domain.Grid{}, stats(), fmt.Errorf("giving up after %d fill/mask cycles: %w", retries, lastErr)
}

// seedValue hashes a seed string into a rand source seed; empty seeds fall
// back to the wall clock.
func seedValue(seed string) int64 {
	if seed == "" {
		return time.Now().UnixNano()
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return int64(h.Sum64())
}
