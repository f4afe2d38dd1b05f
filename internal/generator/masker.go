package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Phase-transition thresholds, counted over total cells removed: removals
// happen in quads until 20 cells are gone, in mirrored pairs until 30, then
// one cell at a time.
const (
	quadPhaseLimit = 20
	pairPhaseLimit = 30
)

// DefaultMaxAttempts bounds the proposals tried per phase, whether they are
// accepted, rejected, or resampled for overlap.
const DefaultMaxAttempts = 1000

var (
	// ErrGivenCountOutOfRange rejects targets below the 17-given uniqueness
	// minimum or above a full grid.
	ErrGivenCountOutOfRange = errors.New("masker: given count out of range")
	// ErrAttemptsExhausted reports that a phase could not reach the target
	// given count within its attempt budget.
	ErrAttemptsExhausted = errors.New("masker: could not reach target given count")
)

// Masker carves cells out of a solved grid while the Counter proves that a
// unique completion remains after every accepted removal.
type Masker struct {
	Counter     ports.Counter
	MaxAttempts int                // proposals per phase; 0 means DefaultMaxAttempts
	Log         logrus.FieldLogger // optional; nil disables phase logging
}

func NewMasker(c ports.Counter) *Masker { return &Masker{Counter: c} }

// Mask returns a copy of full with 81-givenCount cells set to 0, each removal
// group kept only when the whole grid still counts exactly one solution.
// Rejected proposals are restored from full and retried with fresh samples.
func (m *Masker) Mask(ctx context.Context, full domain.Grid, givenCount int, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if givenCount < domain.MinGivens || givenCount > 81 {
		return domain.Grid{}, ports.Stats{}, fmt.Errorf("%w: %d", ErrGivenCountOutOfRange, givenCount)
	}

	puzzle := full
	toRemove := 81 - givenCount
	removed := 0
	nodes := 0
	stats := func() ports.Stats { return ports.Stats{Nodes: nodes, Duration: time.Since(start)} }

	// Quads: two independent picks plus the jittered mirror of each.
	attempts := m.attemptBudget()
	for toRemove >= 4 && removed < quadPhaseLimit {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, stats(), err
		}
		if attempts == 0 {
			return domain.Grid{}, stats(), fmt.Errorf("%w: quad phase, %d removals left", ErrAttemptsExhausted, toRemove)
		}
		attempts--
		r1, c1 := randomUnmaskedCell(rng, &puzzle)
		r2, c2 := randomUnmaskedCell(rng, &puzzle)
		r3, c3 := jitteredMirrorCell(rng, &puzzle, r1, c1)
		r4, c4 := jitteredMirrorCell(rng, &puzzle, r2, c2)
		group := []domain.CellCoord{
			{Row: r1, Col: c1},
			{Row: r2, Col: c2},
			{Row: r3, Col: c3},
			{Row: r4, Col: c4},
		}
		if overlapping(group) {
			continue // independent samples may collide; count decrements must stay exact
		}
		ok, err := m.tryRemove(ctx, &puzzle, &full, group, &nodes)
		if err != nil {
			return domain.Grid{}, stats(), err
		}
		if ok {
			toRemove -= 4
			removed += 4
		}
	}
	m.logPhase("quads", removed, toRemove, attempts)

	// Mirrored pairs.
	attempts = m.attemptBudget()
	for toRemove >= 2 && removed < pairPhaseLimit {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, stats(), err
		}
		if attempts == 0 {
			return domain.Grid{}, stats(), fmt.Errorf("%w: pair phase, %d removals left", ErrAttemptsExhausted, toRemove)
		}
		attempts--
		r1, c1 := randomUnmaskedCell(rng, &puzzle)
		r2, c2 := jitteredMirrorCell(rng, &puzzle, r1, c1)
		group := []domain.CellCoord{{Row: r1, Col: c1}, {Row: r2, Col: c2}}
		if overlapping(group) {
			continue
		}
		ok, err := m.tryRemove(ctx, &puzzle, &full, group, &nodes)
		if err != nil {
			return domain.Grid{}, stats(), err
		}
		if ok {
			toRemove -= 2
			removed += 2
		}
	}
	m.logPhase("pairs", removed, toRemove, attempts)

	// Singles.
	attempts = m.attemptBudget()
	for toRemove >= 1 {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, stats(), err
		}
		if attempts == 0 {
			return domain.Grid{}, stats(), fmt.Errorf("%w: single phase, %d removals left", ErrAttemptsExhausted, toRemove)
		}
		attempts--
		r, c := randomUnmaskedCell(rng, &puzzle)
		ok, err := m.tryRemove(ctx, &puzzle, &full, []domain.CellCoord{{Row: r, Col: c}}, &nodes)
		if err != nil {
			return domain.Grid{}, stats(), err
		}
		if ok {
			toRemove--
			removed++
		}
	}
	m.logPhase("singles", removed, toRemove, attempts)

	return puzzle, stats(), nil
}

// tryRemove masks the group on puzzle, keeps the removals when exactly one
// completion remains, and restores the cells from full otherwise.
func (m *Masker) tryRemove(ctx context.Context, puzzle, full *domain.Grid, group []domain.CellCoord, nodes *int) (bool, error) {
	for _, cl := range group {
		puzzle[cl.Row][cl.Col] = 0
	}
	n, st, err := m.Counter.Count(ctx, *puzzle)
	*nodes += st.Nodes
	if err != nil {
		return false, err
	}
	if n == 1 {
		return true, nil
	}
	for _, cl := range group {
		puzzle[cl.Row][cl.Col] = full[cl.Row][cl.Col]
	}
	return false, nil
}

func overlapping(group []domain.CellCoord) bool {
	for i := 1; i < len(group); i++ {
		for j := 0; j < i; j++ {
			if group[i] == group[j] {
				return true
			}
		}
	}
	return false
}

func (m *Masker) attemptBudget() int {
	if m.MaxAttempts > 0 {
		return m.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (m *Masker) logPhase(phase string, removed, toRemove, attemptsLeft int) {
	if m.Log == nil {
		return
	}
	m.Log.WithFields(logrus.Fields{
		"phase":         phase,
		"removed":       removed,
		"remaining":     toRemove,
		"attempts_left": attemptsLeft,
	}).Debug("masking phase done")
}
