package solver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/cubie"
	"github.com/SeamusWaldron/cubesolver/internal/prune"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	buildOnce sync.Once
	moveTabs  *coord.MoveTables
	pruneTabs *prune.Tables
)

// newTestSolver shares one table build across the whole test binary.
func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	buildOnce.Do(func() {
		moveTabs = coord.NewMoveTables()
		pruneTabs = prune.Build(moveTabs)
	})
	return New(moveTabs, pruneTabs)
}

func TestSolvedCubeYieldsEmptySolution(t *testing.T) {
	s := newTestSolver(t)
	sol, err := s.Solve(context.Background(), cubie.New())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(sol) != 0 {
		t.Errorf("Expected empty solution, got %s", types.FormatMoves(sol))
	}
}

func TestSingleMoveScrambles(t *testing.T) {
	s := newTestSolver(t)
	for _, m := range types.AllMoves {
		c := cubie.New()
		c.Apply(m)
		sol, err := s.Solve(context.Background(), c)
		if err != nil {
			t.Fatalf("Solve after %s failed: %v", m.Notation(), err)
		}
		c.ApplyMoves(sol)
		if !c.IsSolved() {
			t.Errorf("Solution %s does not undo %s", types.FormatMoves(sol), m.Notation())
			t.Log(c.String())
		}
	}
}

func TestRandomScrambles(t *testing.T) {
	s := newTestSolver(t)
	trials := 100
	if testing.Short() {
		trials = 10
	}
	for i := 0; i < trials; i++ {
		scramble, c := cubie.Scramble(20)
		sol, err := s.Solve(context.Background(), c)
		if err != nil {
			t.Fatalf("Solve failed for %s: %v", types.FormatMoves(scramble), err)
		}
		if len(sol) > DefaultMaxLength {
			t.Errorf("Solution length %d exceeds ceiling %d", len(sol), DefaultMaxLength)
		}
		c.ApplyMoves(sol)
		if !c.IsSolved() {
			t.Errorf("Scramble %s not solved by %s", types.FormatMoves(scramble), types.FormatMoves(sol))
			t.Log(c.String())
		}
	}
}

func TestSolutionHasNoSameFaceAdjacency(t *testing.T) {
	s := newTestSolver(t)
	for i := 0; i < 20; i++ {
		_, c := cubie.Scramble(20)
		sol, err := s.Solve(context.Background(), c)
		if err != nil {
			t.Fatal(err)
		}
		for j := 1; j < len(sol); j++ {
			if sol[j].Face == sol[j-1].Face {
				t.Errorf("Adjacent moves on the same face in %s", types.FormatMoves(sol))
			}
			if sol[j-1].IsCancellation(sol[j]) {
				t.Errorf("Canceling pair %s %s in %s", sol[j-1], sol[j], types.FormatMoves(sol))
			}
		}
	}
}

func TestMoveCeilingTooSmall(t *testing.T) {
	s := newTestSolver(t)
	s.MaxLength = 1

	c := cubie.New()
	c.Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW})
	c.Apply(types.Move{Face: types.FaceU, Turn: types.TurnCW})

	_, err := s.Solve(context.Background(), c)
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("Expected ErrNoSolution, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	s := newTestSolver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, c := cubie.Scramble(20)
	sol, err := s.Solve(ctx, c)
	// A shallow search can finish before the first cancellation poll; either
	// a valid solution or a context error is acceptable, nothing else.
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		return
	}
	c.ApplyMoves(sol)
	if !c.IsSolved() {
		t.Error("Returned solution does not solve the cube")
	}
}

func TestImproveWithinDeadline(t *testing.T) {
	s := newTestSolver(t)
	s.Improve = true

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	scramble, c := cubie.Scramble(20)
	sol, err := s.Solve(ctx, c)
	if err != nil {
		t.Fatalf("Improve solve failed for %s: %v", types.FormatMoves(scramble), err)
	}
	if len(sol) > DefaultMaxLength {
		t.Errorf("Improved solution length %d exceeds ceiling", len(sol))
	}
	c.ApplyMoves(sol)
	if !c.IsSolved() {
		t.Error("Improved solution does not solve the cube")
		t.Log(c.String())
	}
}

func TestRedundant(t *testing.T) {
	cases := []struct {
		face, last int
		want       bool
	}{
		{0, -1, false}, // first move, nothing to cancel against
		{0, 0, true},   // same face
		{0, 1, true},   // U after D: canonical order puts U first
		{1, 0, false},  // D after U is the canonical ordering
		{2, 0, false},  // different axis
		{4, 5, true},   // F after B
		{5, 4, false},
	}
	for _, tc := range cases {
		if got := redundant(tc.face, tc.last); got != tc.want {
			t.Errorf("redundant(%d, %d) = %v, want %v", tc.face, tc.last, got, tc.want)
		}
	}
}
