// Package solver implements the two-phase search: an IDA* pass over the
// full generator set into the G1 subgroup, then a second IDA* pass over the
// G1-preserving generators down to solved. Both passes are bounded by exact
// BFS distances from the pruning tables, so the heuristic never
// overestimates and iterative deepening always terminates.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/cubie"
	"github.com/SeamusWaldron/cubesolver/internal/prune"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// DefaultMaxLength is the global move-count ceiling. Two-phase solutions fit
// well under it for every valid state; hitting the ceiling means a corrupt
// table or broken move definitions, not a hard input.
const DefaultMaxLength = 31

// ErrNoSolution is returned when the search exhausts the global move-count
// ceiling. For a state that passed validation this indicates an internal
// defect and is reported rather than retried.
var ErrNoSolution = errors.New("solver: no solution within move ceiling")

// Solver runs two-phase searches against shared, read-only tables. A single
// Solver may serve any number of concurrent Solve calls.
type Solver struct {
	mt *coord.MoveTables
	pt *prune.Tables

	// MaxLength is the global move ceiling (DefaultMaxLength if zero).
	MaxLength int
	// Improve keeps exploring longer phase-1 solutions for a shorter
	// total after the first solution is found, until the context expires.
	// Without it the first solution found is returned.
	Improve bool
}

// New creates a solver over the given tables.
func New(mt *coord.MoveTables, pt *prune.Tables) *Solver {
	return &Solver{mt: mt, pt: pt}
}

// move-index to face (U=0 D=1 R=2 L=3 F=4 B=5); faces f and f^1 share an
// axis. The phase-1 set is types.AllMoves, phase 2 types.Phase2Moves.
var (
	phase1Face = [18]int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5}
	phase2Face = [10]int{0, 0, 0, 1, 1, 1, 2, 3, 4, 5}
)

// redundant reports whether turning face directly after lastFace can never
// be part of a canonical sequence: the same face twice collapses into one
// move, and opposite-face pairs commute so only one ordering is explored.
func redundant(face, lastFace int) bool {
	if lastFace < 0 {
		return false
	}
	return face == lastFace || (face/2 == lastFace/2 && face < lastFace)
}

type search struct {
	s   *Solver
	ctx context.Context

	start *cubie.Cube
	p1    []types.Move
	p2    []types.Move

	best     []types.Move
	maxLen   int
	nodes    int
	canceled bool
}

// checkCancel polls the context once every 4096 node expansions.
func (sr *search) checkCancel() bool {
	sr.nodes++
	if sr.nodes&0xFFF == 0 && sr.ctx.Err() != nil {
		sr.canceled = true
	}
	return sr.canceled
}

// Solve returns a generator sequence driving c to the solved state. The
// caller is expected to have validated c; an invariant-breaking state can
// send the search nowhere. Cancellation is cooperative: when ctx expires
// the search unwinds and the best solution found so far is returned, or an
// error if there is none yet.
func (s *Solver) Solve(ctx context.Context, c *cubie.Cube) ([]types.Move, error) {
	if c.IsSolved() {
		return []types.Move{}, nil
	}

	maxLen := s.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	sr := &search{
		s:      s,
		ctx:    ctx,
		start:  c.Clone(),
		maxLen: maxLen,
	}

	twist, flip, udslice := coord.Phase1(c)
	for depth1 := s.pt.Phase1Dist(twist, flip, udslice); depth1 <= maxLen; depth1++ {
		if sr.best != nil && depth1 >= len(sr.best) {
			break
		}
		if sr.phase1(twist, flip, udslice, depth1, -1) {
			break
		}
		if sr.canceled {
			break
		}
	}

	if sr.best == nil {
		if sr.canceled {
			return nil, fmt.Errorf("solver: search canceled: %w", ctx.Err())
		}
		return nil, ErrNoSolution
	}
	out := make([]types.Move, len(sr.best))
	copy(out, sr.best)
	return out, nil
}

// phase1 runs one exact-depth DFS level of the phase-1 IDA*. Returning true
// stops the whole search (final answer accepted or canceled).
func (sr *search) phase1(twist, flip, udslice, depth, lastFace int) bool {
	if sr.checkCancel() {
		return true
	}
	if depth == 0 {
		if twist == 0 && flip == 0 && udslice == 0 {
			return sr.enterPhase2(lastFace)
		}
		return false
	}
	if sr.s.pt.Phase1Dist(twist, flip, udslice) > depth {
		return false
	}

	mt := sr.s.mt
	for mi := 0; mi < 18; mi++ {
		face := phase1Face[mi]
		if redundant(face, lastFace) {
			continue
		}
		sr.p1 = append(sr.p1, types.AllMoves[mi])
		stop := sr.phase1(
			int(mt.Twist[twist][mi]),
			int(mt.Flip[flip][mi]),
			int(mt.UDSlice[udslice][mi]),
			depth-1, face)
		sr.p1 = sr.p1[:len(sr.p1)-1]
		if stop {
			return true
		}
	}
	return false
}

// enterPhase2 takes the G1 state reached by the current phase-1 path and
// runs the phase-2 iterative deepening within the remaining move budget.
func (sr *search) enterPhase2(lastFace int) bool {
	g := sr.start.Clone()
	g.ApplyMoves(sr.p1)
	cp, ep, ss := coord.Phase2(g)

	budget := sr.maxLen - len(sr.p1)
	if sr.best != nil && len(sr.best)-len(sr.p1)-1 < budget {
		budget = len(sr.best) - len(sr.p1) - 1
	}

	for depth2 := sr.s.pt.Phase2Dist(cp, ep, ss); depth2 <= budget; depth2++ {
		if sr.phase2(cp, ep, ss, depth2, lastFace) {
			total := make([]types.Move, 0, len(sr.p1)+len(sr.p2))
			total = append(total, sr.p1...)
			total = append(total, sr.p2...)
			sr.best = total
			sr.p2 = sr.p2[:0]
			// First solution wins unless we are asked to keep
			// improving within the deadline.
			return !sr.s.Improve
		}
		sr.p2 = sr.p2[:0]
		if sr.canceled {
			return true
		}
	}
	return false
}

// phase2 is the exact-depth DFS over the 10 G1-preserving generators.
// Returning true means a solution of exactly the requested depth was found
// and left in sr.p2.
func (sr *search) phase2(cp, ep, ss, depth, lastFace int) bool {
	if sr.checkCancel() {
		return false
	}
	if depth == 0 {
		return cp == 0 && ep == 0 && ss == 0
	}
	if sr.s.pt.Phase2Dist(cp, ep, ss) > depth {
		return false
	}

	mt := sr.s.mt
	for mi := 0; mi < 10; mi++ {
		face := phase2Face[mi]
		if redundant(face, lastFace) {
			continue
		}
		sr.p2 = append(sr.p2, types.Phase2Moves[mi])
		if sr.phase2(
			int(mt.CornerPerm[cp][mi]),
			int(mt.EdgePerm[ep][mi]),
			int(mt.SliceSorted[ss][mi]),
			depth-1, face) {
			return true
		}
		sr.p2 = sr.p2[:len(sr.p2)-1]
		if sr.canceled {
			return false
		}
	}
	return false
}
