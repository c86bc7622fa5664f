// Package prune builds and serves the pruning tables for the two-phase
// search. Each table maps a composite coordinate to the exact number of
// generator applications needed to drive it to its goal value, computed by
// breadth-first expansion from the goal. The distances are admissible
// heuristics for the full cube: a coordinate projection can only shrink the
// true distance, never grow it.
package prune

import (
	"sync"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
)

// Composite table sizes.
const (
	SliceTwistSize  = coord.NumTwist * coord.NumUDSlice
	SliceFlipSize   = coord.NumFlip * coord.NumUDSlice
	CornerSliceSize = coord.NumCornerPerm * coord.NumSliceSorted
	EdgeSliceSize   = coord.NumEdgePerm * coord.NumSliceSorted
)

const unset = 0xFF

// Tables holds the four pruning tables. Once built (or loaded) they are
// immutable and safe for concurrent readers.
//
// Phase 1 pairs each orientation coordinate with the UD-slice coordinate;
// phase 2 pairs each permutation coordinate with the slice-order coordinate.
// The search takes the max of the pair, which stays admissible.
type Tables struct {
	SliceTwist  []uint8 // [twist*NumUDSlice + udslice]
	SliceFlip   []uint8 // [flip*NumUDSlice + udslice]
	CornerSlice []uint8 // [cornerPerm*NumSliceSorted + sliceSorted]
	EdgeSlice   []uint8 // [edgePerm*NumSliceSorted + sliceSorted]
}

// bfs fills a distance table over a composite coordinate space. next maps
// (index, move) to the successor index. Every generator's inverse is itself
// a generator, so expanding forward from the goal walks the same relation
// as a backward search from it.
func bfs(size, numMoves int, next func(idx, mi int) int) []uint8 {
	dist := make([]uint8, size)
	for i := range dist {
		dist[i] = unset
	}
	dist[0] = 0

	frontier := []int{0}
	for depth := uint8(1); len(frontier) > 0; depth++ {
		var grown []int
		for _, idx := range frontier {
			for mi := 0; mi < numMoves; mi++ {
				n := next(idx, mi)
				if dist[n] == unset {
					dist[n] = depth
					grown = append(grown, n)
				}
			}
		}
		frontier = grown
	}
	return dist
}

// Build computes all four pruning tables from the move transition tables.
// The four BFS passes are independent and run concurrently.
func Build(mt *coord.MoveTables) *Tables {
	t := &Tables{}
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		t.SliceTwist = bfs(SliceTwistSize, 18, func(idx, mi int) int {
			tw, sl := idx/coord.NumUDSlice, idx%coord.NumUDSlice
			return int(mt.Twist[tw][mi])*coord.NumUDSlice + int(mt.UDSlice[sl][mi])
		})
	}()
	go func() {
		defer wg.Done()
		t.SliceFlip = bfs(SliceFlipSize, 18, func(idx, mi int) int {
			fl, sl := idx/coord.NumUDSlice, idx%coord.NumUDSlice
			return int(mt.Flip[fl][mi])*coord.NumUDSlice + int(mt.UDSlice[sl][mi])
		})
	}()
	go func() {
		defer wg.Done()
		t.CornerSlice = bfs(CornerSliceSize, 10, func(idx, mi int) int {
			cp, ss := idx/coord.NumSliceSorted, idx%coord.NumSliceSorted
			return int(mt.CornerPerm[cp][mi])*coord.NumSliceSorted + int(mt.SliceSorted[ss][mi])
		})
	}()
	go func() {
		defer wg.Done()
		t.EdgeSlice = bfs(EdgeSliceSize, 10, func(idx, mi int) int {
			ep, ss := idx/coord.NumSliceSorted, idx%coord.NumSliceSorted
			return int(mt.EdgePerm[ep][mi])*coord.NumSliceSorted + int(mt.SliceSorted[ss][mi])
		})
	}()

	wg.Wait()
	return t
}

// Phase1Dist returns the admissible lower bound on generator applications
// needed to bring the phase-1 coordinates to the G1 goal.
func (t *Tables) Phase1Dist(twist, flip, udslice int) int {
	a := t.SliceTwist[twist*coord.NumUDSlice+udslice]
	b := t.SliceFlip[flip*coord.NumUDSlice+udslice]
	if a > b {
		return int(a)
	}
	return int(b)
}

// Phase2Dist returns the admissible lower bound on phase-2 generator
// applications needed to fully solve a G1 state.
func (t *Tables) Phase2Dist(cornerPerm, edgePerm, sliceSorted int) int {
	a := t.CornerSlice[cornerPerm*coord.NumSliceSorted+sliceSorted]
	b := t.EdgeSlice[edgePerm*coord.NumSliceSorted+sliceSorted]
	if a > b {
		return int(a)
	}
	return int(b)
}
