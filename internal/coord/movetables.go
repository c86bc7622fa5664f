package coord

import (
	"github.com/SeamusWaldron/cubesolver/internal/cubie"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// MoveTables holds the precomputed coordinate transitions: for every value
// of every coordinate, the value reached by each legal generator. Phase-1
// tables cover all 18 generators, phase-2 tables the 10 G1-preserving ones.
// The tables depend only on the generator definitions and are immutable once
// built; a single instance may be shared across any number of solves.
type MoveTables struct {
	Twist   [][]uint16 // [NumTwist][18]
	Flip    [][]uint16 // [NumFlip][18]
	UDSlice [][]uint16 // [NumUDSlice][18]

	CornerPerm  [][]uint16 // [NumCornerPerm][10]
	EdgePerm    [][]uint16 // [NumEdgePerm][10]
	SliceSorted [][]uint16 // [NumSliceSorted][10]
}

// buildTable fills one transition table by decoding every coordinate value
// into a representative cube, applying each generator and re-encoding.
func buildTable(size int, moves []types.Move, set func(*cubie.Cube, int), get func(*cubie.Cube) int) [][]uint16 {
	table := make([][]uint16, size)
	for v := 0; v < size; v++ {
		table[v] = make([]uint16, len(moves))
		base := cubie.New()
		set(base, v)
		for mi, m := range moves {
			table[v][mi] = uint16(get(base.Applied(m)))
		}
	}
	return table
}

// NewMoveTables computes all six transition tables.
func NewMoveTables() *MoveTables {
	return &MoveTables{
		Twist:   buildTable(NumTwist, types.AllMoves, SetTwist, Twist),
		Flip:    buildTable(NumFlip, types.AllMoves, SetFlip, Flip),
		UDSlice: buildTable(NumUDSlice, types.AllMoves, SetUDSlice, UDSlice),

		CornerPerm:  buildTable(NumCornerPerm, types.Phase2Moves, SetCornerPerm, CornerPerm),
		EdgePerm:    buildTable(NumEdgePerm, types.Phase2Moves, SetEdgePerm, EdgePerm),
		SliceSorted: buildTable(NumSliceSorted, types.Phase2Moves, SetSliceSorted, SliceSorted),
	}
}
