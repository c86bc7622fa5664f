package cubie

import (
	"math/rand"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Scramble applies n generators sampled uniformly from the full move set to
// a solved cube and returns the sequence alongside the resulting state.
// Adjacent moves may cancel (e.g. R followed by R'); the scramble is
// non-canonical on purpose, which is fine for exercising the solver.
func Scramble(n int) ([]types.Move, *Cube) {
	c := New()
	moves := make([]types.Move, n)
	for i := 0; i < n; i++ {
		m := types.AllMoves[rand.Intn(len(types.AllMoves))]
		moves[i] = m
		c.Apply(m)
	}
	return moves, c
}
