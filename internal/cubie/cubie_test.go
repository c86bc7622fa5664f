package cubie

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func TestNewIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("New cube should validate: %v", err)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New()
	c.Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW})
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestFourQuarterTurnsIdentity_AllMoves(t *testing.T) {
	// g applied four times is the identity for every generator,
	// quarter and half turns alike.
	for _, m := range types.AllMoves {
		c := New()
		c.ApplyMoves([]types.Move{m, m, m, m})
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", m)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverseIdentity(t *testing.T) {
	_, scrambled := Scramble(15)
	for _, m := range types.AllMoves {
		c := scrambled.Clone()
		c.Apply(m)
		c.Apply(m.Inverse())
		if !c.Equal(scrambled) {
			t.Errorf("%s then %s should be the identity", m, m.Inverse())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	sexy, err := types.ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	c := New()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(sexy)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestHalfTurnEqualsTwoQuarters(t *testing.T) {
	faces := []types.Face{types.FaceU, types.FaceD, types.FaceR, types.FaceL, types.FaceF, types.FaceB}
	for _, f := range faces {
		a := New()
		a.Apply(types.Move{Face: f, Turn: types.Turn180})

		b := New()
		b.Apply(types.Move{Face: f, Turn: types.TurnCW})
		b.Apply(types.Move{Face: f, Turn: types.TurnCW})

		if !a.Equal(b) {
			t.Errorf("%s2 should equal %s %s", f, f, f)
		}
	}
}

func TestInvariantsHoldUnderScramble(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		_, c := Scramble(30)
		if err := c.Validate(); err != nil {
			t.Fatalf("Scrambled cube should validate: %v", err)
		}

		// Exactly one of each piece
		var corners [8]int
		for _, p := range c.CP {
			corners[p]++
		}
		for p, n := range corners {
			if n != 1 {
				t.Fatalf("Corner %v appears %d times", Corner(p), n)
			}
		}
		var edges [12]int
		for _, p := range c.EP {
			edges[p]++
		}
		for p, n := range edges {
			if n != 1 {
				t.Fatalf("Edge %v appears %d times", Edge(p), n)
			}
		}
	}
}

func TestValidateRejectsTwistedCorner(t *testing.T) {
	c := New()
	c.CO[0] = 1 // single twisted corner breaks the mod-3 invariant
	err := c.Validate()
	if err == nil {
		t.Fatal("Validate should reject a single twisted corner")
	}
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Expected ErrUnsolvable, got %v", err)
	}
}

func TestValidateRejectsFlippedEdge(t *testing.T) {
	c := New()
	c.EO[3] = 1
	if c.Validate() == nil {
		t.Error("Validate should reject a single flipped edge")
	}
}

func TestValidateRejectsEdgeSwapWithoutParityFix(t *testing.T) {
	c := New()
	c.EP[0], c.EP[1] = c.EP[1], c.EP[0] // edge parity now odd, corners even
	err := c.Validate()
	if err == nil {
		t.Fatal("Validate should reject a lone edge swap")
	}
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Expected ErrUnsolvable, got %v", err)
	}

	// A matching corner swap restores the parity invariant.
	c.CP[0], c.CP[1] = c.CP[1], c.CP[0]
	if err := c.Validate(); err != nil {
		t.Errorf("Edge swap plus corner swap should validate: %v", err)
	}
}

func TestValidateRejectsDuplicatePiece(t *testing.T) {
	c := New()
	c.CP[3] = c.CP[4]
	if c.Validate() == nil {
		t.Error("Validate should reject a duplicated corner")
	}
}

func TestFaceletsSolved(t *testing.T) {
	c := New()
	grid := c.Facelets()
	for face := Face(0); face < 6; face++ {
		want := faceColor(face)
		for i := 0; i < 9; i++ {
			if grid[face][i] != want {
				t.Fatalf("Solved %v facelet %d is %v, want %v", face, i, grid[face][i], want)
			}
		}
	}
}

func TestFaceletsPermuteNotRecolor(t *testing.T) {
	// Any move keeps 9 stickers of each color on the grid.
	for _, m := range types.AllMoves {
		c := New()
		c.Apply(m)
		grid := c.Facelets()
		var counts [6]int
		for f := 0; f < 6; f++ {
			for i := 0; i < 9; i++ {
				counts[grid[f][i]]++
			}
		}
		for color, n := range counts {
			if n != 9 {
				t.Fatalf("After %s color %v appears %d times, want 9", m, Color(color), n)
			}
		}
	}
}

func TestScramble(t *testing.T) {
	moves, c := Scramble(20)
	if len(moves) != 20 {
		t.Errorf("Expected 20 scramble moves, got %d", len(moves))
	}

	// Replaying the sequence on a fresh cube gives the same state.
	replay := New()
	replay.ApplyMoves(moves)
	if !replay.Equal(c) {
		t.Error("Replaying the scramble should reproduce the state")
	}

	// Undoing it returns to solved.
	c.ApplyMoves(types.InverseMoves(moves))
	if !c.IsSolved() {
		t.Error("Undoing the scramble should return to solved")
		t.Log(c.String())
	}
}
