package coord

import (
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/cubie"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func TestSolvedCoordinatesAreZero(t *testing.T) {
	c := cubie.New()
	if v := Twist(c); v != 0 {
		t.Errorf("Twist(solved) = %d, want 0", v)
	}
	if v := Flip(c); v != 0 {
		t.Errorf("Flip(solved) = %d, want 0", v)
	}
	if v := UDSlice(c); v != 0 {
		t.Errorf("UDSlice(solved) = %d, want 0", v)
	}
	if v := CornerPerm(c); v != 0 {
		t.Errorf("CornerPerm(solved) = %d, want 0", v)
	}
	if v := EdgePerm(c); v != 0 {
		t.Errorf("EdgePerm(solved) = %d, want 0", v)
	}
	if v := SliceSorted(c); v != 0 {
		t.Errorf("SliceSorted(solved) = %d, want 0", v)
	}
	if !IsG1(c) {
		t.Error("Solved cube should be in G1")
	}
}

func TestTwistRoundTrip(t *testing.T) {
	for v := 0; v < NumTwist; v++ {
		c := cubie.New()
		SetTwist(c, v)
		if got := Twist(c); got != v {
			t.Fatalf("Twist(SetTwist(%d)) = %d", v, got)
		}
		// SetTwist must keep the twist-sum invariant.
		sum := 0
		for _, o := range c.CO {
			sum += int(o)
		}
		if sum%3 != 0 {
			t.Fatalf("SetTwist(%d) broke the twist-sum invariant", v)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for v := 0; v < NumFlip; v++ {
		c := cubie.New()
		SetFlip(c, v)
		if got := Flip(c); got != v {
			t.Fatalf("Flip(SetFlip(%d)) = %d", v, got)
		}
		sum := 0
		for _, o := range c.EO {
			sum += int(o)
		}
		if sum%2 != 0 {
			t.Fatalf("SetFlip(%d) broke the flip-sum invariant", v)
		}
	}
}

func TestUDSliceRoundTrip(t *testing.T) {
	for v := 0; v < NumUDSlice; v++ {
		c := cubie.New()
		SetUDSlice(c, v)
		if got := UDSlice(c); got != v {
			t.Fatalf("UDSlice(SetUDSlice(%d)) = %d", v, got)
		}
	}
}

func TestCornerPermRoundTrip(t *testing.T) {
	for v := 0; v < NumCornerPerm; v++ {
		c := cubie.New()
		SetCornerPerm(c, v)
		if got := CornerPerm(c); got != v {
			t.Fatalf("CornerPerm(SetCornerPerm(%d)) = %d", v, got)
		}
	}
}

func TestEdgePermRoundTrip(t *testing.T) {
	for v := 0; v < NumEdgePerm; v++ {
		c := cubie.New()
		SetEdgePerm(c, v)
		if got := EdgePerm(c); got != v {
			t.Fatalf("EdgePerm(SetEdgePerm(%d)) = %d", v, got)
		}
	}
}

func TestSliceSortedRoundTrip(t *testing.T) {
	for v := 0; v < NumSliceSorted; v++ {
		c := cubie.New()
		SetSliceSorted(c, v)
		if got := SliceSorted(c); got != v {
			t.Fatalf("SliceSorted(SetSliceSorted(%d)) = %d", v, got)
		}
	}
}

func TestCoordinatesTrackScrambles(t *testing.T) {
	// Coordinates computed from a scrambled state always stay in range.
	for trial := 0; trial < 50; trial++ {
		_, c := cubie.Scramble(25)
		if v := Twist(c); v < 0 || v >= NumTwist {
			t.Fatalf("Twist out of range: %d", v)
		}
		if v := Flip(c); v < 0 || v >= NumFlip {
			t.Fatalf("Flip out of range: %d", v)
		}
		if v := UDSlice(c); v < 0 || v >= NumUDSlice {
			t.Fatalf("UDSlice out of range: %d", v)
		}
	}
}

func TestMoveTablesMatchCubieMoves(t *testing.T) {
	mt := NewMoveTables()

	// Phase-1 tables against direct cubie application, from scrambled
	// starting points so every orientation case gets exercised.
	for trial := 0; trial < 20; trial++ {
		_, c := cubie.Scramble(20)
		twist, flip, udslice := Phase1(c)
		for mi, m := range types.AllMoves {
			n := c.Clone()
			n.Apply(m)
			if got, want := int(mt.Twist[twist][mi]), Twist(n); got != want {
				t.Fatalf("Twist table: move %s from %d gives %d, cubie gives %d", m, twist, got, want)
			}
			if got, want := int(mt.Flip[flip][mi]), Flip(n); got != want {
				t.Fatalf("Flip table: move %s from %d gives %d, cubie gives %d", m, flip, got, want)
			}
			if got, want := int(mt.UDSlice[udslice][mi]), UDSlice(n); got != want {
				t.Fatalf("UDSlice table: move %s from %d gives %d, cubie gives %d", m, udslice, got, want)
			}
		}
	}

	// Phase-2 tables against cubie application within G1 (scramble with
	// phase-2 generators only, which never leave the subgroup).
	for trial := 0; trial < 20; trial++ {
		c := cubie.New()
		for i := 0; i < 20; i++ {
			c.Apply(types.Phase2Moves[(trial+i*7)%len(types.Phase2Moves)])
		}
		if !IsG1(c) {
			t.Fatal("Phase-2 generators should never leave G1")
		}
		cp, ep, ss := Phase2(c)
		for mi, m := range types.Phase2Moves {
			n := c.Clone()
			n.Apply(m)
			if got, want := int(mt.CornerPerm[cp][mi]), CornerPerm(n); got != want {
				t.Fatalf("CornerPerm table: move %s from %d gives %d, cubie gives %d", m, cp, got, want)
			}
			if got, want := int(mt.EdgePerm[ep][mi]), EdgePerm(n); got != want {
				t.Fatalf("EdgePerm table: move %s from %d gives %d, cubie gives %d", m, ep, got, want)
			}
			if got, want := int(mt.SliceSorted[ss][mi]), SliceSorted(n); got != want {
				t.Fatalf("SliceSorted table: move %s from %d gives %d, cubie gives %d", m, ss, got, want)
			}
		}
	}
}

func TestBinomial(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{12, 4, 495},
		{11, 4, 330},
		{4, 4, 1},
		{3, 4, 0},
		{0, 0, 1},
		{8, 1, 8},
	}
	for _, tc := range cases {
		if got := binomial(tc.n, tc.k); got != tc.want {
			t.Errorf("binomial(%d,%d) = %d, want %d", tc.n, tc.k, got, tc.want)
		}
	}
}
