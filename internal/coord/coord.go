// Package coord maps projections of the cubie-level cube state onto small
// dense integer ranges. Every coordinate is a bijection between one slice of
// the state and [0, size), with the solved projection at 0, so pruning and
// transition data can live in flat arrays instead of hash maps.
package coord

import "github.com/SeamusWaldron/cubesolver/internal/cubie"

// Coordinate space sizes.
const (
	NumTwist       = 2187  // 3^7 corner orientations
	NumFlip        = 2048  // 2^11 edge orientations
	NumUDSlice     = 495   // C(12,4) slice-edge slot choices
	NumCornerPerm  = 40320 // 8! corner permutations
	NumEdgePerm    = 40320 // 8! U/D-edge permutations
	NumSliceSorted = 24    // 4! slice-edge orders
)

// Twist encodes the corner orientations as 7 base-3 digits. The orientation
// of the last corner is forced by the twist-sum invariant and carries no
// information.
func Twist(c *cubie.Cube) int {
	t := 0
	for i := 0; i < 7; i++ {
		t = 3*t + int(c.CO[i])
	}
	return t
}

// SetTwist writes the corner orientations matching a twist coordinate,
// fixing the last corner so the twist sum stays divisible by 3.
func SetTwist(c *cubie.Cube, t int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		c.CO[i] = uint8(t % 3)
		sum += t % 3
		t /= 3
	}
	c.CO[7] = uint8((3 - sum%3) % 3)
}

// Flip encodes the edge orientations as 11 base-2 digits; the last edge is
// forced by the flip-sum invariant.
func Flip(c *cubie.Cube) int {
	f := 0
	for i := 0; i < 11; i++ {
		f = 2*f + int(c.EO[i])
	}
	return f
}

// SetFlip writes the edge orientations matching a flip coordinate.
func SetFlip(c *cubie.Cube, f int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		c.EO[i] = uint8(f % 2)
		sum += f % 2
		f /= 2
	}
	c.EO[11] = uint8(sum % 2)
}

// binomial returns C(n, k), with C(n, k) = 0 for n < k.
func binomial(n, k int) int {
	if n < k {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	b := 1
	for i := 0; i < k; i++ {
		b = b * (n - i) / (i + 1)
	}
	return b
}

// UDSlice ranks which 4 of the 12 edge slots hold the slice edges
// (FR, FL, BL, BR), via the combinatorial number system. 0 means all four
// sit in the slice layer.
func UDSlice(c *cubie.Cube) int {
	a, x := 0, 0
	for j := 11; j >= 0; j-- {
		if c.EP[j] >= cubie.FR {
			a += binomial(11-j, x+1)
			x++
		}
	}
	return a
}

// SetUDSlice writes a canonical edge permutation whose slice-edge slots
// match the given coordinate: slice edges placed in ascending order, the
// remaining slots filled with the U/D edges in ascending order.
func SetUDSlice(c *cubie.Cube, a int) {
	slice := [4]cubie.Edge{cubie.FR, cubie.FL, cubie.BL, cubie.BR}
	x := 4
	other := 0
	for j := 0; j < 12; j++ {
		if x > 0 && a-binomial(11-j, x) >= 0 {
			a -= binomial(11-j, x)
			c.EP[j] = slice[4-x]
			x--
		} else {
			c.EP[j] = cubie.Edge(other)
			other++
		}
	}
}

// permRank returns the Lehmer-code rank of perm within the n! orderings of
// its element set. The identity ranks 0.
func permRank(perm []int, n int) int {
	x := 0
	for i := 0; i < n; i++ {
		s := 0
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				s++
			}
		}
		x = x*(n-i) + s
	}
	return x
}

// permUnrank writes the permutation of 0..n-1 with the given Lehmer rank.
func permUnrank(x, n int, out []int) {
	avail := make([]int, n)
	for i := range avail {
		avail[i] = i
	}
	f := 1
	for i := 2; i < n; i++ {
		f *= i
	}
	for i := 0; i < n; i++ {
		d := 0
		if f > 0 {
			d = x / f
			x %= f
		}
		out[i] = avail[d]
		avail = append(avail[:d], avail[d+1:]...)
		if n-1-i > 0 {
			f /= n - 1 - i
		}
	}
}

// CornerPerm ranks the corner permutation (phase 2 only; meaningful once
// corners are oriented).
func CornerPerm(c *cubie.Cube) int {
	var perm [8]int
	for i := range perm {
		perm[i] = int(c.CP[i])
	}
	return permRank(perm[:], 8)
}

// SetCornerPerm writes the corner permutation with the given rank.
func SetCornerPerm(c *cubie.Cube, x int) {
	var perm [8]int
	permUnrank(x, 8, perm[:])
	for i := range perm {
		c.CP[i] = cubie.Corner(perm[i])
	}
}

// EdgePerm ranks the permutation of the 8 non-slice edges across slots 0-7.
// Valid only inside G1, where those slots hold exactly the U/D edges.
func EdgePerm(c *cubie.Cube) int {
	var perm [8]int
	for i := range perm {
		perm[i] = int(c.EP[i])
	}
	return permRank(perm[:], 8)
}

// SetEdgePerm writes the U/D-edge permutation with the given rank, leaving
// the slice edges in their home slots.
func SetEdgePerm(c *cubie.Cube, x int) {
	var perm [8]int
	permUnrank(x, 8, perm[:])
	for i := range perm {
		c.EP[i] = cubie.Edge(perm[i])
	}
	for i := 8; i < 12; i++ {
		c.EP[i] = cubie.Edge(i)
	}
}

// SliceSorted ranks the relative order of the four slice edges within the
// slice slots. Valid only inside G1.
func SliceSorted(c *cubie.Cube) int {
	var perm [4]int
	for i := 0; i < 4; i++ {
		perm[i] = int(c.EP[8+i]) - int(cubie.FR)
	}
	return permRank(perm[:], 4)
}

// SetSliceSorted writes the slice-edge order with the given rank.
func SetSliceSorted(c *cubie.Cube, x int) {
	var perm [4]int
	permUnrank(x, 4, perm[:])
	for i := 0; i < 4; i++ {
		c.EP[8+i] = cubie.Edge(perm[i] + int(cubie.FR))
	}
}

// Phase1 returns the three phase-1 coordinates of a state.
func Phase1(c *cubie.Cube) (twist, flip, udslice int) {
	return Twist(c), Flip(c), UDSlice(c)
}

// Phase2 returns the three phase-2 coordinates of a state. Meaningful only
// for states inside G1.
func Phase2(c *cubie.Cube) (corner, edge, slice int) {
	return CornerPerm(c), EdgePerm(c), SliceSorted(c)
}

// IsG1 reports whether the state lies in the G1 subgroup: all orientations
// correct and the slice edges confined to the slice layer. This is exactly
// the phase-1 goal (0,0,0).
func IsG1(c *cubie.Cube) bool {
	return Twist(c) == 0 && Flip(c) == 0 && UDSlice(c) == 0
}
