package cubie

import (
	"errors"
	"fmt"
)

// ErrUnsolvable is the base error for states that violate a reachability
// invariant. Errors returned by Validate wrap it.
var ErrUnsolvable = errors.New("cubie: unsolvable cube state")

// Validate checks the four invariants every reachable configuration holds:
// each corner and edge piece appears in exactly one slot, corner twists sum
// to 0 mod 3, edge flips sum to 0 mod 2, and the corner and edge
// permutations have equal parity. A state failing any of them cannot be
// reached by face turns and must never be handed to the solver.
func (c *Cube) Validate() error {
	var cornerSeen [8]bool
	for i, p := range c.CP {
		if int(p) >= 8 {
			return fmt.Errorf("%w: slot %d holds invalid corner %d", ErrUnsolvable, i, p)
		}
		if cornerSeen[p] {
			return fmt.Errorf("%w: corner %v appears more than once", ErrUnsolvable, p)
		}
		cornerSeen[p] = true
		if c.CO[i] > 2 {
			return fmt.Errorf("%w: corner slot %d has invalid twist %d", ErrUnsolvable, i, c.CO[i])
		}
	}

	var edgeSeen [12]bool
	for i, p := range c.EP {
		if int(p) >= 12 {
			return fmt.Errorf("%w: slot %d holds invalid edge %d", ErrUnsolvable, i, p)
		}
		if edgeSeen[p] {
			return fmt.Errorf("%w: edge %v appears more than once", ErrUnsolvable, p)
		}
		edgeSeen[p] = true
		if c.EO[i] > 1 {
			return fmt.Errorf("%w: edge slot %d has invalid flip %d", ErrUnsolvable, i, c.EO[i])
		}
	}

	twist := 0
	for _, o := range c.CO {
		twist += int(o)
	}
	if twist%3 != 0 {
		return fmt.Errorf("%w: corner twist sum %d not divisible by 3", ErrUnsolvable, twist)
	}

	flip := 0
	for _, o := range c.EO {
		flip += int(o)
	}
	if flip%2 != 0 {
		return fmt.Errorf("%w: edge flip sum %d is odd", ErrUnsolvable, flip)
	}

	if c.cornerParity() != c.edgeParity() {
		return fmt.Errorf("%w: corner and edge permutation parities differ", ErrUnsolvable)
	}

	return nil
}

// cornerParity returns the parity (0 or 1) of the corner permutation.
func (c *Cube) cornerParity() int {
	inversions := 0
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if c.CP[i] > c.CP[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}

// edgeParity returns the parity (0 or 1) of the edge permutation.
func (c *Cube) edgeParity() int {
	inversions := 0
	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			if c.EP[i] > c.EP[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}
