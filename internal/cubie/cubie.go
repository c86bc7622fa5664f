// Package cubie provides the cubie-level 3x3 Rubik's cube model: each
// configuration is a permutation of the 8 corner and 12 edge pieces plus
// per-slot orientations. This is the source of truth for the solver; the
// facelet grid is a derived display projection.
package cubie

// Corner identifies one of the 8 corner pieces, independent of its slot.
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

func (c Corner) String() string {
	names := [...]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}
	if int(c) < len(names) {
		return names[c]
	}
	return "?"
}

// Edge identifies one of the 12 edge pieces, independent of its slot.
// FR, FL, BL and BR are the four UD-slice edges.
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

func (e Edge) String() string {
	names := [...]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}
	if int(e) < len(names) {
		return names[e]
	}
	return "?"
}

// Cube represents a cube configuration at the cubie level.
//
// CP[i] is the corner piece sitting in slot i and CO[i] its twist
// (0..2, clockwise twists relative to the solved piece). EP/EO are the
// same for edges, with EO in {0,1}.
type Cube struct {
	CP [8]Corner
	CO [8]uint8
	EP [12]Edge
	EO [12]uint8
}

// New creates a solved cube: every piece in its home slot, untwisted.
func New() *Cube {
	c := &Cube{}
	for i := range c.CP {
		c.CP[i] = Corner(i)
	}
	for i := range c.EP {
		c.EP[i] = Edge(i)
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether two cubes are in the same configuration.
func (c *Cube) Equal(o *Cube) bool {
	return *c == *o
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	for i := range c.CP {
		if c.CP[i] != Corner(i) || c.CO[i] != 0 {
			return false
		}
	}
	for i := range c.EP {
		if c.EP[i] != Edge(i) || c.EO[i] != 0 {
			return false
		}
	}
	return true
}
