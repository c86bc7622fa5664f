package cubie

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Each face turn is itself a Cube: the permutation and orientation deltas a
// single clockwise quarter turn applies. Half and counter-clockwise turns
// are the same delta composed two or three times, so X2 is a first-class
// generator rather than a notation alias.
var (
	moveU = Cube{
		CP: [8]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		CO: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	moveR = Cube{
		CP: [8]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	moveF = Cube{
		CP: [8]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
	moveD = Cube{
		CP: [8]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		CO: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	moveL = Cube{
		CP: [8]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	moveB = Cube{
		CP: [8]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
)

// faceMove returns the quarter-turn delta for a face.
func faceMove(f types.Face) *Cube {
	switch f {
	case types.FaceU:
		return &moveU
	case types.FaceD:
		return &moveD
	case types.FaceR:
		return &moveR
	case types.FaceL:
		return &moveL
	case types.FaceF:
		return &moveF
	case types.FaceB:
		return &moveB
	default:
		return &moveU
	}
}

// cornerMultiply composes the corner part: c becomes c * m.
func (c *Cube) cornerMultiply(m *Cube) {
	var cp [8]Corner
	var co [8]uint8
	for i := 0; i < 8; i++ {
		cp[i] = c.CP[m.CP[i]]
		co[i] = (c.CO[m.CP[i]] + m.CO[i]) % 3
	}
	c.CP = cp
	c.CO = co
}

// edgeMultiply composes the edge part: c becomes c * m.
func (c *Cube) edgeMultiply(m *Cube) {
	var ep [12]Edge
	var eo [12]uint8
	for i := 0; i < 12; i++ {
		ep[i] = c.EP[m.EP[i]]
		eo[i] = (c.EO[m.EP[i]] + m.EO[i]) % 2
	}
	c.EP = ep
	c.EO = eo
}

// Multiply composes c with m in place: c becomes c * m.
func (c *Cube) Multiply(m *Cube) {
	c.cornerMultiply(m)
	c.edgeMultiply(m)
}

// Apply applies a move to the cube in place.
func (c *Cube) Apply(m types.Move) {
	d := faceMove(m.Face)
	times := 1
	switch m.Turn {
	case types.Turn180:
		times = 2
	case types.TurnCCW:
		times = 3
	}
	for i := 0; i < times; i++ {
		c.Multiply(d)
	}
}

// ApplyMoves applies a sequence of moves to the cube in place.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// Applied returns a copy of the cube with the move applied, leaving the
// receiver untouched.
func (c *Cube) Applied(m types.Move) *Cube {
	n := c.Clone()
	n.Apply(m)
	return n
}
