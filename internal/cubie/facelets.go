package cubie

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face indexes the six faces of the derived facelet grid.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// faceColor returns the color of a face when solved.
func faceColor(f Face) Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// facelet addresses one sticker: a face and a position 0..8 within it,
// indexed row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
type facelet struct {
	face Face
	pos  int
}

// cornerFacelets[slot] lists the three stickers of a corner slot, starting
// with the U/D sticker and continuing clockwise around the piece.
var cornerFacelets = [8][3]facelet{
	URF: {{U, 8}, {R, 0}, {F, 2}},
	UFL: {{U, 6}, {F, 0}, {L, 2}},
	ULB: {{U, 0}, {L, 0}, {B, 2}},
	UBR: {{U, 2}, {B, 0}, {R, 2}},
	DFR: {{D, 2}, {F, 8}, {R, 6}},
	DLF: {{D, 0}, {L, 8}, {F, 6}},
	DBL: {{D, 6}, {B, 8}, {L, 6}},
	DRB: {{D, 8}, {R, 8}, {B, 6}},
}

// cornerColors[piece] lists the colors of a corner piece in the same sticker
// order as cornerFacelets.
var cornerColors = [8][3]Face{
	URF: {U, R, F},
	UFL: {U, F, L},
	ULB: {U, L, B},
	UBR: {U, B, R},
	DFR: {D, F, R},
	DLF: {D, L, F},
	DBL: {D, B, L},
	DRB: {D, R, B},
}

// edgeFacelets[slot] lists the two stickers of an edge slot, U/D (or F/B for
// slice slots) sticker first.
var edgeFacelets = [12][2]facelet{
	UR: {{U, 5}, {R, 1}},
	UF: {{U, 7}, {F, 1}},
	UL: {{U, 3}, {L, 1}},
	UB: {{U, 1}, {B, 1}},
	DR: {{D, 5}, {R, 7}},
	DF: {{D, 1}, {F, 7}},
	DL: {{D, 3}, {L, 7}},
	DB: {{D, 7}, {B, 7}},
	FR: {{F, 5}, {R, 3}},
	FL: {{F, 3}, {L, 5}},
	BL: {{B, 5}, {L, 3}},
	BR: {{B, 3}, {R, 5}},
}

// edgeColors[piece] lists the colors of an edge piece in the same sticker
// order as edgeFacelets.
var edgeColors = [12][2]Face{
	UR: {U, R},
	UF: {U, F},
	UL: {U, L},
	UB: {U, B},
	DR: {D, R},
	DF: {D, F},
	DL: {D, L},
	DB: {D, B},
	FR: {F, R},
	FL: {F, L},
	BL: {B, L},
	BR: {B, R},
}

// Facelets projects the cubie state onto the 6x9 sticker grid. The grid is
// derived and redundant: it is computed for display and never read back.
func (c *Cube) Facelets() [6][9]Color {
	var grid [6][9]Color

	for face := Face(0); face < 6; face++ {
		grid[face][4] = faceColor(face)
	}

	for slot := 0; slot < 8; slot++ {
		piece := c.CP[slot]
		ori := int(c.CO[slot])
		for k := 0; k < 3; k++ {
			fl := cornerFacelets[slot][(k+ori)%3]
			grid[fl.face][fl.pos] = faceColor(cornerColors[piece][k])
		}
	}

	for slot := 0; slot < 12; slot++ {
		piece := c.EP[slot]
		ori := int(c.EO[slot])
		for k := 0; k < 2; k++ {
			fl := edgeFacelets[slot][(k+ori)%2]
			grid[fl.face][fl.pos] = faceColor(edgeColors[piece][k])
		}
	}

	return grid
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	grid := c.Facelets()
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += grid[U][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				result += grid[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += grid[D][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
