package cubesolver

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(cubesolver.R, cubesolver.U, cubesolver.RPrime, cubesolver.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: TurnCW}  // Right clockwise
	RPrime = Move{Face: FaceR, Turn: TurnCCW} // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Turn180} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: TurnCW}  // Left clockwise
	LPrime = Move{Face: FaceL, Turn: TurnCCW} // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Turn180} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: TurnCW}  // Up clockwise
	UPrime = Move{Face: FaceU, Turn: TurnCCW} // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Turn180} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: TurnCW}  // Down clockwise
	DPrime = Move{Face: FaceD, Turn: TurnCCW} // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Turn180} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: TurnCW}  // Front clockwise
	FPrime = Move{Face: FaceF, Turn: TurnCCW} // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Turn180} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: TurnCW}  // Back clockwise
	BPrime = Move{Face: FaceB, Turn: TurnCCW} // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Turn180} // Back 180
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
