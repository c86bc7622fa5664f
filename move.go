package cubesolver

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Move, Face and Turn are the shared move types from pkg/types, aliased so
// library users only need this package.
type (
	Move = types.Move
	Face = types.Face
	Turn = types.Turn
)

const (
	FaceR = types.FaceR
	FaceL = types.FaceL
	FaceU = types.FaceU
	FaceD = types.FaceD
	FaceF = types.FaceF
	FaceB = types.FaceB

	TurnCW  = types.TurnCW
	TurnCCW = types.TurnCCW
	Turn180 = types.Turn180
)

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	return types.ParseMove(s)
}

// ParseMoves parses a space-separated sequence of moves, failing on any
// invalid token. Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	return types.ParseMoves(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return types.FormatMoves(moves)
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	return types.InverseMoves(moves)
}
