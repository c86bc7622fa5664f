// Package types contains shared type definitions for the cubesolver module.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNotation is returned when a move token is not one of the 18
// standard generators.
var ErrInvalidNotation = errors.New("types: invalid move notation")

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// Turn180 is its own inverse
	}
	return inv
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Turn180 && other.Turn == Turn180)
}

// Validate checks that the move is one of the 18 standard generators. Move
// is an open struct, so hand-built values can carry an unknown face or turn;
// they fail here with an error wrapping ErrInvalidNotation.
func (m Move) Validate() error {
	switch m.Face {
	case FaceR, FaceL, FaceU, FaceD, FaceF, FaceB:
	default:
		return fmt.Errorf("%w: unknown face %q", ErrInvalidNotation, string(m.Face))
	}
	switch m.Turn {
	case TurnCW, TurnCCW, Turn180:
	default:
		return fmt.Errorf("%w: unknown turn %d", ErrInvalidNotation, int(m.Turn))
	}
	return nil
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// AllMoves is the full generator set: every face with every turn, in the
// canonical search order U,U2,U',D,D2,D',R,R2,R',L,L2,L',F,F2,F',B,B2,B'.
var AllMoves = []Move{
	{FaceU, TurnCW}, {FaceU, Turn180}, {FaceU, TurnCCW},
	{FaceD, TurnCW}, {FaceD, Turn180}, {FaceD, TurnCCW},
	{FaceR, TurnCW}, {FaceR, Turn180}, {FaceR, TurnCCW},
	{FaceL, TurnCW}, {FaceL, Turn180}, {FaceL, TurnCCW},
	{FaceF, TurnCW}, {FaceF, Turn180}, {FaceF, TurnCCW},
	{FaceB, TurnCW}, {FaceB, Turn180}, {FaceB, TurnCCW},
}

// Phase2Moves is the generator set that keeps a cube inside the G1 group:
// all U and D turns plus half turns of the remaining faces.
var Phase2Moves = []Move{
	{FaceU, TurnCW}, {FaceU, Turn180}, {FaceU, TurnCCW},
	{FaceD, TurnCW}, {FaceD, Turn180}, {FaceD, TurnCCW},
	{FaceR, Turn180},
	{FaceL, Turn180},
	{FaceF, Turn180},
	{FaceB, Turn180},
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Extract face
	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	// Extract turn
	turn := TurnCW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = TurnCCW
		case "2":
			turn = Turn180
		case "2'", "2`":
			turn = Turn180 // Same as 180
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Any invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves: each move inverted,
// in reverse order.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
