// Package cubesolver provides a 3x3 Rubik's cube model and a Kociemba-style
// two-phase solver.
//
// # Features
//
//   - Cubie-level cube state with full reachability validation
//   - The 18 standard face-turn generators with exact composition
//   - Coordinate encodings and precomputed pruning tables
//   - Two-phase iterative-deepening search, bounded at 31 moves
//   - Table persistence with versioning and checksums
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	scramble, cube := cubesolver.Scramble(20)
//	fmt.Println("Scramble:", cubesolver.FormatMoves(scramble))
//
//	solver, err := cubesolver.NewSolver()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	solution, err := solver.Solve(context.Background(), cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", cubesolver.FormatMoves(solution))
//
// # Standalone Cube Manipulation
//
// The Cube type works without a solver:
//
//	cube := cubesolver.New()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubesolver.R, cubesolver.U, cubesolver.RPrime, cubesolver.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube.String())
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubesolver.R      // Right clockwise
//	cubesolver.RPrime // Right counter-clockwise
//	cubesolver.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package cubesolver

import (
	"context"
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/cubie"
	"github.com/SeamusWaldron/cubesolver/internal/prune"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Cube represents a 3x3 cube configuration. The zero value is not usable;
// create instances with New, Scramble or FromState. Cubes are value-like:
// operations mutate the receiver, Clone makes an independent copy, and no
// Cube is shared between concurrent operations.
type Cube struct {
	c *cubie.Cube
}

// New creates a solved cube.
func New() *Cube {
	return &Cube{c: cubie.New()}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	return &Cube{c: c.c.Clone()}
}

// Apply applies moves to the cube. Every move must be one of the 18
// standard generators; on the first invalid move the cube is left unchanged
// and an error wrapping ErrInvalidNotation is returned.
func (c *Cube) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	c.c.ApplyMoves(moves)
	return nil
}

// ApplyNotation parses a space-separated move sequence and applies it.
// If any token is invalid the cube is left unchanged and
// ErrInvalidNotation is returned.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := types.ParseMoves(s)
	if err != nil {
		return err
	}
	c.c.ApplyMoves(moves)
	return nil
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.c.IsSolved()
}

// Validate checks the reachability invariants: piece multisets, orientation
// sums and permutation parity. It returns an error wrapping ErrUnsolvable
// when the state cannot be reached by face turns.
func (c *Cube) Validate() error {
	return c.c.Validate()
}

// Equal reports whether two cubes are in the same configuration.
func (c *Cube) Equal(o *Cube) bool {
	return c.c.Equal(o.c)
}

// String returns the cube as an unfolded text net.
func (c *Cube) String() string {
	return c.c.String()
}

// Facelets returns the derived sticker grid: 6 faces (U,D,F,B,R,L) of 9
// row-major positions, each holding a color code 0-5
// (white, yellow, green, blue, red, orange). Display-only projection.
func (c *Cube) Facelets() [6][9]byte {
	var out [6][9]byte
	grid := c.c.Facelets()
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			out[f][i] = byte(grid[f][i])
		}
	}
	return out
}

// State is the externally visible cubie-level state, usable to reconstruct
// a Cube received over an API boundary. Corner slots and identities are
// numbered URF,UFL,ULB,UBR,DFR,DLF,DBL,DRB; edge slots and identities
// UR,UF,UL,UB,DR,DF,DL,DB,FR,FL,BL,BR.
type State struct {
	CornerPerm [8]int  `json:"corner_perm"`
	CornerOri  [8]int  `json:"corner_ori"`
	EdgePerm   [12]int `json:"edge_perm"`
	EdgeOri    [12]int `json:"edge_ori"`
}

// State returns the cube's cubie-level state.
func (c *Cube) State() State {
	var s State
	for i := 0; i < 8; i++ {
		s.CornerPerm[i] = int(c.c.CP[i])
		s.CornerOri[i] = int(c.c.CO[i])
	}
	for i := 0; i < 12; i++ {
		s.EdgePerm[i] = int(c.c.EP[i])
		s.EdgeOri[i] = int(c.c.EO[i])
	}
	return s
}

// FromState reconstructs a Cube from an externally supplied state,
// rejecting anything that fails validation before it can reach a solver.
func FromState(s State) (*Cube, error) {
	c := &cubie.Cube{}
	for i := 0; i < 8; i++ {
		if s.CornerPerm[i] < 0 || s.CornerPerm[i] > 7 || s.CornerOri[i] < 0 || s.CornerOri[i] > 2 {
			return nil, fmt.Errorf("%w: corner slot %d out of range", ErrUnsolvable, i)
		}
		c.CP[i] = cubie.Corner(s.CornerPerm[i])
		c.CO[i] = uint8(s.CornerOri[i])
	}
	for i := 0; i < 12; i++ {
		if s.EdgePerm[i] < 0 || s.EdgePerm[i] > 11 || s.EdgeOri[i] < 0 || s.EdgeOri[i] > 1 {
			return nil, fmt.Errorf("%w: edge slot %d out of range", ErrUnsolvable, i)
		}
		c.EP[i] = cubie.Edge(s.EdgePerm[i])
		c.EO[i] = uint8(s.EdgeOri[i])
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Cube{c: c}, nil
}

// Scramble applies n uniformly sampled generators to a solved cube and
// returns the sequence with the resulting state.
func Scramble(n int) ([]Move, *Cube) {
	moves, c := cubie.Scramble(n)
	return moves, &Cube{c: c}
}

// Solver finds solving sequences using shared, read-only pruning tables.
// Construction builds (or loads) the tables once; afterwards a single
// Solver serves any number of concurrent Solve calls.
type Solver struct {
	inner *solver.Solver
}

// NewSolver creates a solver, loading persisted pruning tables when a
// usable file exists and rebuilding (then re-persisting) otherwise.
func NewSolver(opts ...Option) (*Solver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	mt := coord.NewMoveTables()

	var pt *prune.Tables
	if cfg.noPersist {
		pt = prune.Build(mt)
	} else {
		path := cfg.tablePath
		if path == "" {
			var err error
			path, err = prune.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		var err error
		pt, err = prune.LoadOrBuild(path, mt)
		if err != nil {
			return nil, err
		}
	}

	inner := solver.New(mt, pt)
	inner.MaxLength = cfg.maxLength
	inner.Improve = cfg.improve
	return &Solver{inner: inner}, nil
}

// Solve returns a move sequence that drives the cube to the solved state.
// The input is validated first; states failing the reachability invariants
// are rejected with ErrUnsolvable. The returned sequence is at most the
// configured move ceiling (31 by default). The input cube is not modified.
func (s *Solver) Solve(ctx context.Context, c *Cube) ([]Move, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return s.inner.Solve(ctx, c.c)
}

// SolveWithin is Solve bounded by a time budget.
func (s *Solver) SolveWithin(c *Cube, budget time.Duration) ([]Move, error) {
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()
	return s.Solve(ctx, c)
}
