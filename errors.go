package cubesolver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cubie"
	"github.com/SeamusWaldron/cubesolver/internal/prune"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Sentinel errors for the cubesolver package. Internal packages define the
// underlying values; they are re-exported here so callers can use errors.Is
// against a single surface.
var (
	// ErrInvalidNotation indicates a move token outside the 18 standard
	// generators.
	ErrInvalidNotation = types.ErrInvalidNotation

	// ErrUnsolvable indicates a state violating a reachability invariant:
	// wrong piece multiset, bad orientation sum, or mismatched
	// permutation parity.
	ErrUnsolvable = cubie.ErrUnsolvable

	// ErrTableUnavailable indicates persisted pruning tables are missing,
	// truncated, or fail their checksum. Recovered by rebuilding.
	ErrTableUnavailable = prune.ErrUnavailable

	// ErrNoSolution indicates the search exhausted the global move
	// ceiling; for a validated state this means corrupted tables or
	// broken move definitions.
	ErrNoSolution = solver.ErrNoSolution
)
