package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	solveScramble string
	solveRandom   int
	solveTimeout  time.Duration
	solveImprove  bool
	solveNoStore  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube scrambled by a given or random move sequence.

The first run builds the pruning tables and persists them under
~/.cubesolver; later runs load them in milliseconds. Each solve is
recorded in the local history database.

Examples:
  cubesolver solve --scramble "R U R' U' F2 D B"
  cubesolver solve --random 20
  cubesolver solve --random 20 --improve --timeout 3s`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence to solve")
	solveCmd.Flags().IntVar(&solveRandom, "random", 0, "Generate a random scramble of N moves")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Search time budget")
	solveCmd.Flags().BoolVar(&solveImprove, "improve", false, "Keep searching for a shorter solution until the timeout")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Do not record the solve in history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var scramble []cubesolver.Move
	var cube *cubesolver.Cube

	switch {
	case solveScramble != "":
		moves, err := cubesolver.ParseMoves(solveScramble)
		if err != nil {
			return fmt.Errorf("invalid scramble: %w", err)
		}
		scramble = moves
		cube = cubesolver.New()
		cube.Apply(moves...)
	case solveRandom > 0:
		scramble, cube = cubesolver.Scramble(solveRandom)
	default:
		return fmt.Errorf("provide --scramble or --random")
	}

	fmt.Println(titleStyle.Render("Scramble:"), moveStyle.Render(cubesolver.FormatMoves(scramble)))
	fmt.Print(renderCube(cube))

	s, err := newSolver(cubesolver.WithImprove(solveImprove))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	start := time.Now()
	solution, err := s.Solve(ctx, cube)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	fmt.Println(titleStyle.Render("Solution:"), moveStyle.Render(cubesolver.FormatMoves(solution)))
	fmt.Println(statusStyle.Render(fmt.Sprintf("%d moves in %s", len(solution), elapsed.Round(time.Millisecond))))

	check := cube.Clone()
	check.Apply(solution...)
	if !check.IsSolved() {
		fmt.Println(errorStyle.Render("WARNING: solution does not solve the cube"))
	}

	if solveNoStore {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(cubesolver.FormatMoves(scramble), cubesolver.FormatMoves(solution), len(solution), elapsed)
	if err != nil {
		return fmt.Errorf("failed to record solve: %w", err)
	}
	if verbose {
		fmt.Println(statusStyle.Render("Recorded solve " + id))
	}
	return nil
}

// newSolver builds a library solver honoring the global --tables flag.
func newSolver(opts ...cubesolver.Option) (*cubesolver.Solver, error) {
	if tablesPath != "" {
		opts = append(opts, cubesolver.WithTablePath(tablesPath))
	}
	if verbose {
		fmt.Println(statusStyle.Render("Loading pruning tables..."))
	}
	s, err := cubesolver.NewSolver(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare solver: %w", err)
	}
	return s, nil
}
