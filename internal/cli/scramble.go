package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var scrambleLength int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence and show the resulting cube.

The sequence samples all 18 generators uniformly; adjacent moves may
cancel, which is fine for feeding the solver.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 20, "Number of scramble moves")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength <= 0 {
		return fmt.Errorf("scramble length must be positive")
	}

	moves, cube := cubesolver.Scramble(scrambleLength)
	fmt.Println(titleStyle.Render("Scramble:"), moveStyle.Render(cubesolver.FormatMoves(moves)))
	fmt.Print(renderCube(cube))
	return nil
}
