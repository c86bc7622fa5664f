package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>...",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a sequence of moves to a solved cube and display the result.

Example:
  cubesolver apply R U R' U'
  cubesolver apply "F B2 L' D"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cubesolver.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("invalid moves: %w", err)
	}

	cube := cubesolver.New()
	cube.Apply(moves...)

	fmt.Println(titleStyle.Render("Applied:"), moveStyle.Render(cubesolver.FormatMoves(moves)))
	fmt.Print(renderCube(cube))
	if cube.IsSolved() {
		fmt.Println(statusStyle.Render("Cube is solved"))
	}
	return nil
}
