package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long: `Display recorded solves with their scrambles and solutions.

Use --last to show only the most recent solve in full.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
	historyCmd.Flags().BoolVar(&historyLast, "last", false, "Show only the most recent solve")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	if historyLast {
		s, err := repo.GetLast()
		if err != nil {
			return err
		}
		if s == nil {
			fmt.Println("No solves recorded yet.")
			return nil
		}
		printSolve(s)
		return nil
	}

	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("No solves recorded yet. Run 'cubesolver solve --random 20' first.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %6s  %8s\n", "ID", "SOLVED AT", "MOVES", "TIME")
	for _, s := range solves {
		fmt.Printf("%-36s  %-20s  %6d  %8s\n",
			s.SolveID,
			s.SolvedAt.Local().Format("2006-01-02 15:04:05"),
			s.MoveCount,
			(time.Duration(s.DurationMs) * time.Millisecond).String(),
		)
	}
	return nil
}

func printSolve(s *storage.Solve) {
	fmt.Println(titleStyle.Render("Solve:"), s.SolveID)
	fmt.Println("Solved at:", s.SolvedAt.Local().Format(time.RFC1123))
	fmt.Println("Scramble: ", moveStyle.Render(s.Scramble))
	fmt.Println("Solution: ", moveStyle.Render(s.Solution))
	fmt.Printf("Moves: %d  Search time: %s\n", s.MoveCount, time.Duration(s.DurationMs)*time.Millisecond)
}
