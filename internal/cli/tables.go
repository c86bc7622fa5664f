package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/prune"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage pruning tables",
	Long:  `Commands for building and inspecting the persisted pruning tables.`,
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the pruning tables",
	Long: `Rebuild the pruning tables from scratch and persist them,
replacing any existing file.`,
	RunE: runTablesBuild,
}

var tablesInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show pruning table statistics",
	Long: `Load the persisted pruning tables and print per-table sizes and
distance histograms. Fails if the file is missing or corrupt.`,
	RunE: runTablesInfo,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.AddCommand(tablesBuildCmd)
	tablesCmd.AddCommand(tablesInfoCmd)
}

func tableFilePath() (string, error) {
	if tablesPath != "" {
		return tablesPath, nil
	}
	return prune.DefaultPath()
}

func runTablesBuild(cmd *cobra.Command, args []string) error {
	path, err := tableFilePath()
	if err != nil {
		return err
	}

	fmt.Println(statusStyle.Render("Building move tables..."))
	mt := coord.NewMoveTables()

	fmt.Println(statusStyle.Render("Building pruning tables..."))
	start := time.Now()
	pt := prune.Build(mt)
	fmt.Println(statusStyle.Render("Built in " + time.Since(start).Round(time.Millisecond).String()))

	if err := pt.Save(path); err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("Saved:"), path)
	return nil
}

func runTablesInfo(cmd *cobra.Command, args []string) error {
	path, err := tableFilePath()
	if err != nil {
		return err
	}

	pt, err := prune.Load(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	fmt.Println(titleStyle.Render("Pruning tables:"), path)
	fmt.Printf("Format version: %d\n\n", prune.FormatVersion)

	printHistogram("slice x twist (phase 1)", pt.SliceTwist)
	printHistogram("slice x flip (phase 1)", pt.SliceFlip)
	printHistogram("slice-order x corner perm (phase 2)", pt.CornerSlice)
	printHistogram("slice-order x edge perm (phase 2)", pt.EdgeSlice)
	return nil
}

func printHistogram(name string, table []uint8) {
	var counts [32]int
	maxDepth := 0
	for _, d := range table {
		counts[d]++
		if int(d) > maxDepth {
			maxDepth = int(d)
		}
	}

	fmt.Printf("%s: %d entries, max depth %d\n", name, len(table), maxDepth)
	for d := 0; d <= maxDepth; d++ {
		fmt.Printf("  depth %2d: %d\n", d, counts[d])
	}
	fmt.Println()
}
