package prune

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
	"github.com/SeamusWaldron/cubesolver/internal/cubie"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	buildOnce  sync.Once
	testMoves  *coord.MoveTables
	testTables *Tables
)

// sharedTables builds the move and pruning tables once per test binary.
func sharedTables(t *testing.T) (*coord.MoveTables, *Tables) {
	t.Helper()
	buildOnce.Do(func() {
		testMoves = coord.NewMoveTables()
		testTables = Build(testMoves)
	})
	return testMoves, testTables
}

func TestTableSizes(t *testing.T) {
	_, pt := sharedTables(t)
	if len(pt.SliceTwist) != SliceTwistSize {
		t.Errorf("SliceTwist has %d entries, want %d", len(pt.SliceTwist), SliceTwistSize)
	}
	if len(pt.SliceFlip) != SliceFlipSize {
		t.Errorf("SliceFlip has %d entries, want %d", len(pt.SliceFlip), SliceFlipSize)
	}
	if len(pt.CornerSlice) != CornerSliceSize {
		t.Errorf("CornerSlice has %d entries, want %d", len(pt.CornerSlice), CornerSliceSize)
	}
	if len(pt.EdgeSlice) != EdgeSliceSize {
		t.Errorf("EdgeSlice has %d entries, want %d", len(pt.EdgeSlice), EdgeSliceSize)
	}
}

func TestGoalDistanceZero(t *testing.T) {
	_, pt := sharedTables(t)
	if d := pt.Phase1Dist(0, 0, 0); d != 0 {
		t.Errorf("Phase1Dist(goal) = %d, want 0", d)
	}
	if d := pt.Phase2Dist(0, 0, 0); d != 0 {
		t.Errorf("Phase2Dist(goal) = %d, want 0", d)
	}
}

func TestEveryEntryReached(t *testing.T) {
	_, pt := sharedTables(t)
	for name, table := range map[string][]uint8{
		"SliceTwist":  pt.SliceTwist,
		"SliceFlip":   pt.SliceFlip,
		"CornerSlice": pt.CornerSlice,
		"EdgeSlice":   pt.EdgeSlice,
	} {
		for i, d := range table {
			if d == unset {
				t.Fatalf("%s[%d] never reached by BFS", name, i)
			}
		}
	}
}

func TestNeighborDistancesDifferByAtMostOne(t *testing.T) {
	mt, pt := sharedTables(t)
	// BFS distances along any generator edge can change by at most 1.
	for idx := 0; idx < SliceTwistSize; idx += 997 {
		tw, sl := idx/coord.NumUDSlice, idx%coord.NumUDSlice
		for mi := 0; mi < 18; mi++ {
			n := int(mt.Twist[tw][mi])*coord.NumUDSlice + int(mt.UDSlice[sl][mi])
			diff := int(pt.SliceTwist[idx]) - int(pt.SliceTwist[n])
			if diff < -1 || diff > 1 {
				t.Fatalf("SliceTwist[%d]=%d but neighbor [%d]=%d", idx, pt.SliceTwist[idx], n, pt.SliceTwist[n])
			}
		}
	}
}

func TestHeuristicNeverOverestimates(t *testing.T) {
	_, pt := sharedTables(t)
	// Walk n moves away from solved; the heuristic must be <= n.
	for trial := 0; trial < 30; trial++ {
		moves, c := cubie.Scramble(trial % 12)
		twist, flip, udslice := coord.Phase1(c)
		if d := pt.Phase1Dist(twist, flip, udslice); d > len(moves) {
			t.Fatalf("Phase1Dist = %d after only %d moves (%s)", d, len(moves), types.FormatMoves(moves))
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	_, pt := sharedTables(t)
	path := filepath.Join(t.TempDir(), "pruning.tables")

	if err := pt.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for i := range pt.SliceTwist {
		if pt.SliceTwist[i] != loaded.SliceTwist[i] {
			t.Fatalf("SliceTwist[%d] changed across save/load", i)
		}
	}
	for i := range pt.EdgeSlice {
		if pt.EdgeSlice[i] != loaded.EdgeSlice[i] {
			t.Fatalf("EdgeSlice[%d] changed across save/load", i)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.tables"))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestLoadRejectsCorruption(t *testing.T) {
	_, pt := sharedTables(t)
	path := filepath.Join(t.TempDir(), "pruning.tables")
	if err := pt.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Flip one payload byte: checksum must catch it.
	buf[headerSize+1234] ^= 0xFF
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Corrupted payload: expected ErrUnavailable, got %v", err)
	}

	// Truncation.
	if err := os.WriteFile(path, buf[:len(buf)/2], 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Truncated file: expected ErrUnavailable, got %v", err)
	}
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	_, pt := sharedTables(t)
	path := filepath.Join(t.TempDir(), "pruning.tables")
	if err := pt.Save(path); err != nil {
		t.Fatal(err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	buf[4]++ // bump the version field
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Wrong version: expected ErrUnavailable, got %v", err)
	}
}

func TestLoadOrBuildRecovers(t *testing.T) {
	mt, _ := sharedTables(t)
	path := filepath.Join(t.TempDir(), "pruning.tables")

	// Missing file: built and persisted.
	pt, err := LoadOrBuild(path, mt)
	if err != nil {
		t.Fatalf("LoadOrBuild failed: %v", err)
	}
	if pt.Phase1Dist(0, 0, 0) != 0 {
		t.Error("Rebuilt tables look wrong")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("LoadOrBuild should persist the rebuilt tables: %v", err)
	}

	// Second call loads the persisted file.
	if _, err := LoadOrBuild(path, mt); err != nil {
		t.Fatalf("LoadOrBuild on existing file failed: %v", err)
	}
}
