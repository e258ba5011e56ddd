package layout_test

import (
	"math"
	"testing"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
)

// =============================================================================
// Fraction Invariant Tests
// =============================================================================

const fracTolerance = 1e-9

func sumFractions(f []float64) float64 {
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	return sum
}

func newMockTile() *layout.Tile {
	return layout.NewTile(nil)
}

func TestInsertRescalesFractionsToSumOne(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 100, H: 100}, nil)
	for i := 0; i < 4; i++ {
		if err := tr.Insert(newMockTile(), layout.InsertAuto); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}
	snap := tr.Inspect()
	if snap.Root.Container == nil {
		t.Fatalf("expected a container root after 4 inserts")
	}
	if got := sumFractions(snap.Root.Container.Fractions); math.Abs(got-1.0) > fracTolerance {
		t.Fatalf("fractions must sum to 1, got %v", got)
	}
	for _, f := range snap.Root.Container.Fractions {
		if f <= 0 || f >= 1 {
			t.Fatalf("fraction %v out of (0,1)", f)
		}
	}
}

func TestRemoveRescalesFractionsToSumOne(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 100, H: 100}, nil)
	var ids []layout.WindowID
	for i := 0; i < 3; i++ {
		tile := newMockTile()
		ids = append(ids, tile.ID)
		if err := tr.Insert(tile, layout.InsertAuto); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}
	if err := tr.Remove(ids[1]); err != nil {
		t.Fatalf("remove: %v", err)
	}
	snap := tr.Inspect()
	if snap.Root.Container == nil {
		t.Fatalf("expected a container root after removing the middle of 3 tiles")
	}
	if got := sumFractions(snap.Root.Container.Fractions); math.Abs(got-1.0) > fracTolerance {
		t.Fatalf("fractions must sum to 1 after remove, got %v", got)
	}
}
