package layout_test

import (
	"testing"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
)

// =============================================================================
// Arranger Geometry Tests
// =============================================================================

func TestArrangeSplitHExactSum(t *testing.T) {
	tr := layout.NewTree(layout.Rect{X: 0, Y: 0, W: 97, H: 41}, nil)
	var tiles []*layout.Tile
	for i := 0; i < 3; i++ {
		tile := newMockTile()
		tiles = append(tiles, tile)
		if err := tr.Insert(tile, layout.InsertAuto); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	layout.Arrange(tr)

	sum := 0
	for _, tile := range tiles {
		if tile.Rect.H != 41 {
			t.Fatalf("expected full height 41, got %d", tile.Rect.H)
		}
		sum += tile.Rect.W
	}
	if sum != 97 {
		t.Fatalf("expected child widths to sum to working area width 97, got %d", sum)
	}
}

func TestArrangeSplitVExactSumWithGap(t *testing.T) {
	opts := layout.DefaultOptions()
	opts.Gap = 2
	tr := layout.NewTree(layout.Rect{X: 0, Y: 0, W: 50, H: 77}, opts)
	var tiles []*layout.Tile
	for i := 0; i < 4; i++ {
		tile := newMockTile()
		tiles = append(tiles, tile)
		tr.Insert(tile, layout.InsertAuto)
	}
	if err := tr.SetLayoutMode(layout.SplitV); err != nil {
		t.Fatalf("set layout mode: %v", err)
	}
	layout.Arrange(tr)

	sum := 0
	for i, tile := range tiles {
		sum += tile.Rect.H
		if i > 0 {
			sum += opts.Gap
		}
	}
	// root inset by outer gap on both edges, plus inter-child gaps, must
	// still land on exactly the working area height.
	if sum != 77-2*opts.Gap {
		t.Fatalf("expected content sum %d, got %d", 77-2*opts.Gap, sum)
	}
}

func TestArrangeTabbedGivesAllChildrenSameRect(t *testing.T) {
	tr := layout.NewTree(layout.Rect{X: 0, Y: 0, W: 80, H: 24}, nil)
	a, b := newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto)
	if err := tr.SetLayoutMode(layout.Tabbed); err != nil {
		t.Fatalf("set layout mode: %v", err)
	}
	layout.Arrange(tr)

	if a.Rect != b.Rect {
		t.Fatalf("expected tabbed children to share one rect, got %+v vs %+v", a.Rect, b.Rect)
	}
}

func TestArrangeStackedReservesPerChildStripHeightIndependentlyOfTabBar(t *testing.T) {
	opts := layout.DefaultOptions()
	opts.TabBarHeight = 1
	opts.TitleStripHeight = 3
	opts.TabIndicatorPlacement = layout.TabIndicatorWithinColumn
	tr := layout.NewTree(layout.Rect{X: 0, Y: 0, W: 80, H: 24}, opts)
	a, b, c := newMockTile(), newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto)
	tr.Insert(c, layout.InsertAuto)
	if err := tr.SetLayoutMode(layout.Stacked); err != nil {
		t.Fatalf("set layout mode: %v", err)
	}
	layout.Arrange(tr)

	wantHeader := opts.TitleStripHeight * 3
	wantHeight := 24 - wantHeader
	if a.Rect.H != wantHeight {
		t.Fatalf("expected stacked content height %d (reserving %d for 3 strips), got %d", wantHeight, wantHeader, a.Rect.H)
	}
}

func TestArrangeFullscreenOverridesWorkingArea(t *testing.T) {
	tr := layout.NewTree(layout.Rect{X: 0, Y: 0, W: 80, H: 24}, nil)
	a, b := newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto) // b focused
	if err := tr.SetFocusedFullscreen(true); err != nil {
		t.Fatalf("set fullscreen: %v", err)
	}
	layout.Arrange(tr)

	want := layout.Rect{X: 0, Y: 0, W: 80, H: 24}
	if b.Rect != want {
		t.Fatalf("expected fullscreen tile to occupy the full working area, got %+v", b.Rect)
	}
	if !b.Fullscreen {
		t.Fatalf("expected tile b to be marked fullscreen")
	}
}
