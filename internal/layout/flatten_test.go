package layout_test

import (
	"testing"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
)

// =============================================================================
// Flattening Invariant Tests
// =============================================================================

func TestSameAxisChildContainerIsMerged(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 90, H: 30}, nil)
	a, b := newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto) // root: SplitH[a, b], b focused

	if err := tr.FocusDirection(layout.Left); err != nil {
		t.Fatalf("focus left: %v", err)
	} // focus back on a

	if err := tr.Split(layout.SplitH); err != nil {
		t.Fatalf("split: %v", err)
	}
	c := newMockTile()
	if err := tr.Insert(c, layout.InsertAuto); err != nil {
		t.Fatalf("insert: %v", err)
	}

	snap := tr.Inspect()
	if snap.Root.Container == nil {
		t.Fatalf("expected a container root")
	}
	if len(snap.Root.Container.Children) != 3 {
		t.Fatalf("expected same-axis wrap to merge into one 3-child container, got %d children",
			len(snap.Root.Container.Children))
	}
	for _, child := range snap.Root.Container.Children {
		if child.Container != nil {
			t.Fatalf("expected no nested container to survive flattening, found %+v", child.Container)
		}
	}
}

func TestContainerNeverLeftWithOneChild(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 90, H: 30}, nil)
	a, b, c := newMockTile(), newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto)
	tr.Insert(c, layout.InsertAuto)

	if err := tr.Remove(b.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := tr.Remove(c.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	snap := tr.Inspect()
	if snap.Root.Tile == nil || snap.Root.Tile.ID != a.ID {
		t.Fatalf("expected the tree to collapse all the way to a lone root tile, got %+v", snap.Root)
	}
}
