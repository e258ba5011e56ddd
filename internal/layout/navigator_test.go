package layout_test

import (
	"testing"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
)

// =============================================================================
// Insert / Remove / Focus Path Tests
// =============================================================================

func TestInsertIntoEmptyTreeBecomesRoot(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 80, H: 24}, nil)
	tile := newMockTile()
	if err := tr.Insert(tile, layout.InsertAuto); err != nil {
		t.Fatalf("insert: %v", err)
	}
	snap := tr.Inspect()
	if snap.Root == nil || snap.Root.Tile == nil || snap.Root.Tile.ID != tile.ID {
		t.Fatalf("expected the single tile to become root, got %+v", snap.Root)
	}
	if len(snap.FocusPath) != 0 {
		t.Fatalf("expected empty focus path for a lone root tile, got %v", snap.FocusPath)
	}
}

func TestSplitDefersContainerCreationUntilNextInsert(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 80, H: 24}, nil)
	first := newMockTile()
	tr.Insert(first, layout.InsertAuto)

	if err := tr.Split(layout.SplitV); err != nil {
		t.Fatalf("split: %v", err)
	}
	// No structural change yet: root must still be the lone tile.
	snap := tr.Inspect()
	if snap.Root.Tile == nil {
		t.Fatalf("Split must not materialize a container before the next insert")
	}

	second := newMockTile()
	if err := tr.Insert(second, layout.InsertAuto); err != nil {
		t.Fatalf("insert: %v", err)
	}
	snap = tr.Inspect()
	if snap.Root.Container == nil {
		t.Fatalf("expected Split+Insert to produce a container root")
	}
	if snap.Root.Container.Layout != layout.SplitV {
		t.Fatalf("expected SplitV container, got %v", snap.Root.Container.Layout)
	}
	if len(snap.Root.Container.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(snap.Root.Container.Children))
	}
}

func TestSplitHonorsCustomDefaultSplitRatio(t *testing.T) {
	opts := layout.DefaultOptions()
	opts.DefaultSplitRatio = 0.25
	tr := layout.NewTree(layout.Rect{W: 80, H: 24}, opts)
	first := newMockTile()
	tr.Insert(first, layout.InsertAuto)
	tr.Split(layout.SplitH)
	second := newMockTile()
	tr.Insert(second, layout.InsertAuto)
	layout.Arrange(tr)

	want := int(float64(80) * 0.75) // old tile keeps 1-ratio, is child 0, floors
	if first.Rect.W != want {
		t.Fatalf("expected old tile width %d under a 0.25 split ratio, got %d", want, first.Rect.W)
	}
}

func TestFocusPathMirroredInFocusedIdx(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 80, H: 24}, nil)
	a, b, c := newMockTile(), newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto)
	tr.Insert(c, layout.InsertAuto)

	snap := tr.Inspect()
	node := snap.Root
	for _, idx := range snap.FocusPath {
		if node.Container == nil {
			t.Fatalf("focus path longer than container depth")
		}
		if node.Container.FocusedIdx != idx {
			t.Fatalf("container FocusedIdx %d does not mirror focus path step %d",
				node.Container.FocusedIdx, idx)
		}
		node = node.Container.Children[idx]
	}
}

func TestRemoveFocusedRefocusesBySibling(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 80, H: 24}, nil)
	a, b := newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto) // b is now focused, inserted after a

	if err := tr.Remove(b.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	snap := tr.Inspect()
	if snap.Root.Tile == nil || snap.Root.Tile.ID != a.ID {
		t.Fatalf("expected remaining tile a to become the collapsed root, got %+v", snap.Root)
	}
}

func TestRemoveNonexistentReturnsErrNotFound(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 80, H: 24}, nil)
	tr.Insert(newMockTile(), layout.InsertAuto)
	if err := tr.Remove(layout.NewWindowID()); err != layout.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertWithUnrecognizedPolicyReturnsErrInvalidPolicy(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 80, H: 24}, nil)
	tr.Insert(newMockTile(), layout.InsertAuto)
	if err := tr.Insert(newMockTile(), layout.InsertPolicy(99)); err != layout.ErrInvalidPolicy {
		t.Fatalf("expected ErrInvalidPolicy, got %v", err)
	}
}

func TestFocusDirectionWithinSplit(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 90, H: 30}, nil)
	a, b, c := newMockTile(), newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto)
	tr.Insert(c, layout.InsertAuto)
	// focus sits on c (last inserted); moving focus left twice should land on a.
	if err := tr.FocusDirection(layout.Left); err != nil {
		t.Fatalf("focus left (1): %v", err)
	}
	if err := tr.FocusDirection(layout.Left); err != nil {
		t.Fatalf("focus left (2): %v", err)
	}
	snap := tr.Inspect()
	leaf := descendSnapshotTile(t, snap.Root, snap.FocusPath)
	if leaf.ID != a.ID {
		t.Fatalf("expected focus on tile a, got %v", leaf.ID)
	}
	if err := tr.FocusDirection(layout.Left); err != layout.ErrNoTargetInDirection {
		t.Fatalf("expected ErrNoTargetInDirection walking past the first child, got %v", err)
	}
}

func TestMoveDirectionRelocatesFocusedTile(t *testing.T) {
	tr := layout.NewTree(layout.Rect{W: 90, H: 30}, nil)
	a, b := newMockTile(), newMockTile()
	tr.Insert(a, layout.InsertAuto)
	tr.Insert(b, layout.InsertAuto) // order: a, b; b focused

	if err := tr.MoveDirection(layout.Left); err != nil {
		t.Fatalf("move left: %v", err)
	}
	snap := tr.Inspect()
	if len(snap.Root.Container.Children) != 2 {
		t.Fatalf("expected 2 children after move, got %d", len(snap.Root.Container.Children))
	}
	if snap.Root.Container.Children[0].Tile.ID != b.ID {
		t.Fatalf("expected b to have moved into slot 0, got %+v", snap.Root.Container.Children[0])
	}
}

func descendSnapshotTile(t *testing.T, n *layout.NodeSnapshot, path []int) *layout.TileSnapshot {
	t.Helper()
	for _, idx := range path {
		if n.Container == nil {
			t.Fatalf("focus path descends past a tile")
		}
		n = n.Container.Children[idx]
	}
	if n.Tile == nil {
		t.Fatalf("focus path does not terminate on a tile")
	}
	return n.Tile
}
