package layout

import "fmt"

// InsertPolicy selects where a newly created Tile lands relative to the
// current focus (§4.1/§4.2).
type InsertPolicy int

const (
	// InsertAuto inserts immediately after the focused Tile within its
	// enclosing Container, or wraps the root if focus has no enclosing
	// Container yet. This is the default policy for a plain "open
	// window" mutation.
	InsertAuto InsertPolicy = iota
	// InsertAfterFocused is an explicit alias for the auto placement,
	// kept distinct so callers can name intent.
	InsertAfterFocused
	// InsertIntoFocusedContainer appends the new Tile as the last child
	// of the innermost Container enclosing focus, regardless of which
	// sibling is currently focused.
	InsertIntoFocusedContainer
	// InsertAtRoot wraps the entire tree's current root alongside the
	// new Tile under a fresh top-level Container, independent of focus.
	InsertAtRoot
	// InsertWrapFocused replaces the focused Tile itself with a new
	// two-child SplitH Container holding the old Tile and the new one.
	// A pending Split still takes priority over this policy.
	InsertWrapFocused
)

// Insert adds tile to the tree under policy, then focuses it. If a
// Split call is pending, it takes priority over policy and consumes the
// deferred wrap (§4.1).
func (t *Tree) Insert(tile *Tile, policy InsertPolicy) error {
	if tile == nil {
		return fmt.Errorf("layout: cannot insert a nil tile")
	}

	if t.Root == nil {
		t.Root = &Node{Tile: tile}
		t.pendingSplit = nil
		t.FocusPath = nil
		t.FocusDepth = 0
		t.Dirty = true
		return nil
	}

	if t.pendingSplit != nil {
		mode := *t.pendingSplit
		t.pendingSplit = nil
		if err := t.wrapNodeAt(t.FocusPath, mode, Node{Tile: tile}); err != nil {
			return err
		}
		t.simplify()
		t.rebuildFocusPath(tile.ID)
		t.Dirty = true
		return nil
	}

	switch policy {
	case InsertAtRoot:
		if err := t.wrapNodeAt(nil, SplitH, Node{Tile: tile}); err != nil {
			return err
		}

	case InsertIntoFocusedContainer:
		if len(t.FocusPath) == 0 {
			if err := t.wrapNodeAt(nil, SplitH, Node{Tile: tile}); err != nil {
				return err
			}
			break
		}
		parentPath := t.FocusPath[:len(t.FocusPath)-1]
		parent := t.nodeAt(parentPath).Container
		parent.insertChild(len(parent.Children), Node{Tile: tile})

	case InsertWrapFocused:
		if err := t.wrapNodeAt(t.FocusPath, SplitH, Node{Tile: tile}); err != nil {
			return err
		}

	case InsertAuto, InsertAfterFocused:
		if len(t.FocusPath) == 0 {
			if err := t.wrapNodeAt(nil, SplitH, Node{Tile: tile}); err != nil {
				return err
			}
			break
		}
		parentPath := t.FocusPath[:len(t.FocusPath)-1]
		idx := t.FocusPath[len(t.FocusPath)-1]
		parent := t.nodeAt(parentPath).Container
		parent.insertChild(idx+1, Node{Tile: tile})

	default:
		return ErrInvalidPolicy
	}

	t.simplify()
	t.rebuildFocusPath(tile.ID)
	t.Dirty = true
	return nil
}

// Remove deletes the Tile identified by id from the tree. If it was
// focused, focus moves to the sibling that takes its place (the previous
// sibling when it was the last child), descending through each nested
// Container's FocusedIdx down to a Tile.
func (t *Tree) Remove(id WindowID) error {
	if t.Root == nil {
		return ErrNotFound
	}
	_, path, ok := findTileByID(t.Root, id, nil)
	if !ok {
		return ErrNotFound
	}

	currentFocusedID := t.focusedTile().ID
	removingFocused := currentFocusedID == id

	if len(path) == 0 {
		t.Root = nil
		t.FocusPath = nil
		t.FocusDepth = 0
		t.Dirty = true
		t.clearFullscreenIfRemoved(id)
		return nil
	}

	parentPath := path[:len(path)-1]
	idx := path[len(path)-1]
	parent := t.nodeAt(parentPath).Container
	parent.removeChild(idx)

	targetID := currentFocusedID
	if removingFocused {
		ci := parent.FocusedIdx
		if ci < 0 || ci >= len(parent.Children) {
			ci = 0
		}
		targetID = descendFirstTileID(&parent.Children[ci])
	}

	t.simplify()
	t.rebuildFocusPath(targetID)
	t.Dirty = true
	t.clearFullscreenIfRemoved(id)
	return nil
}

// Split records an intent to split the focused Tile under mode. The
// Container wrapper is not created until the next Insert consumes it,
// so the tree never passes through a transient single-child Container
// (§4.1).
func (t *Tree) Split(mode Mode) error {
	if t.Root == nil {
		return ErrEmptyTree
	}
	m := mode
	t.pendingSplit = &m
	return nil
}

// SetLayoutMode changes the layout mode of the innermost Container
// enclosing the current focus.
func (t *Tree) SetLayoutMode(mode Mode) error {
	if t.Root == nil {
		return ErrEmptyTree
	}
	if len(t.FocusPath) == 0 {
		return ErrNoContainer
	}
	parentPath := t.FocusPath[:len(t.FocusPath)-1]
	parent := t.nodeAt(parentPath).Container
	parent.Layout = mode
	t.simplify()
	t.rebuildFocusPath(focusedTileIDAt(parent))
	t.Dirty = true
	return nil
}

// FocusParent raises the operating level of FocusDirection/MoveDirection
// by one Container, without changing which Tile is focused.
func (t *Tree) FocusParent() error {
	if t.FocusDepth >= len(t.FocusPath) {
		return ErrAlreadyAtRoot
	}
	t.FocusDepth++
	return nil
}

// FocusChild lowers the operating level back toward the focused Tile
// itself. It is a no-op once already at depth 0.
func (t *Tree) FocusChild() error {
	if t.FocusDepth == 0 {
		return nil
	}
	t.FocusDepth--
	return nil
}

// FocusDirection moves focus to the nearest Tile reachable by walking up
// the focus path to the first axis-compatible ancestor with a sibling in
// direction d, then descending that sibling via its own focus-inactive
// state.
func (t *Tree) FocusDirection(d Direction) error {
	if t.Root == nil {
		return ErrEmptyTree
	}
	containers := t.containersOnFocusPath()
	start := len(t.FocusPath) - 1 - t.FocusDepth
	if start < 0 {
		return ErrNoTargetInDirection
	}
	for i := start; i >= 0; i-- {
		c := containers[i]
		if !axisCompatible(c.Layout, d) {
			continue
		}
		curIdx := t.FocusPath[i]
		newIdx := curIdx + d.step()
		if newIdx < 0 || newIdx >= len(c.Children) {
			continue
		}
		targetID := descendFirstTileID(&c.Children[newIdx])
		t.rebuildFocusPath(targetID)
		return nil
	}
	return ErrNoTargetInDirection
}

// MoveDirection relocates the node currently operated on (the focused
// Tile, or the Container FocusParent has raised the level to) to the
// adjacent slot in the nearest axis-compatible ancestor. If no ancestor
// has room, it either promotes the node one level above the root (when
// Options.PromoteOnIncompatibleAncestor is set) or returns
// ErrNoTargetInDirection.
func (t *Tree) MoveDirection(d Direction) error {
	if t.Root == nil {
		return ErrEmptyTree
	}
	activeDepth := len(t.FocusPath) - t.FocusDepth
	if activeDepth <= 0 {
		return ErrNoTargetInDirection
	}
	activePath := append([]int(nil), t.FocusPath[:activeDepth]...)
	activeID := t.nodeAt(activePath).id()

	containers := t.containersOnFocusPath()
	for i := activeDepth - 1; i >= 0; i-- {
		c := containers[i]
		if !axisCompatible(c.Layout, d) {
			continue
		}
		curIdx := t.FocusPath[i]
		step := d.step()
		peer := curIdx + step
		if peer < 0 || peer >= len(c.Children) {
			continue
		}

		parentPath := activePath[:len(activePath)-1]
		idxInParent := activePath[len(activePath)-1]
		parent := t.nodeAt(parentPath).Container
		extracted := parent.removeChild(idxInParent)

		insertAt := curIdx
		if step > 0 {
			insertAt = curIdx + 1
		} else {
			insertAt = curIdx - 1
			if insertAt < 0 {
				insertAt = 0
			}
		}
		if insertAt > len(c.Children) {
			insertAt = len(c.Children)
		}
		c.insertChild(insertAt, extracted)

		t.simplify()
		t.rebuildFocusPath(activeID)
		t.Dirty = true
		return nil
	}

	if t.Options.PromoteOnIncompatibleAncestor {
		mode := SplitH
		if d == Up || d == Down {
			mode = SplitV
		}
		parentPath := activePath[:len(activePath)-1]
		idxInParent := activePath[len(activePath)-1]
		parent := t.nodeAt(parentPath).Container
		extracted := parent.removeChild(idxInParent)
		t.simplify()

		oldRoot := *t.Root
		var children []Node
		var focusIdx int
		if d.step() < 0 {
			children, focusIdx = []Node{extracted, oldRoot}, 0
		} else {
			children, focusIdx = []Node{oldRoot, extracted}, 1
		}
		nc := newContainer(mode, children...)
		nc.FocusedIdx = focusIdx
		t.Root = &Node{Container: nc}
		t.rebuildFocusPath(activeID)
		t.Dirty = true
		return nil
	}

	return ErrNoTargetInDirection
}

// SetWorkingArea updates the rectangle the tree's root must exactly
// fill. The next Arrange call re-derives every geometry from scratch.
func (t *Tree) SetWorkingArea(r Rect) {
	t.WorkingArea = r
	t.Dirty = true
}

// SetFocusedFullscreen toggles fullscreen for the currently focused Tile.
func (t *Tree) SetFocusedFullscreen(full bool) error {
	if t.Root == nil {
		return ErrEmptyTree
	}
	tile := t.focusedTile()
	if full {
		t.hasFullscreen = true
		t.fullscreenID = tile.ID
	} else if t.hasFullscreen && t.fullscreenID == tile.ID {
		t.hasFullscreen = false
	}
	t.Dirty = true
	return nil
}

// --- internal helpers ---

// nodeAt navigates from Root through path and returns a pointer to the
// node it reaches. path must be a valid path into the current tree.
func (t *Tree) nodeAt(path []int) *Node {
	n := t.Root
	for _, idx := range path {
		n = &n.Container.Children[idx]
	}
	return n
}

// wrapNodeAt replaces the node at path with a new two-child Container of
// the given mode, holding the old node and newLeaf, with newLeaf focused.
func (t *Tree) wrapNodeAt(path []int, mode Mode, newLeaf Node) error {
	old := *t.nodeAt(path)
	nc := newContainer(mode, old, newLeaf)
	nc.Fractions = []float64{1 - t.Options.DefaultSplitRatio, t.Options.DefaultSplitRatio}
	nc.FocusedIdx = 1
	replacement := Node{Container: nc}

	if len(path) == 0 {
		t.Root = &replacement
		return nil
	}
	parentPath := path[:len(path)-1]
	idx := path[len(path)-1]
	parent := t.nodeAt(parentPath).Container
	parent.Children[idx] = replacement
	return nil
}

// descendFirstTileID descends from n via each Container's own FocusedIdx
// until it reaches a Tile, and returns that Tile's identity.
func descendFirstTileID(n *Node) WindowID {
	for !n.isLeaf() {
		c := n.Container
		idx := c.FocusedIdx
		if idx < 0 || idx >= len(c.Children) {
			idx = 0
		}
		n = &c.Children[idx]
	}
	return n.Tile.ID
}

// focusedTileIDAt returns the identity of the Tile reached by descending
// from parent via its own FocusedIdx.
func focusedTileIDAt(parent *Container) WindowID {
	idx := parent.FocusedIdx
	if idx < 0 || idx >= len(parent.Children) {
		idx = 0
	}
	return descendFirstTileID(&parent.Children[idx])
}

func (t *Tree) clearFullscreenIfRemoved(id WindowID) {
	if t.hasFullscreen && t.fullscreenID == id {
		t.hasFullscreen = false
	}
}
