package layout

// Tree is one monitor's tiling container tree: a single Root node (nil
// when empty), the working area it must exactly fill, and the current
// focus path from Root down to the focused Tile.
type Tree struct {
	Root        *Node
	WorkingArea Rect
	Options     *Options

	// FocusPath is the sequence of child indices from Root to the
	// focused Tile. Empty when Root is nil or Root is itself the lone
	// focused Tile.
	FocusPath []int

	// FocusDepth is how many trailing steps of FocusPath FocusParent has
	// walked past. 0 means direction/move operations act on the focused
	// Tile itself; FocusParent increments it (operate one container
	// level up) and FocusChild decrements it back toward 0.
	FocusDepth int

	// Dirty is set by any mutation and cleared by the caller once it has
	// re-arranged and re-rendered (§5's single per-Tree flag).
	Dirty bool

	// pendingSplit records a Split() call whose Container wrapper has
	// not yet been materialized, deferring creation until the next
	// Insert consumes it (§4.1's sanctioned alternative to ever letting
	// a single-child Container exist).
	pendingSplit *Mode

	// fullscreenID is the WindowID of the Tile currently in fullscreen,
	// or the nil UUID when none is.
	fullscreenID WindowID
	hasFullscreen bool
}

// NewTree creates an empty tree over the given working area.
func NewTree(workingArea Rect, opts *Options) *Tree {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Tree{WorkingArea: workingArea, Options: opts}
}

// IsEmpty reports whether the tree holds no windows.
func (t *Tree) IsEmpty() bool { return t.Root == nil }

// snapshotForPanic builds a Snapshot for embedding in an InvariantViolation.
func (t *Tree) snapshotForPanic() Snapshot { return t.Inspect() }

// WindowCount returns the number of Tiles currently in the tree.
func (t *Tree) WindowCount() int {
	if t.Root == nil {
		return 0
	}
	return countTiles(t.Root)
}

func countTiles(n *Node) int {
	if n.Tile != nil {
		return 1
	}
	total := 0
	for i := range n.Container.Children {
		total += countTiles(&n.Container.Children[i])
	}
	return total
}

// containersOnFocusPath returns, for each prefix of FocusPath that lands
// on a Container, a pointer to that Container, innermost last.
func (t *Tree) containersOnFocusPath() []*Container {
	if t.Root == nil || t.Root.isLeaf() {
		return nil
	}
	var out []*Container
	n := t.Root
	for _, idx := range t.FocusPath {
		if n.isLeaf() {
			break
		}
		out = append(out, n.Container)
		if idx < 0 || idx >= len(n.Container.Children) {
			break
		}
		n = &n.Container.Children[idx]
	}
	return out
}

// focusedTile returns the Tile at the end of FocusPath, or nil if the
// tree is empty.
func (t *Tree) focusedTile() *Tile {
	if t.Root == nil {
		return nil
	}
	n := t.Root
	for _, idx := range t.FocusPath {
		if n.isLeaf() {
			return n.Tile
		}
		if idx < 0 || idx >= len(n.Container.Children) {
			invariantf(t.snapshotForPanic(), "focus path index %d out of range in container %v", idx, n.Container.ID)
		}
		n = &n.Container.Children[idx]
	}
	if n.Tile == nil {
		invariantf(t.snapshotForPanic(), "focus path does not terminate on a tile")
	}
	return n.Tile
}

// findTileByID locates the Tile with the given identity and the index
// path from Root to it. Returns ok=false if absent.
func findTileByID(n *Node, id WindowID, path []int) (*Tile, []int, bool) {
	if n == nil {
		return nil, nil, false
	}
	if n.Tile != nil {
		if n.Tile.ID == id {
			return n.Tile, path, true
		}
		return nil, nil, false
	}
	for i := range n.Container.Children {
		if tile, p, ok := findTileByID(&n.Container.Children[i], id, append(path, i)); ok {
			return tile, p, true
		}
	}
	return nil, nil, false
}

// rebuildFocusPath sets FocusPath and every ancestor Container's
// FocusedIdx to match the path to targetID, and is the single place that
// re-establishes invariant 5 of §3 after a structural mutation.
func (t *Tree) rebuildFocusPath(targetID WindowID) {
	t.FocusDepth = 0
	if t.Root == nil {
		t.FocusPath = nil
		return
	}
	_, path, ok := findTileByID(t.Root, targetID, nil)
	if !ok {
		t.FocusPath = t.firstFocusPath()
		t.syncFocusedIdx()
		return
	}
	t.FocusPath = path
	t.syncFocusedIdx()
}

// syncFocusedIdx walks FocusPath and sets each visited Container's
// FocusedIdx to the next step, per invariant 5 of §3.
func (t *Tree) syncFocusedIdx() {
	if t.Root == nil {
		return
	}
	n := t.Root
	for _, idx := range t.FocusPath {
		if n.isLeaf() {
			return
		}
		n.Container.FocusedIdx = idx
		if idx < 0 || idx >= len(n.Container.Children) {
			return
		}
		n = &n.Container.Children[idx]
	}
}

// firstFocusPath descends via each Container's own FocusedIdx ("focus
// inactive" descent) from Root and returns the resulting path.
func (t *Tree) firstFocusPath() []int {
	if t.Root == nil {
		return nil
	}
	var path []int
	n := t.Root
	for !n.isLeaf() {
		c := n.Container
		idx := c.FocusedIdx
		if idx < 0 || idx >= len(c.Children) {
			idx = 0
		}
		path = append(path, idx)
		n = &c.Children[idx]
	}
	return path
}
