package layout

// Snapshot is the Inspection API's read-only view of a Tree: stable
// container identities, tile rectangles, layout-mode ancestry, and the
// current focus path. It is a plain value copy, safe to hold onto after
// the Tree that produced it has mutated further.
type Snapshot struct {
	Root      *NodeSnapshot
	FocusPath []int
}

// NodeSnapshot is either a tile leaf or a container, never both.
type NodeSnapshot struct {
	Tile      *TileSnapshot
	Container *ContainerSnapshot
}

// TileSnapshot is the read-only view of a Tile.
type TileSnapshot struct {
	ID         WindowID
	Rect       Rect
	Fullscreen bool
}

// ContainerSnapshot is the read-only view of a Container.
type ContainerSnapshot struct {
	ID         WindowID
	Layout     Mode
	Rect       Rect
	FocusedIdx int
	Fractions  []float64
	Children   []*NodeSnapshot
}

// Inspect builds a Snapshot of the current tree state. It performs a
// full deep copy; callers may retain it across further mutations.
func (t *Tree) Inspect() Snapshot {
	snap := Snapshot{FocusPath: append([]int(nil), t.FocusPath...)}
	if t.Root != nil {
		snap.Root = snapshotNode(t.Root)
	}
	return snap
}

func snapshotNode(n *Node) *NodeSnapshot {
	if n == nil {
		return nil
	}
	if n.Tile != nil {
		return &NodeSnapshot{Tile: &TileSnapshot{
			ID:         n.Tile.ID,
			Rect:       n.Tile.Rect,
			Fullscreen: n.Tile.Fullscreen,
		}}
	}
	c := n.Container
	cs := &ContainerSnapshot{
		ID:         c.ID,
		Layout:     c.Layout,
		Rect:       c.Rect,
		FocusedIdx: c.FocusedIdx,
		Fractions:  append([]float64(nil), c.Fractions...),
		Children:   make([]*NodeSnapshot, len(c.Children)),
	}
	for i, child := range c.Children {
		cs.Children[i] = snapshotNode(&child)
	}
	return &NodeSnapshot{Container: cs}
}
