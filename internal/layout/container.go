package layout

// Node is either a Tile leaf or a Container, never both. The zero Node
// (both fields nil) never appears in a reachable tree.
type Node struct {
	Tile      *Tile
	Container *Container
}

// isLeaf reports whether n wraps a Tile.
func (n Node) isLeaf() bool { return n.Tile != nil }

// rect returns the node's last-assigned rectangle, regardless of kind.
func (n Node) rect() Rect {
	if n.Tile != nil {
		return n.Tile.Rect
	}
	return n.Container.Rect
}

// setRect stores r as the node's current rectangle. For a Tile this is
// only a bookkeeping write that bypasses the surface; Arrange does not
// use it, and instead goes through RequestSize/Ack for Tiles.
func (n Node) setRect(r Rect) {
	if n.Tile != nil {
		n.Tile.Rect = r
		return
	}
	n.Container.Rect = r
}

func (n Node) id() WindowID {
	if n.Tile != nil {
		return n.Tile.ID
	}
	return n.Container.ID
}

// Container is an internal tree node: a sequence of children arranged
// under one layout mode, with a per-sibling size fraction and a single
// focused child index.
type Container struct {
	ID     WindowID
	Layout Mode

	Children  []Node
	Fractions []float64

	// FocusedIdx is the index into Children that holds focus, or would
	// hold it if focus descended through this container. It mirrors the
	// next step of Tree.FocusPath whenever this container lies on the
	// focus path (invariant 5 of §3).
	FocusedIdx int

	Rect Rect
}

// newContainer builds a Container over the given children, assigning
// equal fractions and the first child as focused.
func newContainer(mode Mode, children ...Node) *Container {
	c := &Container{
		ID:         NewWindowID(),
		Layout:     mode,
		Children:   children,
		Fractions:  equalFractions(len(children)),
		FocusedIdx: 0,
	}
	return c
}

// equalFractions returns n fractions summing to exactly 1 (last slot
// absorbs any remainder so the sum invariant holds under float division).
func equalFractions(n int) []float64 {
	if n <= 0 {
		return nil
	}
	f := make([]float64, n)
	share := 1.0 / float64(n)
	sum := 0.0
	for i := 0; i < n-1; i++ {
		f[i] = share
		sum += share
	}
	f[n-1] = 1.0 - sum
	return f
}

// insertChild inserts child at index idx, rescaling existing fractions by
// n/(n+1) and giving the new child 1/(n+1) (§3 invariant 4's insert rule).
func (c *Container) insertChild(idx int, child Node) {
	n := len(c.Children)
	scale := float64(n) / float64(n+1)
	for i := range c.Fractions {
		c.Fractions[i] *= scale
	}
	newFrac := 1.0 / float64(n+1)

	c.Children = append(c.Children, Node{})
	copy(c.Children[idx+1:], c.Children[idx:])
	c.Children[idx] = child

	c.Fractions = append(c.Fractions, 0)
	copy(c.Fractions[idx+1:], c.Fractions[idx:])
	c.Fractions[idx] = newFrac

	if c.FocusedIdx >= idx {
		c.FocusedIdx++
	}
}

// removeChild removes the child at idx, rescaling the remaining
// fractions by dividing by (1 - removedFraction) (§3 invariant 4's
// remove rule). Returns the removed node.
func (c *Container) removeChild(idx int) Node {
	removed := c.Children[idx]
	removedFrac := c.Fractions[idx]

	c.Children = append(c.Children[:idx], c.Children[idx+1:]...)
	c.Fractions = append(c.Fractions[:idx], c.Fractions[idx+1:]...)

	if remaining := 1.0 - removedFrac; remaining > 1e-9 {
		for i := range c.Fractions {
			c.Fractions[i] /= remaining
		}
	} else if len(c.Fractions) > 0 {
		nf := equalFractions(len(c.Fractions))
		copy(c.Fractions, nf)
	}

	switch {
	case c.FocusedIdx > idx:
		c.FocusedIdx--
	case c.FocusedIdx >= len(c.Children):
		c.FocusedIdx = len(c.Children) - 1
	}
	if c.FocusedIdx < 0 {
		c.FocusedIdx = 0
	}
	return removed
}
