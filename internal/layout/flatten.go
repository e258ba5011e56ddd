package layout

// simplify restores the flattening invariants after a structural
// mutation: no Container persists with zero or one child, and no
// Container persists as a child of a same-layout Container (§4.3). It
// does not attempt to preserve FocusedIdx semantics beyond keeping them
// in range; callers re-derive focus by identity afterward via
// rebuildFocusPath.
func (t *Tree) simplify() {
	if t.Root == nil {
		return
	}
	result := simplifyNode(*t.Root)
	if result.Tile == nil && result.Container == nil {
		t.Root = nil
		return
	}
	t.Root = &result
}

// simplifyNode recursively simplifies n bottom-up and returns its
// replacement. A Tile is returned unchanged. A Container first has each
// child simplified, then same-layout Container children are merged in
// (their grandchildren spliced in with proportionally scaled fractions),
// then the result collapses if it ends up with zero or one child.
func simplifyNode(n Node) Node {
	if n.Tile != nil {
		return n
	}
	c := n.Container
	for i := range c.Children {
		c.Children[i] = simplifyNode(c.Children[i])
	}

	merged := make([]Node, 0, len(c.Children))
	fracs := make([]float64, 0, len(c.Children))
	for i, child := range c.Children {
		if child.Container != nil && child.Container.Layout == c.Layout {
			parentFrac := c.Fractions[i]
			gc := child.Container
			for j, grandchild := range gc.Children {
				merged = append(merged, grandchild)
				fracs = append(fracs, parentFrac*gc.Fractions[j])
			}
			continue
		}
		merged = append(merged, child)
		fracs = append(fracs, c.Fractions[i])
	}
	c.Children = merged
	c.Fractions = fracs
	normalizeFractions(c.Fractions)

	switch len(c.Children) {
	case 0:
		return Node{}
	case 1:
		return c.Children[0]
	default:
		if c.FocusedIdx < 0 || c.FocusedIdx >= len(c.Children) {
			c.FocusedIdx = 0
		}
		return Node{Container: c}
	}
}

// normalizeFractions rescales f in place so it sums to exactly 1,
// absorbing float drift into the last slot, matching the exact-sum
// discipline the Arranger depends on (§3 invariant 4, §8 tolerance 1e-9).
func normalizeFractions(f []float64) {
	if len(f) == 0 {
		return
	}
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	if sum <= 0 {
		copy(f, equalFractions(len(f)))
		return
	}
	acc := 0.0
	for i := 0; i < len(f)-1; i++ {
		f[i] /= sum
		acc += f[i]
	}
	f[len(f)-1] = 1.0 - acc
}
