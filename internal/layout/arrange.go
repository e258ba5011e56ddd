package layout

// Arrange recomputes every node's geometry from t.WorkingArea down,
// requests it on each Tile's surface, and caches it on each Container.
// A focused fullscreen Tile overrides the result with the full working
// area as a final pass (§4.4).
func Arrange(t *Tree) {
	if t.Root == nil {
		return
	}
	root := insetRect(t.WorkingArea, t.Options.Gap)
	arrangeNode(t.Root, root, t.Options)

	if t.hasFullscreen {
		if tile, _, ok := findTileByID(t.Root, t.fullscreenID, nil); ok {
			tile.RequestSize(t.WorkingArea, true)
		}
	}
}

func insetRect(r Rect, gap int) Rect {
	if gap <= 0 {
		return r
	}
	w := r.W - 2*gap
	h := r.H - 2*gap
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + gap, Y: r.Y + gap, W: w, H: h}
}

func arrangeNode(n *Node, rect Rect, opts *Options) {
	if n.Tile != nil {
		n.Tile.RequestSize(rect, false)
		return
	}
	c := n.Container
	c.Rect = rect
	switch {
	case c.Layout.isSplit():
		arrangeSplit(c, rect, opts)
	case c.Layout == Tabbed:
		arrangeOverlay(c, rect, opts, opts.TabBarHeight)
	case c.Layout == Stacked:
		arrangeOverlay(c, rect, opts, opts.TitleStripHeight*len(c.Children))
	}
}

// arrangeSplit lays out children along the container's split axis.
// Every child but the last gets floor(fraction*distributable); the last
// takes whatever remains, guaranteeing the sum across children plus
// inter-child gaps equals rect's extent on that axis exactly (§4.4).
func arrangeSplit(c *Container, rect Rect, opts *Options) {
	n := len(c.Children)
	if n == 0 {
		return
	}
	horizontal := c.Layout == SplitH

	total := rect.W
	if !horizontal {
		total = rect.H
	}
	gap := opts.Gap
	distributable := total - gap*(n-1)
	if distributable < 0 {
		distributable = 0
	}

	pos := 0
	consumed := 0
	for i := range c.Children {
		last := i == n-1
		var size int
		if last {
			size = distributable - consumed
		} else {
			size = int(float64(distributable) * c.Fractions[i])
		}
		if size < 0 {
			size = 0
		}

		var childRect Rect
		if horizontal {
			childRect = Rect{X: rect.X + pos, Y: rect.Y, W: size, H: rect.H}
		} else {
			childRect = Rect{X: rect.X, Y: rect.Y + pos, W: rect.W, H: size}
		}
		arrangeNode(&c.Children[i], childRect, opts)

		consumed += size
		pos += size
		if !last {
			pos += gap
		}
	}
}

// arrangeOverlay lays out Tabbed/Stacked children: every child receives
// the identical content rect (only the focused one is actually visible),
// behind a header strip header rows tall — Tabbed's single TabBarHeight
// bar, or Stacked's TitleStripHeight×len(children) stack of per-child
// strips — reserved according to Options.TabIndicatorPlacement (§4.4,
// §9's tab-indicator decision).
func arrangeOverlay(c *Container, rect Rect, opts *Options, header int) {
	content := rect
	if opts.TabIndicatorPlacement == TabIndicatorWithinColumn {
		content = Rect{
			X: rect.X,
			Y: rect.Y + header,
			W: rect.W,
			H: maxInt(rect.H-header, 0),
		}
	}
	for i := range c.Children {
		arrangeNode(&c.Children[i], content, opts)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
