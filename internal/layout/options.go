package layout

// TabIndicatorPlacement selects where Tabbed/Stacked containers reserve
// their header strip relative to the content rect.
type TabIndicatorPlacement int

const (
	// TabIndicatorOutside reserves the header strip outside the content
	// area entirely (the default: content never shrinks to make room).
	TabIndicatorOutside TabIndicatorPlacement = iota
	// TabIndicatorWithinColumn reserves the header strip by shrinking
	// the content rect in place, so the container's own Rect is
	// unaffected by the choice.
	TabIndicatorWithinColumn
)

func (p TabIndicatorPlacement) String() string {
	switch p {
	case TabIndicatorOutside:
		return "outside"
	case TabIndicatorWithinColumn:
		return "within_column"
	default:
		return "outside"
	}
}

// Options are the Tree's tunable behaviors (§6, §9). Defaults match the
// simplest behavior consistent with the invariants in spec.md §8.
type Options struct {
	// Gap is the pixel gap inserted between adjacent siblings of a split
	// container, and around the outer edge of the working area.
	Gap int

	// TabBarHeight is the header strip thickness, in rows, reserved for
	// a Tabbed container's single bar.
	TabBarHeight int

	// TitleStripHeight is the per-child title strip thickness, in rows,
	// reserved for a Stacked container (one strip per child, stacked
	// above the shared content rect — a distinct quantity from
	// TabBarHeight's single bar, per §4.4).
	TitleStripHeight int

	TabIndicatorPlacement TabIndicatorPlacement

	// DefaultSplitRatio is the fraction (0,1) the new Tile receives
	// whenever an Insert wraps an existing node into a fresh two-child
	// Container (a pending Split, InsertWrapFocused, InsertAtRoot, or any
	// insert while the root is a lone Tile); the old node receives the
	// remainder.
	DefaultSplitRatio float64

	// PromoteOnIncompatibleAncestor controls MoveDirection's behavior
	// when walking up the focus path finds no axis-compatible ancestor
	// with room: false (default) stops and returns ErrNoTargetInDirection;
	// true instead promotes the focused subtree by wrapping it one level
	// higher under a new container on the requested axis.
	PromoteOnIncompatibleAncestor bool
}

// DefaultOptions returns the zero-gap, outside-indicator, even-split,
// non-promoting default configuration.
func DefaultOptions() *Options {
	return &Options{
		Gap:                           0,
		TabBarHeight:                  1,
		TitleStripHeight:              1,
		TabIndicatorPlacement:         TabIndicatorOutside,
		DefaultSplitRatio:             0.5,
		PromoteOnIncompatibleAncestor: false,
	}
}

// Validate clamps out-of-range fields to sane minimums in place.
func (o *Options) Validate() {
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.TabBarHeight < 0 {
		o.TabBarHeight = 0
	}
	if o.TitleStripHeight < 0 {
		o.TitleStripHeight = 0
	}
	if o.DefaultSplitRatio <= 0 || o.DefaultSplitRatio >= 1 {
		o.DefaultSplitRatio = 0.5
	}
}
