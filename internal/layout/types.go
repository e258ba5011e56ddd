// Package layout implements the per-monitor tiling container tree: the
// hierarchical data structure that decides where every tiled window is
// drawn, how focus navigates, and how splits, tabs, and stacks are formed.
//
// The package is deliberately free of any Wayland, rendering, or I/O
// concerns. It is driven by a caller (a workspace, a test, or a script)
// and it drives a Surface boundary interface back; everything else is
// plain, synchronous tree surgery.
package layout

import (
	"fmt"

	"github.com/google/uuid"
)

// WindowID is the stable identity of a managed client window. External
// collaborators hold Tiles by WindowID, never by tree position.
type WindowID = uuid.UUID

// NewWindowID generates a fresh window identity.
func NewWindowID() WindowID {
	return uuid.New()
}

// Rect is an axis-aligned rectangle in workspace-local coordinates.
type Rect struct {
	X, Y, W, H int
}

// Right returns the X coordinate immediately past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the Y coordinate immediately past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Mode is a container's layout mode.
type Mode int

const (
	// SplitH arranges children left to right.
	SplitH Mode = iota
	// SplitV arranges children top to bottom.
	SplitV
	// Tabbed overlays children with a shared tab bar; only the focused
	// child is visible.
	Tabbed
	// Stacked overlays children with a vertical stack of title strips;
	// only the focused child is visible.
	Stacked
)

func (m Mode) String() string {
	switch m {
	case SplitH:
		return "SplitH"
	case SplitV:
		return "SplitV"
	case Tabbed:
		return "Tabbed"
	case Stacked:
		return "Stacked"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// isSplit reports whether m is one of the two split (non-overlaid) modes.
func (m Mode) isSplit() bool { return m == SplitH || m == SplitV }

// Direction is a navigation or movement direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// step returns the sibling-index delta for a directional operation.
func (d Direction) step() int {
	if d == Left || d == Up {
		return -1
	}
	return 1
}

// axisCompatible reports whether a container of layout m responds to
// direction d: SplitH/Tabbed carry Left/Right, SplitV/Stacked carry Up/Down.
func axisCompatible(m Mode, d Direction) bool {
	switch {
	case m == SplitH || m == Tabbed:
		return d == Left || d == Right
	case m == SplitV || m == Stacked:
		return d == Up || d == Down
	default:
		return false
	}
}
