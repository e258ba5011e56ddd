package layout

import "fmt"

// Sentinel error kinds returned by the Mutation API. All are recoverable
// structured outcomes; the core never treats them as fatal and never logs
// them itself (the caller decides what, if anything, to log).
var (
	// ErrNotFound means a window identity is not present in the tree.
	ErrNotFound = fmt.Errorf("layout: window not found")
	// ErrNoTargetInDirection means directional navigation or movement
	// reached the root without finding a compatible ancestor with room.
	ErrNoTargetInDirection = fmt.Errorf("layout: no target in direction")
	// ErrAlreadyAtRoot means focus-parent was invoked while already at
	// the root of the focus path.
	ErrAlreadyAtRoot = fmt.Errorf("layout: already at root")
	// ErrInvalidPolicy means an insertion policy referenced a
	// non-existent anchor or an unrecognized policy value.
	ErrInvalidPolicy = fmt.Errorf("layout: invalid insertion policy")
	// ErrEmptyTree means the operation has no focus to act on because
	// the tree currently holds no windows.
	ErrEmptyTree = fmt.Errorf("layout: tree is empty")
	// ErrNoContainer means an operation that targets a Container (such
	// as SetLayoutMode) was invoked while focus sits on a lone Tile with
	// no enclosing Container.
	ErrNoContainer = fmt.Errorf("layout: no enclosing container")
)

// InvariantViolation is panicked when a bug leaves the tree in a state
// that should be structurally impossible: a focus path referencing a
// missing child or not ending on a Tile. It carries a snapshot so the
// panic message is actionable.
type InvariantViolation struct {
	Reason   string
	Snapshot Snapshot
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("layout: invariant violated: %s", e.Reason)
}

func invariantf(snap Snapshot, format string, args ...any) {
	panic(InvariantViolation{Reason: fmt.Sprintf(format, args...), Snapshot: snap})
}
