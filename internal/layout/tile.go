package layout

// Surface is the capability set the Arranger and the Tile adapter expose
// to an external collaborator (§4.5, §6 "Tile side-effect contract"). A
// real implementation forwards to an actual client surface; tests use a
// mock. The core treats the surface as opaque and never inspects it.
type Surface interface {
	// Configure asks the surface to assume rect at the given fullscreen
	// state. transactionID is echoed back via Tile.Ack once the surface
	// has applied it. Configure must not block.
	Configure(rect Rect, fullscreen bool, transactionID uint64)
}

// Tile is a leaf node wrapping one managed client window.
type Tile struct {
	ID WindowID

	// Rect is the last acknowledged geometry; the renderer reads this.
	Rect Rect

	// MinWidth/MinHeight/MaxWidth/MaxHeight are intrinsic constraints
	// reported by the client. Zero means unconstrained. The Arranger
	// never refuses to assign a slot smaller than MinWidth/MinHeight;
	// it is the client's responsibility to render within what it gets.
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int

	Fullscreen bool

	surface Surface

	pendingRect       Rect
	pendingFullscreen bool
	txCounter         uint64
	pendingTx         uint64
}

// NewTile creates a Tile wrapping surface under a fresh identity. A nil
// surface is allowed: such a Tile applies every size request at once.
func NewTile(surface Surface) *Tile {
	return &Tile{ID: NewWindowID(), surface: surface}
}

// SetConstraints records the client's reported min/max size hints.
func (t *Tile) SetConstraints(minW, minH, maxW, maxH int) {
	t.MinWidth, t.MinHeight, t.MaxWidth, t.MaxHeight = minW, minH, maxW, maxH
}

// RequestSize is called by the Arranger (§4.4/§4.5). It forwards to the
// underlying surface with a fresh transaction id and records the pending
// rectangle; Tile.Rect is only updated once Ack arrives for that id. A
// Tile without a surface has nothing to wait for and acks immediately.
func (t *Tile) RequestSize(rect Rect, fullscreen bool) {
	t.txCounter++
	t.pendingTx = t.txCounter
	t.pendingRect = rect
	t.pendingFullscreen = fullscreen
	if t.surface != nil {
		t.surface.Configure(rect, fullscreen, t.pendingTx)
	} else {
		t.Ack(t.pendingTx)
	}
}

// Ack applies a previously requested rectangle once the surface has
// acknowledged transactionID. Stale or unknown ids are ignored, so a
// slow or duplicate ack can never move the tile backwards in time.
func (t *Tile) Ack(transactionID uint64) {
	if transactionID == 0 || transactionID != t.pendingTx {
		return
	}
	t.Rect = t.pendingRect
	t.Fullscreen = t.pendingFullscreen
}
