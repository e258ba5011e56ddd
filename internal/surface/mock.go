package surface

import "github.com/Gaurav-Gosain/tuios/internal/layout"

// Mock is a layout.Surface that auto-acks every Configure call and
// records the last rectangle it was asked to assume, for use in tests
// and the script-driven demo where no real client process is wanted.
type Mock struct {
	tile        *layout.Tile
	Rect        layout.Rect
	Fullscreen  bool
	ConfigCalls int
}

// NewMockTile creates a Tile backed by a fresh Mock surface, wired
// together so the mock can ack back to the tile it belongs to.
func NewMockTile() (*layout.Tile, *Mock) {
	m := &Mock{}
	tile := layout.NewTile(m)
	m.tile = tile
	return tile, m
}

// Bind associates this surface with the Tile it should ack back to.
func (m *Mock) Bind(tile *layout.Tile) { m.tile = tile }

// Configure implements layout.Surface.
func (m *Mock) Configure(rect layout.Rect, fullscreen bool, transactionID uint64) {
	m.Rect = rect
	m.Fullscreen = fullscreen
	m.ConfigCalls++
	if m.tile != nil {
		m.tile.Ack(transactionID)
	}
}
