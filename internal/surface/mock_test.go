package surface_test

import (
	"testing"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
	"github.com/Gaurav-Gosain/tuios/internal/surface"
)

// =============================================================================
// Mock Surface Tests
// =============================================================================

func TestMockSurfaceAutoAcksConfigure(t *testing.T) {
	tile, mock := surface.NewMockTile()
	rect := layout.Rect{X: 0, Y: 0, W: 40, H: 12}

	tile.RequestSize(rect, false)

	if mock.ConfigCalls != 1 {
		t.Fatalf("expected 1 Configure call, got %d", mock.ConfigCalls)
	}
	if tile.Rect != rect {
		t.Fatalf("expected tile rect %+v, got %+v", rect, tile.Rect)
	}
}

func TestMockSurfaceTracksFullscreen(t *testing.T) {
	tile, mock := surface.NewMockTile()
	tile.RequestSize(layout.Rect{W: 80, H: 24}, true)

	if !mock.Fullscreen {
		t.Fatal("expected mock to record fullscreen=true")
	}
	if !tile.Fullscreen {
		t.Fatal("expected tile to record fullscreen=true after ack")
	}
}
