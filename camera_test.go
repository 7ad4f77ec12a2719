package mapcore

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraScrollToInstantCut(t *testing.T) {
	var c Camera
	c.ScrollTo(20, -10, 0, ease.Linear)

	x, y := c.PixelOffset()
	if x != 0 || y != 0 {
		t.Errorf("PixelOffset() = (%v,%v), want (0,0) for an instant cut", x, y)
	}
}

func TestCameraScrollToAnimatesTowardZero(t *testing.T) {
	var c Camera
	c.ScrollTo(16, 0, 1.0, ease.Linear)

	x, y := c.PixelOffset()
	if x != 16 || y != 0 {
		t.Fatalf("PixelOffset() immediately after ScrollTo = (%v,%v), want (16,0)", x, y)
	}

	c.Update(0.5)
	x, _ = c.PixelOffset()
	if x <= 0 || x >= 16 {
		t.Errorf("PixelOffset().x mid-tween = %v, want strictly between 0 and 16", x)
	}

	c.Update(0.5)
	x, _ = c.PixelOffset()
	if x != 0 {
		t.Errorf("PixelOffset().x after tween completes = %v, want 0", x)
	}
}

func TestCameraTileToScreenFoldsOffset(t *testing.T) {
	var c Camera
	c.offsetX, c.offsetY = 3, -2

	x, y := c.TileToScreen(2, 1)
	if x != float64(2*TileSize)+3 || y != float64(1*TileSize)-2 {
		t.Errorf("TileToScreen(2,1) = (%v,%v), want (%v,%v)", x, y, float64(2*TileSize)+3, float64(1*TileSize)-2)
	}
}
