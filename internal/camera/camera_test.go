package camera

import "testing"

func TestWorldToScreenRoundTrip(t *testing.T) {
	c := New()
	c.PanX, c.PanY = 5, -3
	c.Zoom = 2

	sx, sy := c.WorldToScreen(10, 10)
	wx, wy := c.ScreenToWorld(sx, sy)
	if !almostEqual(wx, 10) || !almostEqual(wy, 10) {
		t.Fatalf("round trip mismatch: got (%v, %v), want (10, 10)", wx, wy)
	}
}

func TestZoomAtKeepsPivotFixed(t *testing.T) {
	c := New()
	c.PanX, c.PanY = 1, 1

	pivotX, pivotY := 100.0, 50.0
	worldBefore := func() (float64, float64) { return c.ScreenToWorld(pivotX, pivotY) }
	wx0, wy0 := worldBefore()

	c.ZoomAt(2.0, pivotX, pivotY)

	wx1, wy1 := c.ScreenToWorld(pivotX, pivotY)
	if !almostEqual(wx0, wx1) || !almostEqual(wy0, wy1) {
		t.Fatalf("pivot world point moved: before (%v,%v) after (%v,%v)", wx0, wy0, wx1, wy1)
	}
}

func TestZoomAtClampsToRange(t *testing.T) {
	c := New()
	c.ZoomAt(1000, 0, 0)
	if c.Zoom != MaxZoom {
		t.Fatalf("got zoom %v, want clamped to MaxZoom %v", c.Zoom, MaxZoom)
	}

	c2 := New()
	c2.ZoomAt(0.0001, 0, 0)
	if c2.Zoom != MinZoom {
		t.Fatalf("got zoom %v, want clamped to MinZoom %v", c2.Zoom, MinZoom)
	}
}

func TestVisibleWorldRectGrowsWithZoomOut(t *testing.T) {
	c := New()
	c.Zoom = 1
	wide := c.VisibleWorldRect(800, 600)

	c.Zoom = 0.5
	wider := c.VisibleWorldRect(800, 600)

	if wider.Width() <= wide.Width() || wider.Height() <= wide.Height() {
		t.Fatalf("zooming out should reveal more world, got wide=%+v wider=%+v", wide, wider)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
