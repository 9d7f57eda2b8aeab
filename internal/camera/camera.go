// Package camera implements the world<->screen transform:
// screen = (world + pan) * zoom.
package camera

import "github.com/sensoryink/core/internal/point"

const (
	MinZoom = 0.2
	MaxZoom = 5.0
)

// Camera holds pan (world units) and zoom.
type Camera struct {
	PanX, PanY float64
	Zoom       float64
}

// New returns a camera at the identity transform.
func New() *Camera {
	return &Camera{Zoom: 1.0}
}

// WorldToScreen converts a world point to screen space.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx + c.PanX) * c.Zoom, (wy + c.PanY) * c.Zoom
}

// ScreenToWorld converts a screen point to world space.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx/c.Zoom - c.PanX, sy/c.Zoom - c.PanY
}

// Pan translates the camera by a screen-space delta.
func (c *Camera) Pan(dxScreen, dyScreen float64) {
	c.PanX += dxScreen / c.Zoom
	c.PanY += dyScreen / c.Zoom
}

// ZoomAt multiplies zoom by factor, clamped to [MinZoom, MaxZoom], keeping
// the world point under screenPivot fixed across the operation.
func (c *Camera) ZoomAt(factor, pivotX, pivotY float64) {
	worldX, worldY := c.ScreenToWorld(pivotX, pivotY)

	newZoom := point.Clamp(c.Zoom*factor, MinZoom, MaxZoom)
	c.Zoom = newZoom

	// Choose pan so worldX,worldY maps back to pivotX,pivotY:
	// pivot = (world + pan) * zoom  =>  pan = pivot/zoom - world
	c.PanX = pivotX/c.Zoom - worldX
	c.PanY = pivotY/c.Zoom - worldY
}

// VisibleWorldRect returns the world-space rectangle visible given a screen
// viewport size, used by the grid renderer to cull off-screen geometry.
func (c *Camera) VisibleWorldRect(screenW, screenH float64) point.BBox {
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(screenW, screenH)
	return point.BBox{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}
