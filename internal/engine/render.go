package engine

import (
	"github.com/sensoryink/core/internal/geometry"
	"github.com/sensoryink/core/internal/grid"
	"github.com/sensoryink/core/internal/hittest"
	"github.com/sensoryink/core/internal/point"
	"github.com/sensoryink/core/internal/rendertarget"
)

var (
	paperColor    = point.Color{R: 0xf9, G: 0xf9, B: 0xf9}
	selectionTint = point.Color{R: 64, G: 128, B: 255}
	handleColor   = point.Color{R: 255, G: 255, B: 255}
)

// Render draws the current frame to rt: paper, grid, strokes (selected
// ones shifted by any live move offset), then selection overlays.
func (e *Engine) Render(rt rendertarget.RenderTarget) {
	rt.SetTransform(e.Camera.PanX, e.Camera.PanY, e.Camera.Zoom)
	rt.Clear(paperColor)

	visible := e.Camera.VisibleWorldRect(e.viewportW, e.viewportH)
	grid.Render(rt, e.GridType, visible, e.Camera.Zoom)

	dx, dy, moving := e.CurrentMoveOffset()
	selected := e.Document.Selection

	for i, s := range e.Document.Strokes {
		if moving {
			if _, isSelected := selected[i]; isSelected {
				s.Points = point.Translate(s.Points, dx, dy)
			}
		}
		drawStroke(rt, s)
	}

	e.renderSelectionOverlay(rt)
}

func drawStroke(rt rendertarget.RenderTarget, s point.Stroke) {
	t := geometry.Tessellate(s)
	if t.Disk != nil {
		rt.FillDisk(t.Disk.X, t.Disk.Y, t.Disk.Radius, s.Config.Color, s.Config.Opacity)
		return
	}
	for i := 1; i < len(t.Polyline); i++ {
		a, b := t.Polyline[i-1], t.Polyline[i]
		rt.StrokeSegment(a.X, a.Y, b.X, b.Y, (a.Width+b.Width)/2, s.Config.Color, s.Config.Opacity)
	}
}

func (e *Engine) renderSelectionOverlay(rt rendertarget.RenderTarget) {
	if rect, ok := e.CurrentSelectionRect(); ok {
		rt.StrokeSegment(rect.MinX, rect.MinY, rect.MaxX, rect.MinY, 1, selectionTint, 0.8)
		rt.StrokeSegment(rect.MaxX, rect.MinY, rect.MaxX, rect.MaxY, 1, selectionTint, 0.8)
		rt.StrokeSegment(rect.MaxX, rect.MaxY, rect.MinX, rect.MaxY, 1, selectionTint, 0.8)
		rt.StrokeSegment(rect.MinX, rect.MaxY, rect.MinX, rect.MinY, 1, selectionTint, 0.8)
	}

	if lasso, ok := e.CurrentLasso(); ok && len(lasso) > 1 {
		for i := 1; i < len(lasso); i++ {
			rt.StrokeSegment(lasso[i-1].X, lasso[i-1].Y, lasso[i].X, lasso[i].Y, 1, selectionTint, 0.8)
		}
	}

	if handles, ok := e.SelectionHandles(); ok {
		for i := 0; i < hittest.HandleCount; i++ {
			h := handles[i]
			rt.FillDisk(h.X, h.Y, 4, handleColor, 1)
		}
	}
}
