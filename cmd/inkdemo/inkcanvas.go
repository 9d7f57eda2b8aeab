package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/sensoryink/core/internal/engine"
	"github.com/sensoryink/core/internal/rendertarget/fynetarget"
)

// inkCanvas is the drawing surface widget: a fynetarget.Target driven by
// an *engine.Engine, taking mouse input directly (desktop.Mouseable +
// fyne.Draggable) the way a Fyne UI polls SDL keyboard state every frame
// rather than going through Fyne's own key-event callbacks.
type inkCanvas struct {
	widget.BaseWidget

	target   *fynetarget.Target
	eng      *engine.Engine
	drawing  bool
	resizing bool
}

func newInkCanvas(eng *engine.Engine, w, h int) *inkCanvas {
	c := &inkCanvas{target: fynetarget.New(w, h), eng: eng}
	c.ExtendBaseWidget(c)
	return c
}

func (c *inkCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.target.Raster)
}

func (c *inkCanvas) nowMS() float64 {
	return float64(time.Now().UnixMilli())
}

func (c *inkCanvas) MouseDown(ev *desktop.MouseEvent) {
	wx, wy := c.eng.Camera.ScreenToWorld(float64(ev.Position.X), float64(ev.Position.Y))
	if handleIdx, ok := c.eng.HitTestHandle(wx, wy); ok {
		c.resizing = c.eng.StartResizeHandle(handleIdx, wx, wy)
		return
	}
	c.drawing = true
	c.eng.StartStroke(wx, wy, 0.5, 0, 0, c.nowMS())
}

func (c *inkCanvas) MouseUp(ev *desktop.MouseEvent) {
	if c.resizing {
		c.resizing = false
		c.eng.EndResizeHandle()
		return
	}
	if !c.drawing {
		return
	}
	c.drawing = false
	c.eng.EndStroke()
}

func (c *inkCanvas) Dragged(ev *fyne.DragEvent) {
	wx, wy := c.eng.Camera.ScreenToWorld(float64(ev.Position.X), float64(ev.Position.Y))
	if c.resizing {
		c.eng.UpdateResizeHandle(wx, wy)
		return
	}
	if !c.drawing {
		return
	}
	c.eng.AddPoint(wx, wy, 0.5, 0, 0, c.nowMS())
}

func (c *inkCanvas) DragEnd() {}

// redraw redraws the engine's current frame onto the backing image and
// asks Fyne to repaint it.
func (c *inkCanvas) redraw() {
	c.eng.Render(c.target)
	c.target.Raster.Refresh()
}

var (
	_ desktop.Mouseable = (*inkCanvas)(nil)
	_ fyne.Draggable    = (*inkCanvas)(nil)
)
