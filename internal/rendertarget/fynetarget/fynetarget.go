// Package fynetarget adapts rendertarget.RenderTarget onto a Fyne
// canvas.Raster, the way an emulator frame is driven onto a canvas.Image:
// a backing *image.NRGBA is mutated by engine draws and
// canvas.Raster.Refresh() is called once per frame.
package fynetarget

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/sensoryink/core/internal/rendertarget"
)

// Target wraps an ImageTarget with a Fyne canvas.Raster that displays it.
type Target struct {
	*rendertarget.ImageTarget
	Raster *canvas.Raster
}

// New creates a Target of the given pixel size and its displayable
// canvas.Raster object (add this to a Fyne container/window content).
func New(w, h int) *Target {
	t := &Target{ImageTarget: rendertarget.NewImageTarget(w, h)}
	t.Raster = canvas.NewRaster(t.generate)
	return t
}

// generate is the func(w, h int) image.Image generator canvas.NewRaster
// polls once per frame; it always returns the same backing *image.NRGBA the
// engine just drew into.
func (t *Target) generate(w, h int) image.Image {
	return t.Img
}

// Resize reallocates the backing image to match a new widget size in
// pixels, preserving nothing (the next full redraw repaints everything).
func (t *Target) Resize(w, h int) {
	t.ImageTarget = rendertarget.NewImageTarget(w, h)
}

// MinSize reports the raster's preferred size to Fyne's layout system.
func (t *Target) MinSize() fyne.Size {
	b := t.Img.Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}
