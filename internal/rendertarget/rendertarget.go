// Package rendertarget defines the RenderTarget abstraction the core draws
// through, instead of an imperative canvas handle shared between host and
// core: the engine never reaches into a toolkit type, it only calls these
// methods.
package rendertarget

import "github.com/sensoryink/core/internal/point"

// RenderTarget is the drawing surface the engine paints onto.
type RenderTarget interface {
	Clear(c point.Color)
	FillRect(x0, y0, x1, y1 float64, c point.Color, alpha float64)
	StrokeSegment(x0, y0, x1, y1, width float64, c point.Color, alpha float64)
	FillDisk(x, y, radius float64, c point.Color, alpha float64)
	// SetTransform installs the world->screen transform future draw calls
	// are expressed in; callers pass world coordinates to every method
	// above and SetTransform is how a RenderTarget maps them to pixels.
	SetTransform(panX, panY, zoom float64)
}
