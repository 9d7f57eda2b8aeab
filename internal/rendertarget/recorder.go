package rendertarget

import "github.com/sensoryink/core/internal/point"

// Call records a single RenderTarget invocation, for tests asserting what
// the engine drew without a real surface.
type Call struct {
	Op                     string
	X0, Y0, X1, Y1, Extra  float64
	Color                  point.Color
	Alpha                  float64
}

// Recorder is a RenderTarget that records calls instead of drawing,
// standing in for the Noop capability variant in tests.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) SetTransform(panX, panY, zoom float64) {
	r.Calls = append(r.Calls, Call{Op: "SetTransform", X0: panX, Y0: panY, Extra: zoom})
}

func (r *Recorder) Clear(c point.Color) {
	r.Calls = append(r.Calls, Call{Op: "Clear", Color: c})
}

func (r *Recorder) FillRect(x0, y0, x1, y1 float64, c point.Color, alpha float64) {
	r.Calls = append(r.Calls, Call{Op: "FillRect", X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c, Alpha: alpha})
}

func (r *Recorder) StrokeSegment(x0, y0, x1, y1, width float64, c point.Color, alpha float64) {
	r.Calls = append(r.Calls, Call{Op: "StrokeSegment", X0: x0, Y0: y0, X1: x1, Y1: y1, Extra: width, Color: c, Alpha: alpha})
}

func (r *Recorder) FillDisk(x, y, radius float64, c point.Color, alpha float64) {
	r.Calls = append(r.Calls, Call{Op: "FillDisk", X0: x, Y0: y, Extra: radius, Color: c, Alpha: alpha})
}

// Noop is a RenderTarget that discards every call: the SurfaceUnavailable
// degrade path, where drawing operations are no-ops.
type Noop struct{}

func (Noop) SetTransform(float64, float64, float64)                                 {}
func (Noop) Clear(point.Color)                                                      {}
func (Noop) FillRect(float64, float64, float64, float64, point.Color, float64)      {}
func (Noop) StrokeSegment(float64, float64, float64, float64, float64, point.Color, float64) {}
func (Noop) FillDisk(float64, float64, float64, point.Color, float64)               {}
