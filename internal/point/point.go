// Package point defines the engine's core data model: Point, RenderConfig,
// and Stroke, plus the bounding-box math shared by hit-testing,
// gesture recognition, and the document's selection rectangles.
package point

import "math"

// Point is a single conditioned sample in world coordinates.
type Point struct {
	X, Y      float64
	Pressure  float64 // [0,1]
	TimestampMS float64 // monotonic milliseconds
	TiltX, TiltY float64 // degrees, each in [-90,90]
}

// RenderConfig is frozen onto a Stroke at creation time.
type RenderConfig struct {
	Color             Color
	Opacity           float64 // [0,1]
	BaseStrokeWidth   float64 // world pixels, > 0
	MinWidth          float64
	MaxWidth          float64 // MinWidth <= MaxWidth
	Smoothness        float64 // [0,1] Catmull-Rom tension
	Streamline        float64 // [0,1] smoothing intensity
	PressureInfluence float64 // >= 0
	VelocityInfluence float64 // [0,1]
}

// Color is sRGB with an 8-bit channel each, alpha handled via Opacity.
type Color struct {
	R, G, B uint8
}

// Stroke is an ordered, non-empty point sequence plus a frozen config.
type Stroke struct {
	Points []Point
	Config RenderConfig
}

// BBox is an axis-aligned bounding box in whatever coordinate space the
// caller is working in (world or screen, callers keep track).
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the bbox width.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the bbox height.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Diagonal returns the bbox's diagonal length.
func (b BBox) Diagonal() float64 {
	return math.Hypot(b.Width(), b.Height())
}

// Center returns the bbox's center point.
func (b BBox) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Inflate grows the bbox by d on every side.
func (b BBox) Inflate(d float64) BBox {
	return BBox{b.MinX - d, b.MinY - d, b.MaxX + d, b.MaxY + d}
}

// Overlaps reports whether two bboxes intersect (touching counts as overlap).
func (b BBox) Overlaps(o BBox) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// ContainsPoint reports whether (x,y) lies within the bbox, inclusive.
func (b BBox) ContainsPoint(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// BoundingBox computes the world bbox of a stroke's points.
func BoundingBox(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	b := BBox{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// Translate returns pts shifted by (dx, dy); pressure/tilt/timestamp are
// carried through unchanged.
func Translate(pts []Point, dx, dy float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p
		out[i].X += dx
		out[i].Y += dy
	}
	return out
}

// ScaleAbout scales pts about a pivot by independent x/y factors.
func ScaleAbout(pts []Point, pivotX, pivotY, sx, sy float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p
		out[i].X = pivotX + (p.X-pivotX)*sx
		out[i].Y = pivotY + (p.Y-pivotY)*sy
	}
	return out
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
