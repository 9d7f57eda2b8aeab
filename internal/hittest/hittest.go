// Package hittest implements point/bbox/lasso hit-testing against
// strokes in world space.
package hittest

import (
	"math"

	"github.com/sensoryink/core/internal/point"
)

// HandleCount is the number of resize handles (corners + edge midpoints).
const HandleCount = 8

// Handle is one of the eight resize handles derived from a selection's
// world bounding box.
type Handle struct {
	X, Y float64
	// Opposite gives the index of the handle diagonally/axially opposite
	// this one, which becomes the scale pivot when this handle is dragged.
	Opposite int
}

// Handles returns the eight handles (NW, N, NE, E, SE, S, SW, W order) for
// a selection's world bbox.
func Handles(b point.BBox) [HandleCount]Handle {
	midX, midY := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	pts := [HandleCount][2]float64{
		{b.MinX, b.MinY}, {midX, b.MinY}, {b.MaxX, b.MinY},
		{b.MaxX, midY},
		{b.MaxX, b.MaxY}, {midX, b.MaxY}, {b.MinX, b.MaxY},
		{b.MinX, midY},
	}
	var out [HandleCount]Handle
	for i, p := range pts {
		out[i] = Handle{X: p[0], Y: p[1], Opposite: (i + 4) % HandleCount}
	}
	return out
}

// StrokeHalfWidth returns half of a stroke's base width, the tolerance
// baseline hit-testing inflates by a screen-space margin.
func StrokeHalfWidth(s point.Stroke) float64 {
	return s.Config.BaseStrokeWidth / 2
}

// HitTestPoint iterates strokes back-to-front (reverse render order, so the
// topmost stroke wins) and returns the index of the first stroke whose
// bbox (inflated by tolerance) and polyline segments come within
// tolerance of (x, y); ok is false if nothing was hit.
func HitTestPoint(strokes []point.Stroke, x, y, toleranceMargin float64) (idx int, ok bool) {
	for i := len(strokes) - 1; i >= 0; i-- {
		s := strokes[i]
		tol := StrokeHalfWidth(s) + toleranceMargin
		bbox := point.BoundingBox(s.Points).Inflate(tol)
		if !bbox.ContainsPoint(x, y) {
			continue
		}
		if strokeHit(s.Points, x, y, tol) {
			return i, true
		}
	}
	return 0, false
}

func strokeHit(pts []point.Point, x, y, tol float64) bool {
	if len(pts) == 1 {
		return math.Hypot(pts[0].X-x, pts[0].Y-y) <= tol
	}
	for i := 0; i < len(pts)-1; i++ {
		if distToSegment(x, y, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y) <= tol {
			return true
		}
	}
	return false
}

func distToSegment(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / lenSq
	t = point.Clamp(t, 0, 1)
	cx, cy := x0+t*dx, y0+t*dy
	return math.Hypot(px-cx, py-cy)
}

// RectSelect returns indices of every stroke whose world bbox overlaps
// rect (bbox-overlap semantics, not containment).
func RectSelect(strokes []point.Stroke, rect point.BBox) []int {
	var out []int
	for i, s := range strokes {
		if point.BoundingBox(s.Points).Overlaps(rect) {
			out = append(out, i)
		}
	}
	return out
}

// LassoSelect returns indices of every stroke whose bbox center lies
// strictly inside the lasso polygon (point-in-polygon via ray casting;
// boundary counts as outside).
func LassoSelect(strokes []point.Stroke, polygon []point.Point) []int {
	var out []int
	for i, s := range strokes {
		cx, cy := point.BoundingBox(s.Points).Center()
		if pointInPolygon(cx, cy, polygon) {
			out = append(out, i)
		}
	}
	return out
}

// pointInPolygon implements ray casting, treating a point that lies exactly
// on an edge as outside.
func pointInPolygon(x, y float64, poly []point.Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y

		if (x-xi)*(yj-yi) == (y-yi)*(xj-xi) &&
			x >= math.Min(xi, xj) && x <= math.Max(xi, xj) &&
			y >= math.Min(yi, yj) && y <= math.Max(yi, yj) {
			return false
		}

		intersects := (yi > y) != (yj > y)
		if intersects {
			xCross := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
