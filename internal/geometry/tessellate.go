// Package geometry turns a committed Stroke into renderable primitives:
// Catmull-Rom interpolation through cubic Bezier control points, flattened
// into width-varying polyline segments.
//
// The "flatten a Bezier into linear sub-segments" shape follows gio's
// gpu-stroke.go, adapted here to a fixed subdivision-count rule instead
// of adaptive flatness tolerance.
package geometry

import (
	"math"

	"github.com/sensoryink/core/internal/point"
	"github.com/sensoryink/core/internal/width"
)

// Vertex is one stroked polyline vertex with its interpolated (full) width.
type Vertex struct {
	X, Y, Width float64
}

// Disk describes a single-point stroke rendered as a filled circle.
type Disk struct {
	X, Y, Radius float64
}

// Tessellated is the renderable output of a committed stroke.
type Tessellated struct {
	Polyline []Vertex // nil for single-point strokes
	Disk     *Disk    // non-nil only for single-point strokes
}

// Tessellate converts a stroke's points into renderable primitives.
func Tessellate(s point.Stroke) Tessellated {
	pts := s.Points
	cfg := s.Config

	switch {
	case len(pts) == 1:
		w := width.SingleSegmentWidth(pts, cfg) * width.DotTaperFactor
		return Tessellated{Disk: &Disk{X: pts[0].X, Y: pts[0].Y, Radius: w / 2}}

	case len(pts) <= 3:
		w := width.SingleSegmentWidth(pts, cfg)
		verts := make([]Vertex, len(pts))
		for i, p := range pts {
			verts[i] = Vertex{X: p.X, Y: p.Y, Width: w}
		}
		return Tessellated{Polyline: verts}

	default:
		return Tessellated{Polyline: tessellateCurve(pts, cfg)}
	}
}

func tessellateCurve(pts []point.Point, cfg point.RenderConfig) []Vertex {
	n := len(pts)
	widths := make([]float64, n)
	widths[0] = width.SingleSegmentWidth(pts[:1], cfg)
	for i := 1; i < n; i++ {
		widths[i] = width.AtSegment(pts[i-1], pts[i], cfg)
	}
	applyTaper(widths, n)

	verts := []Vertex{{X: pts[0].X, Y: pts[0].Y, Width: widths[0]}}

	tension := 1 - cfg.Smoothness
	if tension < 1e-6 {
		tension = 1e-6
	}

	for i := 0; i < n-1; i++ {
		p0 := pts[clampIdx(i-1, n)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[clampIdx(i+2, n)]

		cp1x := p1.X + (p2.X-p0.X)/(6*tension)
		cp1y := p1.Y + (p2.Y-p0.Y)/(6*tension)
		cp2x := p2.X - (p3.X-p1.X)/(6*tension)
		cp2y := p2.Y - (p3.Y-p1.Y)/(6*tension)

		steps := subdivisionSteps(p1.X, p1.Y, p2.X, p2.Y)
		w0, w1 := widths[i], widths[i+1]

		for k := 1; k <= steps; k++ {
			t := float64(k) / float64(steps)
			x, y := cubicBezierAt(p1.X, p1.Y, cp1x, cp1y, cp2x, cp2y, p2.X, p2.Y, t)
			verts = append(verts, Vertex{X: x, Y: y, Width: w0 + (w1-w0)*t})
		}
	}

	return verts
}

// applyTaper multiplies the first and last min(8, floor(0.15N)) segment
// widths by a quadratic ramp so stroke tips are crisp.
func applyTaper(widths []float64, n int) {
	t := width.TaperSegmentCount(n)
	if t == 0 {
		return
	}
	for k := 0; k < t; k++ {
		f := width.TaperFactor(k, t)
		widths[k] *= f
		widths[n-1-k] *= f
	}
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// subdivisionSteps implements clamp(ceil(|Δp|_L1 / 5), 2, 8).
func subdivisionSteps(x0, y0, x1, y1 float64) int {
	l1 := math.Abs(x1-x0) + math.Abs(y1-y0)
	steps := int(math.Ceil(l1 / 5))
	if steps < 2 {
		steps = 2
	}
	if steps > 8 {
		steps = 8
	}
	return steps
}

func cubicBezierAt(x0, y0, cx1, cy1, cx2, cy2, x1, y1, t float64) (float64, float64) {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt2 * mt
	b := 3 * mt2 * t
	c := 3 * mt * t2
	d := t2 * t
	return a*x0 + b*cx1 + c*cx2 + d*x1, a*y0 + b*cy1 + c*cy2 + d*y1
}
