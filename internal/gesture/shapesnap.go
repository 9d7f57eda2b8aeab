package gesture

import (
	"math"

	"github.com/sensoryink/core/internal/point"
)

const (
	shapeSnapDwellMS        = 250.0
	shapeSnapMinPoints      = 4
	shapeSnapStillClusterPx = 4.0
	shapeSnapMovementPx     = 2.0
	closedEndpointRatio     = 0.35
	circleRegenPoints       = 65
	roundedRectCornerSteps  = 8
)

// DwellMS measures how long, at the end of pts, the pen stayed within
// shapeSnapMovementPx of the final point. A clock regression (a later
// timestamp smaller than an earlier one) is treated as dwell = 0.
func DwellMS(pts []point.Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	last := pts[len(pts)-1]
	start := len(pts) - 1
	for i := len(pts) - 2; i >= 0; i-- {
		if math.Hypot(pts[i].X-last.X, pts[i].Y-last.Y) > shapeSnapMovementPx {
			break
		}
		if pts[i].TimestampMS > last.TimestampMS {
			return 0
		}
		start = i
	}
	return last.TimestampMS - pts[start].TimestampMS
}

// Kind names a snapped shape.
type Kind string

const (
	KindNone        Kind = ""
	KindCircle      Kind = "circle"
	KindEllipse     Kind = "ellipse"
	KindRoundedRect Kind = "rounded-rect"
	KindLine        Kind = "line"
)

// SnapResult is the outcome of shape-snap classification.
type SnapResult struct {
	Kind   Kind
	Points []point.Point
}

// TrySnap attempts to classify and regenerate pts as a canonical shape. It
// requires dwellMS >= 250 and len(pts) >= 4; callers are expected to have
// already measured dwellMS via DwellMS on the raw captured stroke.
func TrySnap(pts []point.Point, dwellMS float64) (SnapResult, bool) {
	if dwellMS < shapeSnapDwellMS || len(pts) < shapeSnapMinPoints {
		return SnapResult{}, false
	}

	filtered := filterStillCluster(pts)
	if len(filtered) < shapeSnapMinPoints {
		filtered = pts
	}

	avgPressure, avgTiltX, avgTiltY := averages(pts)
	bbox := point.BoundingBox(filtered)
	diag := bbox.Diagonal()
	if diag == 0 {
		return SnapResult{}, false
	}

	first, last := filtered[0], filtered[len(filtered)-1]
	closed := math.Hypot(last.X-first.X, last.Y-first.Y) <= closedEndpointRatio*diag

	if closed {
		return snapClosed(filtered, bbox, avgPressure, avgTiltX, avgTiltY)
	}
	return snapOpen(filtered, avgPressure, avgTiltX, avgTiltY)
}

// filterStillCluster drops trailing points clustered within
// shapeSnapStillClusterPx of the final point (the dwell itself), so the
// dwell doesn't skew shape-fit scoring.
func filterStillCluster(pts []point.Point) []point.Point {
	last := pts[len(pts)-1]
	cut := len(pts)
	for i := len(pts) - 1; i >= 0; i-- {
		if math.Hypot(pts[i].X-last.X, pts[i].Y-last.Y) > shapeSnapStillClusterPx {
			break
		}
		cut = i
	}
	if cut == 0 {
		cut = len(pts)
	}
	out := append([]point.Point(nil), pts[:cut]...)
	out = append(out, last)
	return out
}

func averages(pts []point.Point) (pressure, tiltX, tiltY float64) {
	for _, p := range pts {
		pressure += p.Pressure
		tiltX += p.TiltX
		tiltY += p.TiltY
	}
	n := float64(len(pts))
	if n == 0 {
		return 0, 0, 0
	}
	return pressure / n, tiltX / n, tiltY / n
}

func snapClosed(pts []point.Point, bbox point.BBox, pressure, tiltX, tiltY float64) (SnapResult, bool) {
	cx, cy := bbox.Center()
	w, h := bbox.Width(), bbox.Height()
	rx, ry := w/2, h/2

	dists := make([]float64, len(pts))
	meanD := 0.0
	for i, p := range pts {
		d := math.Hypot(p.X-cx, p.Y-cy)
		dists[i] = d
		meanD += d
	}
	meanD /= float64(len(pts))

	variance := 0.0
	for _, d := range dists {
		variance += (d - meanD) * (d - meanD)
	}
	variance /= float64(len(pts))
	circleScore := math.Sqrt(variance) / meanD

	minDim := math.Min(w, h)
	maxDim := math.Max(w, h)
	if minDim < 1 {
		minDim = 1
	}
	aspect := maxDim / minDim

	ellipseScore := 0.0
	if rx > 0 && ry > 0 {
		for _, p := range pts {
			nx := (p.X - cx) / rx
			ny := (p.Y - cy) / ry
			ellipseScore += math.Abs(nx*nx + ny*ny - 1)
		}
		ellipseScore /= float64(len(pts))
	}

	edgeTol := 0.15 * minDim
	nearEdge := 0
	for _, p := range pts {
		if math.Abs(p.X-bbox.MinX) <= edgeTol || math.Abs(p.X-bbox.MaxX) <= edgeTol ||
			math.Abs(p.Y-bbox.MinY) <= edgeTol || math.Abs(p.Y-bbox.MaxY) <= edgeTol {
			nearEdge++
		}
	}
	rectScore := float64(nearEdge) / float64(len(pts))

	switch {
	case circleScore < 0.22 && aspect < 1.4:
		return regenCircleOrEllipse(KindCircle, cx, cy, (rx+ry)/2, (rx+ry)/2, pressure, tiltX, tiltY), true
	case rectScore > 0.70:
		return regenRoundedRect(bbox, pressure, tiltX, tiltY), true
	case ellipseScore < 0.20 && aspect >= 1.4:
		return regenCircleOrEllipse(KindEllipse, cx, cy, rx, ry, pressure, tiltX, tiltY), true
	case circleScore < 0.38:
		if aspect < 1.5 {
			return regenCircleOrEllipse(KindCircle, cx, cy, (rx+ry)/2, (rx+ry)/2, pressure, tiltX, tiltY), true
		}
		return regenCircleOrEllipse(KindEllipse, cx, cy, rx, ry, pressure, tiltX, tiltY), true
	case rectScore > 0.50:
		return regenRoundedRect(bbox, pressure, tiltX, tiltY), true
	case ellipseScore < 0.35:
		return regenCircleOrEllipse(KindEllipse, cx, cy, rx, ry, pressure, tiltX, tiltY), true
	default:
		return SnapResult{}, false
	}
}

func snapOpen(pts []point.Point, pressure, tiltX, tiltY float64) (SnapResult, bool) {
	p0, pn := pts[0], pts[len(pts)-1]
	chordLen := math.Hypot(pn.X-p0.X, pn.Y-p0.Y)
	if chordLen == 0 {
		return SnapResult{}, false
	}

	maxDev := 0.0
	for _, p := range pts {
		d := perpDistance(p.X, p.Y, p0.X, p0.Y, pn.X, pn.Y)
		if d > maxDev {
			maxDev = d
		}
	}

	if maxDev/chordLen >= 0.10 {
		return SnapResult{}, false
	}

	return regenLine(p0, pn, pressure, tiltX, tiltY), true
}

func perpDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	// |cross product| / |chord|
	cross := math.Abs((px-x0)*dy - (py-y0)*dx)
	return cross / math.Sqrt(lenSq)
}

// synthTimestamps regenerates n monotonically increasing timestamps spaced
// evenly across [start, end] as a synthetic sequence, not a replay of
// original arc-time.
func synthTimestamps(n int, start, end float64) []float64 {
	ts := make([]float64, n)
	if n == 1 {
		ts[0] = start
		return ts
	}
	for i := 0; i < n; i++ {
		ts[i] = start + (end-start)*float64(i)/float64(n-1)
	}
	return ts
}

func regenCircleOrEllipse(kind Kind, cx, cy, rx, ry, pressure, tiltX, tiltY float64) SnapResult {
	pts := make([]point.Point, circleRegenPoints)
	ts := synthTimestamps(circleRegenPoints, 0, float64(circleRegenPoints-1))
	for i := 0; i < circleRegenPoints; i++ {
		angle := 2 * math.Pi * float64(i) / float64(circleRegenPoints-1)
		pts[i] = point.Point{
			X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle),
			Pressure: pressure, TimestampMS: ts[i], TiltX: tiltX, TiltY: tiltY,
		}
	}
	return SnapResult{Kind: kind, Points: pts}
}

func regenRoundedRect(b point.BBox, pressure, tiltX, tiltY float64) SnapResult {
	radius := math.Min(0.12*math.Min(b.Width(), b.Height()), 20)

	type corner struct{ cx, cy, startAngle float64 }
	corners := []corner{
		{b.MinX + radius, b.MinY + radius, math.Pi},            // top-left
		{b.MaxX - radius, b.MinY + radius, 3 * math.Pi / 2},     // top-right
		{b.MaxX - radius, b.MaxY - radius, 0},                   // bottom-right
		{b.MinX + radius, b.MaxY - radius, math.Pi / 2},         // bottom-left
	}

	var pts []point.Point
	appendArc := func(c corner) {
		for i := 0; i <= roundedRectCornerSteps; i++ {
			a := c.startAngle + (math.Pi/2)*float64(i)/float64(roundedRectCornerSteps)
			pts = append(pts, point.Point{X: c.cx + radius*math.Cos(a), Y: c.cy + radius*math.Sin(a)})
		}
	}

	// top edge, top-right corner, right edge, bottom-right corner,
	// bottom edge, bottom-left corner, left edge, top-left corner.
	pts = append(pts, point.Point{X: b.MinX + radius, Y: b.MinY})
	pts = append(pts, point.Point{X: b.MaxX - radius, Y: b.MinY})
	appendArc(corners[1])
	pts = append(pts, point.Point{X: b.MaxX, Y: b.MaxY - radius})
	appendArc(corners[2])
	pts = append(pts, point.Point{X: b.MinX + radius, Y: b.MaxY})
	appendArc(corners[3])
	pts = append(pts, point.Point{X: b.MinX, Y: b.MinY + radius})
	appendArc(corners[0])

	ts := synthTimestamps(len(pts), 0, float64(len(pts)-1))
	for i := range pts {
		pts[i].Pressure = pressure
		pts[i].TiltX = tiltX
		pts[i].TiltY = tiltY
		pts[i].TimestampMS = ts[i]
	}
	return SnapResult{Kind: KindRoundedRect, Points: pts}
}

func regenLine(p0, pn point.Point, pressure, tiltX, tiltY float64) SnapResult {
	const n = 8 // >= 4 evenly spaced samples
	pts := make([]point.Point, n)
	ts := synthTimestamps(n, p0.TimestampMS, pn.TimestampMS)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts[i] = point.Point{
			X: p0.X + (pn.X-p0.X)*t, Y: p0.Y + (pn.Y-p0.Y)*t,
			Pressure: pressure, TimestampMS: ts[i], TiltX: tiltX, TiltY: tiltY,
		}
	}
	return SnapResult{Kind: KindLine, Points: pts}
}
