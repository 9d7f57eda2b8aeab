// Package width implements the variable-width model: pressure,
// velocity, and tilt combine into a clamped per-segment width, with a
// quadratic taper at the tips.
package width

import (
	"math"

	"github.com/sensoryink/core/internal/point"
)

// AtSegment computes the width at the current point given the previous
// point and the RenderConfig's influences.
func AtSegment(prev, curr point.Point, cfg point.RenderConfig) float64 {
	pFactor := cfg.PressureInfluence*curr.Pressure + (1-cfg.PressureInfluence)*0.5

	dt := curr.TimestampMS - prev.TimestampMS
	var v float64
	if dt > 0 {
		v = math.Hypot(curr.X-prev.X, curr.Y-prev.Y) / dt
	}
	vFactor := 1 - math.Min(1, v/2.5)*cfg.VelocityInfluence

	w := cfg.BaseStrokeWidth * pFactor * vFactor

	if math.Abs(curr.TiltX) > 0 || math.Abs(curr.TiltY) > 0 {
		w = applyTilt(w, prev, curr)
	}

	return point.Clamp(w, cfg.MinWidth, cfg.MaxWidth)
}

func applyTilt(w float64, prev, curr point.Point) float64 {
	tiltAngle := math.Atan2(curr.TiltY, curr.TiltX)
	strokeAngle := math.Atan2(curr.Y-prev.Y, curr.X-prev.X)

	theta := math.Abs(tiltAngle - strokeAngle)
	for theta > math.Pi {
		theta -= 2 * math.Pi
		theta = math.Abs(theta)
	}
	n := math.Min(theta, math.Pi-theta) / (math.Pi / 2)

	tiltMag := math.Hypot(curr.TiltX, curr.TiltY)
	m := math.Min(1, tiltMag/60)

	return w * (1 + (0.6+0.9*n-1)*m)
}

// TaperSegmentCount returns the number of segments at each end of an
// N-point stroke that receive a taper ramp.
func TaperSegmentCount(n int) int {
	if n < 4 {
		return 0
	}
	t := int(math.Floor(0.15 * float64(n)))
	if t > 8 {
		t = 8
	}
	return t
}

// TaperFactor returns the quadratic ramp multiplier for the k-th (0-indexed)
// tapered segment out of T total tapered segments at one end.
func TaperFactor(k, t int) float64 {
	if t <= 0 {
		return 1
	}
	r := float64(k+1) / float64(t+1)
	return r * r
}

// DotTaperFactor is the extra multiplier applied to a single-point stroke's
// disk radius.
const DotTaperFactor = 0.4

// SingleSegmentWidth computes the constant width used for 2-3 point
// polylines: baseWidth * avgPressureFactor * 0.5, clamped.
func SingleSegmentWidth(pts []point.Point, cfg point.RenderConfig) float64 {
	avgPressure := 0.0
	for _, p := range pts {
		avgPressure += p.Pressure
	}
	if len(pts) > 0 {
		avgPressure /= float64(len(pts))
	}
	pFactor := cfg.PressureInfluence*avgPressure + (1-cfg.PressureInfluence)*0.5
	w := cfg.BaseStrokeWidth * pFactor * 0.5
	return point.Clamp(w, cfg.MinWidth, cfg.MaxWidth)
}
