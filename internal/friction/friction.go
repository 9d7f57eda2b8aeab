// Package friction implements the per-sample positional drag filter (spec
// §4.C), applied before the streamline smoother in non-raw mode.
package friction

import (
	"math"

	"github.com/sensoryink/core/internal/point"
)

// Params tunes the filter; SurfaceTexture drives GrainStrength and
// BaseResistance in tandem with the audio synth's timbre.
type Params struct {
	BaseResistance    float64
	PressureInfluence float64
	VelocityDamping   float64
	GrainDir          float64 // radians, paper-grain direction
	GrainStrength     float64
}

// DefaultParams mirrors a medium-resistance paper-like default.
func DefaultParams() Params {
	return Params{
		BaseResistance:    0.15,
		PressureInfluence: 0.3,
		VelocityDamping:   0.6,
		GrainDir:          0,
		GrainStrength:     0.2,
	}
}

// Filter carries lastOut state across samples of one stroke.
type Filter struct {
	have        bool
	lastX, lastY float64
}

// Reset clears carried state; call at StartStroke.
func (f *Filter) Reset() {
	f.have = false
}

// Result is the filter's per-sample output.
type Result struct {
	X, Y          float64
	FrictionAmount float64
	GrainFactor    float64
}

// Apply runs one sample through the filter. velocity is world-px per 100ms;
// direction is atan2(dy, dx) of the raw motion.
func (f *Filter) Apply(x, y, pressure, velocity, direction float64, p Params) Result {
	if !f.have {
		f.lastX, f.lastY = x, y
		f.have = true
		return Result{X: x, Y: y}
	}

	fr := p.BaseResistance + pressure*p.PressureInfluence*0.2
	fr = fr * (1 - math.Min(1, velocity/5)*p.VelocityDamping)

	diff := math.Abs(direction - p.GrainDir)
	grainFactor := math.Min(diff, math.Pi-diff) / (math.Pi / 2)

	fr = point.Clamp(fr+grainFactor*p.GrainStrength, 0, 0.5)

	outX := f.lastX + (x-f.lastX)*(1-fr)
	outY := f.lastY + (y-f.lastY)*(1-fr)

	f.lastX, f.lastY = outX, outY

	return Result{X: outX, Y: outY, FrictionAmount: fr, GrainFactor: grainFactor}
}

// Direction computes atan2(dy, dx) for a motion delta.
func Direction(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}

// VelocityPer100ms computes distance / (dtMS/100).
func VelocityPer100ms(dx, dy, dtMS float64) float64 {
	if dtMS <= 0 {
		return 0
	}
	dist := math.Hypot(dx, dy)
	return dist / (dtMS / 100)
}
