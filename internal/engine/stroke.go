package engine

import (
	"math"

	"github.com/sensoryink/core/internal/friction"
	"github.com/sensoryink/core/internal/gesture"
	"github.com/sensoryink/core/internal/input"
	"github.com/sensoryink/core/internal/point"
)

var _ input.StrokeSink = (*Engine)(nil)

// StartStroke implements startStroke: begins conditioning a new stroke at
// a world-space sample. Resets every per-stroke filter.
func (e *Engine) StartStroke(worldX, worldY, pressure, tiltX, tiltY, timestampMS float64) {
	if e.drawing {
		e.EndStroke()
	}
	e.drawing = true
	e.strokePoints = e.strokePoints[:0]
	e.streamline.Reset()
	e.predictor.Reset()
	e.frictionF.Reset()
	e.Haptics.Reset()

	p := e.conditionSample(worldX, worldY, pressure, tiltX, tiltY, timestampMS, 0)
	e.strokePoints = append(e.strokePoints, p)

	e.Haptics.TriggerImmediate(timestampMS)
	screenX, _ := e.Camera.WorldToScreen(worldX, worldY)
	e.Voice.OnSample(0, screenX, e.viewportW)
}

// AddPoint implements addPoint: conditions one more sample (plus any
// coalesced sub-samples the caller has already flattened, processed in
// reported order).
func (e *Engine) AddPoint(worldX, worldY, pressure, tiltX, tiltY, timestampMS float64) {
	if !e.drawing {
		return
	}

	prev := e.strokePoints[len(e.strokePoints)-1]
	dt := timestampMS - prev.TimestampMS
	velocity := friction.VelocityPer100ms(worldX-prev.X, worldY-prev.Y, dt)

	p := e.conditionSample(worldX, worldY, pressure, tiltX, tiltY, timestampMS, velocity)
	e.strokePoints = append(e.strokePoints, p)

	dist := math.Hypot(p.X-prev.X, p.Y-prev.Y)
	if dist > 2 {
		e.Haptics.TriggerGrain(p.X, p.Y, timestampMS, velocity)
	}
	screenX, _ := e.Camera.WorldToScreen(worldX, worldY)
	e.Voice.OnSample(velocity, screenX, e.viewportW)
}

// conditionSample runs one raw sample through friction -> streamline ->
// predictor, or passes it through untouched in raw mode.
func (e *Engine) conditionSample(x, y, pressure, tiltX, tiltY, timestampMS, velocity float64) point.Point {
	if e.rawMode {
		return point.Point{X: x, Y: y, Pressure: pressure, TiltX: tiltX, TiltY: tiltY, TimestampMS: timestampMS}
	}

	var prevX, prevY float64
	if len(e.strokePoints) > 0 {
		last := e.strokePoints[len(e.strokePoints)-1]
		prevX, prevY = last.X, last.Y
	} else {
		prevX, prevY = x, y
	}
	dir := friction.Direction(x-prevX, y-prevY)

	fr := e.frictionF.Apply(x, y, pressure, velocity, dir, e.frictionParams)
	sx, sy := e.streamline.Apply(fr.X, fr.Y, e.Tool.Config.Streamline)
	px, py := e.predictor.Observe(sx, sy, timestampMS)

	return point.Point{X: px, Y: py, Pressure: pressure, TiltX: tiltX, TiltY: tiltY, TimestampMS: timestampMS}
}

// EndStroke implements endStroke: runs the post-stroke recognizers
// (scratch-erase, then shape-snap), commits the final stroke to the
// document, decays audio to silence, and applies any resize deferred
// during the stroke.
func (e *Engine) EndStroke() {
	if !e.drawing {
		return
	}
	e.drawing = false
	e.Voice.OnStrokeEnd()

	pts := e.strokePoints
	if len(pts) == 0 {
		e.applyDeferredResize()
		return
	}

	if scratch := gesture.DetectScratch(pts); scratch.IsScratch {
		victims := gesture.StrokesTouchingBBox(e.Document.Strokes, scratch.EraseBBox)
		e.Document.DeleteIndices(victims)
		e.applyDeferredResize()
		return
	}

	finalPts := append([]point.Point(nil), pts...)
	dwell := gesture.DwellMS(pts)
	if snap, ok := gesture.TrySnap(pts, dwell); ok {
		finalPts = snap.Points
	}

	e.Document.AddStroke(point.Stroke{Points: finalPts, Config: e.Tool.Config})
	e.applyDeferredResize()
}

func (e *Engine) applyDeferredResize() {
	if !e.resizePending {
		return
	}
	e.viewportW, e.viewportH = e.pendingResizeW, e.pendingResizeH
	e.resizePending = false
}
