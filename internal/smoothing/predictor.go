package smoothing

// Predictor is an EMA-velocity motion predictor, present but disabled by
// default: no particular predictor curve is required, only that the
// mechanism exists behind an off switch. When enabled it blends a velocity-extrapolated
// point with the raw input, weighted by a confidence that rises toward 0.5
// with every observed sample.
type Predictor struct {
	Enabled bool

	have        bool
	lastX, lastY float64
	lastT       float64
	velX, velY  float64
	confidence  float64
}

// Reset clears carried state; call at StartStroke.
func (p *Predictor) Reset() {
	p.have = false
	p.velX, p.velY = 0, 0
	p.confidence = 0
}

// Observe feeds a raw (already-smoothed) sample and returns the point the
// predictor would emit: the raw sample when disabled or not yet warmed up,
// otherwise a confidence-blended extrapolation.
func (p *Predictor) Observe(x, y, timestampMS float64) (float64, float64) {
	if !p.have {
		p.lastX, p.lastY, p.lastT = x, y, timestampMS
		p.have = true
		return x, y
	}

	dt := timestampMS - p.lastT
	if dt <= 0 {
		return x, y
	}

	instVelX := (x - p.lastX) / dt
	instVelY := (y - p.lastY) / dt

	const emaAlpha = 0.5
	p.velX += (instVelX - p.velX) * emaAlpha
	p.velY += (instVelY - p.velY) * emaAlpha

	// Confidence rises smoothly and caps at 0.5: prediction only ever
	// contributes half-weight at most, guarding against overshoot.
	p.confidence += (0.5 - p.confidence) * 0.2

	p.lastX, p.lastY, p.lastT = x, y, timestampMS

	if !p.Enabled {
		return x, y
	}

	const lookaheadMS = 8.0
	predX := x + p.velX*lookaheadMS
	predY := y + p.velY*lookaheadMS

	return x + (predX-x)*p.confidence, y + (predY-y)*p.confidence
}
