package smoothing

import "testing"

func TestPredictorDisabledReturnsRawSample(t *testing.T) {
	var p Predictor
	p.Observe(0, 0, 0)
	x, y := p.Observe(10, 0, 10)
	if x != 10 || y != 0 {
		t.Fatalf("disabled predictor should return the raw sample, got (%v, %v)", x, y)
	}
}

func TestPredictorFirstSamplePassesThrough(t *testing.T) {
	var p Predictor
	p.Enabled = true
	x, y := p.Observe(3, 4, 0)
	if x != 3 || y != 4 {
		t.Fatalf("first sample has no velocity history, should pass through, got (%v, %v)", x, y)
	}
}

func TestPredictorEnabledExtrapolatesForward(t *testing.T) {
	var p Predictor
	p.Enabled = true
	p.Observe(0, 0, 0)
	for i := 1; i <= 5; i++ {
		p.Observe(float64(i)*10, 0, float64(i)*10)
	}
	x, _ := p.Observe(60, 0, 60)
	if x <= 60 {
		t.Fatalf("steady rightward motion should predict ahead of the raw sample, got x=%v", x)
	}
}

func TestPredictorZeroDeltaTimeReturnsRaw(t *testing.T) {
	var p Predictor
	p.Enabled = true
	p.Observe(0, 0, 5)
	x, y := p.Observe(20, 20, 5)
	if x != 20 || y != 20 {
		t.Fatalf("non-positive dt should short-circuit to the raw sample, got (%v, %v)", x, y)
	}
}

func TestPredictorResetClearsVelocity(t *testing.T) {
	var p Predictor
	p.Enabled = true
	p.Observe(0, 0, 0)
	p.Observe(50, 0, 10)
	p.Reset()

	x, y := p.Observe(1, 1, 0)
	if x != 1 || y != 1 {
		t.Fatalf("after reset the next sample should be treated as the first, got (%v, %v)", x, y)
	}
}
