package audio

import (
	"math"
	"testing"
)

func TestBiquadLowpassAttenuatesHighFrequency(t *testing.T) {
	var f Biquad
	f.Configure(Lowpass, 200, 0.7, 44100)

	// Drive with a near-Nyquist alternating signal; a 200Hz lowpass at
	// 44.1kHz should attenuate it heavily once settled.
	var lastAbs float64
	for i := 0; i < 2000; i++ {
		x := 1.0
		if i%2 == 0 {
			x = -1.0
		}
		lastAbs = math.Abs(f.Process(x))
	}
	if lastAbs > 0.3 {
		t.Fatalf("lowpass filter should attenuate a near-Nyquist tone, got amplitude %v", lastAbs)
	}
}

func TestBiquadPassesLowFrequencyNearUnity(t *testing.T) {
	var f Biquad
	f.Configure(Lowpass, 5000, 0.7, 44100)

	var maxAbs float64
	for i := 0; i < 500; i++ {
		x := math.Sin(2 * math.Pi * 20 * float64(i) / 44100)
		y := f.Process(x)
		if math.Abs(y) > maxAbs {
			maxAbs = math.Abs(y)
		}
	}
	if maxAbs < 0.5 {
		t.Fatalf("a tone well below the cutoff should pass with little attenuation, got peak %v", maxAbs)
	}
}

func TestBiquadZeroFreqAndQDoNotPanic(t *testing.T) {
	var f Biquad
	f.Configure(Bandpass, 0, 0, 44100)
	if math.IsNaN(f.Process(1)) {
		t.Fatalf("degenerate freq/Q inputs should clamp instead of producing NaN")
	}
}
