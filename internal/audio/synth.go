package audio

import "math"

// SampleRate is the engine's fixed audio sample rate.
const SampleRate = 44100

// Synth is the one stereo voice per engine: pink noise -> biquad filter ->
// envelope gain -> master gain -> stereo panner -> output.
type Synth struct {
	profiles map[SoundProfile]Profile
	active   Profile

	noise    *NoiseBuffer
	pos      float64
	filter   Biquad
	envelope float64
	target   float64

	masterGain     float64 // user volume, spec setSoundVolume
	surfaceTexture float64 // [0,1]
	pan            float64 // [-1,1]
	raw            bool
}

// NewSynth builds a synth with the default profile table and a fresh noise
// buffer, starting on the pencil profile.
func NewSynth() *Synth {
	s := &Synth{
		profiles:   DefaultProfiles(),
		noise:      NewNoiseBuffer(SampleRate, 0xACE1),
		masterGain: 1,
	}
	s.SetProfile(Pencil)
	return s
}

// SetProfiles overrides the compiled-in table, e.g. from EngineConfig
// (SPEC_FULL §11).
func (s *Synth) SetProfiles(p map[SoundProfile]Profile) {
	s.profiles = p
	s.SetProfile(s.active.Name)
}

// SetProfile selects the active SoundProfile and reconfigures the filter.
func (s *Synth) SetProfile(name SoundProfile) {
	p, ok := s.profiles[name]
	if !ok {
		p = DefaultProfiles()[Pencil]
	}
	s.active = p
	s.reconfigureFilter()
}

// SetSurfaceTexture modulates the filter toward a harsher, noisier
// character at higher values (spec glossary: a single slider affecting
// both friction and synth timbre).
func (s *Synth) SetSurfaceTexture(t float64) {
	s.surfaceTexture = clamp01(t)
	s.reconfigureFilter()
}

func (s *Synth) reconfigureFilter() {
	// Higher surfaceTexture opens the filter up (cutoff scaled by
	// 1+surfaceTexture) for a harsher, noisier character; Q stays at the
	// profile's value.
	freq := s.active.Freq * (1 + s.surfaceTexture)
	q := s.active.Q
	if q <= 0 {
		q = 0.01
	}
	s.filter.Configure(s.active.Filter, freq, q, SampleRate)
}

// SetVolume sets the user-facing master gain [0,1].
func (s *Synth) SetVolume(v float64) { s.masterGain = clamp01(v) }

// SetRawMode toggles raw mode; audio still fires in raw mode regardless.
func (s *Synth) SetRawMode(raw bool) { s.raw = raw }

// profileFactor converts the table's dB-ish gain column to a linear
// envelope-target multiplier (10 dB -> ~3.16x, 0 dB -> 1x).
func (s *Synth) profileFactor() float64 {
	return math.Pow(10, s.active.Gain/20)
}

// OnSample updates the envelope target and stereo pan from one pointer
// sample's instantaneous velocity (world-px/100ms convention)
// and screen x position.
func (s *Synth) OnSample(velocity, screenX, canvasWidth float64) {
	v := velocity / 100 * 2.5 // velocity arrives in world-px/100ms; rescale to the /2.5 envelope convention
	target := math.Min(1, math.Pow(v/2.5, 1.1)*s.profileFactor())
	s.target = clamp01(target)

	if canvasWidth > 0 {
		s.pan = clamp(screenX/canvasWidth*2-1, -1, 1)
	}
}

// OnStrokeEnd begins the envelope's decay to zero (~100ms time constant).
func (s *Synth) OnStrokeEnd() {
	s.target = 0
}

// attackCoeff/releaseCoeff are one-pole smoothing coefficients for ~50ms
// attack / ~100ms release time constants at SampleRate.
func timeConstantCoeff(tauSeconds float64) float64 {
	return math.Exp(-1 / (tauSeconds * SampleRate))
}

var (
	attackCoeff  = timeConstantCoeff(0.05)
	releaseCoeff = timeConstantCoeff(0.10)
)

// GenerateSamples renders count stereo frames (interleaved L,R float32),
// matching the APU.GenerateSamples(count) block-pull shape used elsewhere
// in chip-synth emulators.
func (s *Synth) GenerateSamples(count int) []float32 {
	out := make([]float32, count*2)
	rate := s.active.Rate
	if rate <= 0 {
		rate = 1
	}

	for i := 0; i < count; i++ {
		coeff := attackCoeff
		if s.target < s.envelope {
			coeff = releaseCoeff
		}
		s.envelope += (s.target - s.envelope) * (1 - coeff)

		raw := s.noise.At(s.pos)
		s.pos += rate
		if s.pos >= float64(s.noise.Len()) {
			s.pos -= float64(s.noise.Len())
		}

		filtered := s.filter.Process(float64(raw))
		sample := filtered * s.envelope * s.masterGain

		left, right := panGains(s.pan)
		out[i*2] = float32(sample * left)
		out[i*2+1] = float32(sample * right)
	}
	return out
}

// panGains implements an equal-power pan law from [-1,1].
func panGains(pan float64) (left, right float64) {
	angle := (pan + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
