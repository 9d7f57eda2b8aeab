package audio

// Voice is the capability surface the engine drives; a Noop implementation
// lets the engine run headless or degrade silently when the platform has
// no audio device (diag.ErrAudioUnavailable).
type Voice interface {
	SetProfile(name SoundProfile)
	SetSurfaceTexture(t float64)
	SetVolume(v float64)
	SetRawMode(raw bool)
	OnSample(velocity, screenX, canvasWidth float64)
	OnStrokeEnd()
	Close() error
}

// Noop discards every call; used when no audio backend is available.
type Noop struct{}

func (Noop) SetProfile(SoundProfile)          {}
func (Noop) SetSurfaceTexture(float64)        {}
func (Noop) SetVolume(float64)                {}
func (Noop) SetRawMode(bool)                  {}
func (Noop) OnSample(float64, float64, float64) {}
func (Noop) OnStrokeEnd()                     {}
func (Noop) Close() error                     { return nil }

var _ Voice = Noop{}
var _ Voice = (*Synth)(nil)

func (s *Synth) Close() error { return nil }
