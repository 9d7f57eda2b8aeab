package engine

import (
	"github.com/sensoryink/core/internal/audio/sdlvoice"
	"github.com/sensoryink/core/internal/diag"
	"github.com/sensoryink/core/internal/haptic"
	"github.com/sensoryink/core/internal/haptic/dbushaptic"
)

// WireRealAudio opens the SDL voice device and swaps it in; on failure the
// engine keeps its Noop voice and the error is diag.ErrAudioUnavailable:
// synth init failing leaves visual/haptic paths unaffected.
func (e *Engine) WireRealAudio() error {
	dev, err := sdlvoice.Open()
	if err != nil {
		if e.Logger != nil {
			e.Logger.Log(diag.ComponentAudio, diag.LogLevelWarning, err.Error(), nil)
		}
		return err
	}
	e.Voice = dev
	return nil
}

// WireRealHaptics opens the D-Bus feedback service and swaps it in; on
// failure the engine keeps Haptics pulsing into a NoopPulser: triggerGrain
// and triggerImmediate become no-ops.
func (e *Engine) WireRealHaptics() error {
	dev, err := dbushaptic.Open()
	if err != nil {
		if e.Logger != nil {
			e.Logger.Log(diag.ComponentHaptic, diag.LogLevelWarning, err.Error(), nil)
		}
		return err
	}
	e.Haptics = haptic.New(dev)
	return nil
}
