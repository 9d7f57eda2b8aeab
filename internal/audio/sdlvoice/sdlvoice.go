// Package sdlvoice is the Real audio backend: an SDL2 queued audio device
// pulling interleaved float32 stereo frames from an internal/audio.Synth.
//
// The setup follows the usual Fyne+SDL pairing for game/emulator audio:
// sdl.Init(INIT_AUDIO), sdl.OpenAudioDevice with a float32 AudioSpec, and
// a per-frame sdl.QueueAudio push gated on the queued-size backlog.
package sdlvoice

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sensoryink/core/internal/audio"
	"github.com/sensoryink/core/internal/diag"
)

const (
	samplesPerPush = 735 // 44100/60, one frame's worth at 60fps
	maxQueuedBytes = samplesPerPush * 2 * 4 * 4 // ~4 frames of stereo float32 backlog before skipping a push
)

// Device is a Real audio.Voice backed by an SDL queued audio device.
type Device struct {
	*audio.Synth
	dev sdl.AudioDeviceID
}

// Open initializes SDL audio and opens a 44.1kHz stereo float32 device. If
// SDL or the device itself is unavailable, it returns diag.ErrAudioUnavailable
// wrapped with the underlying cause so callers can fall back to audio.Noop.
func Open() (*Device, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, diag.Wrap(diag.ErrAudioUnavailable, err.Error())
	}

	spec := sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_F32,
		Channels: 2,
		Samples:  samplesPerPush,
	}
	dev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, diag.Wrap(diag.ErrAudioUnavailable, fmt.Sprintf("open device: %v", err))
	}
	sdl.PauseAudioDevice(dev, false)

	return &Device{Synth: audio.NewSynth(), dev: dev}, nil
}

// Pump renders and queues one block of samples; call once per engine tick
// (e.g. from the render loop, matching the usual per-frame audio push
// found in the engine's render loop).
func (d *Device) Pump() {
	if sdl.GetQueuedAudioSize(d.dev) > uint32(maxQueuedBytes) {
		return
	}
	frame := d.Synth.GenerateSamples(samplesPerPush)
	_ = sdl.QueueAudio(d.dev, frame)
}

// Close stops and closes the audio device.
func (d *Device) Close() error {
	sdl.ClearQueuedAudio(d.dev)
	sdl.CloseAudioDevice(d.dev)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}

var _ audio.Voice = (*Device)(nil)
