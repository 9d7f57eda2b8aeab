// Package audio implements the procedural synth engine: a
// looped pink-noise buffer through a biquad filter, an envelope follower,
// master gain, and a stereo panner.
//
// The oscillator style follows a chip-synth APU: phase-accumulator state
// on a small mutable struct, an LFSR noise generator, and per-channel
// volume/gain handling, adapted here from chip-register channels to a
// single continuous procedural voice.
package audio

// FilterKind selects the biquad topology a sound profile uses.
type FilterKind int

const (
	Lowpass FilterKind = iota
	Bandpass
)

// Profile is one row of the §4.B sound-profile table.
type Profile struct {
	Name   SoundProfile
	Rate   float64
	Filter FilterKind
	Freq   float64
	Q      float64
	Gain   float64
}

// SoundProfile names a pen/material timbre.
type SoundProfile string

const (
	Pencil      SoundProfile = "pencil"
	Charcoal    SoundProfile = "charcoal"
	Ballpoint   SoundProfile = "ballpoint"
	Fountain    SoundProfile = "fountain"
	Marker      SoundProfile = "marker"
	Highlighter SoundProfile = "highlighter"
	Monoline    SoundProfile = "monoline"
	Calligraphy SoundProfile = "calligraphy"
)

// DefaultProfiles is the compiled-in §4.B table; internal/config may
// override any row from an EngineConfig TOML file (SPEC_FULL §11).
func DefaultProfiles() map[SoundProfile]Profile {
	return map[SoundProfile]Profile{
		Pencil:      {Pencil, 1.0, Lowpass, 600, 0.5, 0},
		Charcoal:    {Charcoal, 0.5, Lowpass, 400, 0.5, 0},
		Ballpoint:   {Ballpoint, 1.3, Bandpass, 800, 0.8, 0},
		Fountain:    {Fountain, 0.9, Lowpass, 400, 0.3, 0},
		Marker:      {Marker, 0.8, Lowpass, 200, 0.1, 0},
		Highlighter: {Highlighter, 1.5, Bandpass, 1200, 5.0, 10},
		Monoline:    {Monoline, 2.0, Lowpass, 100, 0, 0},
		Calligraphy: {Calligraphy, 0.6, Lowpass, 300, 0.2, 0},
	}
}
