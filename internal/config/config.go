// Package config loads the engine's on-disk configuration: default tool
// settings, the grid style, and per-profile sound table overrides.
//
// The load/default/validate/save shape follows the usual devkit settings
// pattern, using github.com/BurntSushi/toml for the on-disk format.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sensoryink/core/internal/audio"
)

// SoundProfileOverride mirrors audio.Profile as a flat TOML table row.
type SoundProfileOverride struct {
	Rate   float64 `toml:"rate"`
	Filter string  `toml:"filter"` // "lowpass" | "bandpass"
	Freq   float64 `toml:"freq"`
	Q      float64 `toml:"q"`
	Gain   float64 `toml:"gain"`
}

// EngineConfig is the engine's top-level on-disk configuration.
type EngineConfig struct {
	DefaultGridType     string                          `toml:"default_grid_type"`
	DefaultSoundProfile string                          `toml:"default_sound_profile"`
	DefaultSoundVolume  float64                          `toml:"default_sound_volume"`
	HapticEnabled       bool                             `toml:"haptic_enabled"`
	RawMode             bool                             `toml:"raw_mode"`
	SurfaceTexture      float64                          `toml:"surface_texture"`
	SoundProfiles       map[string]SoundProfileOverride `toml:"sound_profiles"`
}

// Default returns the engine's compiled-in configuration.
func Default() EngineConfig {
	return EngineConfig{
		DefaultGridType:     "none",
		DefaultSoundProfile: string(audio.Pencil),
		DefaultSoundVolume:  0.8,
		HapticEnabled:       true,
		RawMode:             false,
		SurfaceTexture:      0.3,
		SoundProfiles:       map[string]SoundProfileOverride{},
	}
}

// Path returns the per-user config file path, or "" if the platform
// exposes no config directory.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "sensoryink", "engine.toml")
}

// Load reads and validates the config at path, falling back to Default()
// when the file is absent. A malformed file returns Default() plus the
// parse error so the caller can log and continue with defaults.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, nil
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), err
	}
	return validate(cfg), nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg EngineConfig) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

func validate(cfg EngineConfig) EngineConfig {
	if cfg.DefaultGridType == "" {
		cfg.DefaultGridType = "none"
	}
	if cfg.DefaultSoundProfile == "" {
		cfg.DefaultSoundProfile = string(audio.Pencil)
	}
	if cfg.DefaultSoundVolume < 0 || cfg.DefaultSoundVolume > 1 {
		cfg.DefaultSoundVolume = 0.8
	}
	if cfg.SurfaceTexture < 0 || cfg.SurfaceTexture > 1 {
		cfg.SurfaceTexture = 0.3
	}
	if cfg.SoundProfiles == nil {
		cfg.SoundProfiles = map[string]SoundProfileOverride{}
	}
	return cfg
}

// ResolveSoundProfiles merges cfg's overrides onto audio.DefaultProfiles().
func ResolveSoundProfiles(cfg EngineConfig) map[audio.SoundProfile]audio.Profile {
	profiles := audio.DefaultProfiles()
	for name, row := range cfg.SoundProfiles {
		key := audio.SoundProfile(name)
		kind := audio.Lowpass
		if row.Filter == "bandpass" {
			kind = audio.Bandpass
		}
		profiles[key] = audio.Profile{
			Name: key, Rate: row.Rate, Filter: kind, Freq: row.Freq, Q: row.Q, Gain: row.Gain,
		}
	}
	return profiles
}
