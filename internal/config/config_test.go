package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sensoryink/core/internal/audio"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load missing config should not fail: %v", err)
	}
	want := Default()
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load with no path should not fail: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults for an empty path")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	in := EngineConfig{
		DefaultGridType:     "dot",
		DefaultSoundProfile: string(audio.Marker),
		DefaultSoundVolume:  0.4,
		HapticEnabled:       false,
		RawMode:             true,
		SurfaceTexture:      0.7,
		SoundProfiles: map[string]SoundProfileOverride{
			"custom": {Rate: 1.2, Filter: "bandpass", Freq: 900, Q: 0.9, Gain: 2},
		},
	}

	if err := Save(path, in); err != nil {
		t.Fatalf("save config: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected saved config file: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if out.DefaultGridType != in.DefaultGridType {
		t.Fatalf("DefaultGridType mismatch: got %q want %q", out.DefaultGridType, in.DefaultGridType)
	}
	if out.DefaultSoundProfile != in.DefaultSoundProfile {
		t.Fatalf("DefaultSoundProfile mismatch: got %q want %q", out.DefaultSoundProfile, in.DefaultSoundProfile)
	}
	if out.RawMode != in.RawMode {
		t.Fatalf("RawMode mismatch: got %v want %v", out.RawMode, in.RawMode)
	}
	if out.SurfaceTexture != in.SurfaceTexture {
		t.Fatalf("SurfaceTexture mismatch: got %v want %v", out.SurfaceTexture, in.SurfaceTexture)
	}
	row, ok := out.SoundProfiles["custom"]
	if !ok {
		t.Fatalf("expected custom sound profile override to round-trip")
	}
	if row.Filter != "bandpass" || row.Freq != 900 {
		t.Fatalf("got %+v", row)
	}
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("not = [valid toml"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := Load(path)
	if err == nil {
		t.Fatalf("expected a parse error for malformed TOML")
	}
	if !reflect.DeepEqual(out, Default()) {
		t.Fatalf("malformed config should fall back to defaults, got %+v", out)
	}
}

func TestLoadOutOfRangeVolumeFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad_volume.toml")
	raw := `default_sound_volume = 5.0`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.DefaultSoundVolume != Default().DefaultSoundVolume {
		t.Fatalf("out-of-range volume should be clamped back to the default, got %v", out.DefaultSoundVolume)
	}
}

func TestResolveSoundProfilesMergesOverridesOntoDefaults(t *testing.T) {
	cfg := Default()
	cfg.SoundProfiles = map[string]SoundProfileOverride{
		string(audio.Pencil): {Rate: 9, Filter: "bandpass", Freq: 123, Q: 1, Gain: 5},
	}
	resolved := ResolveSoundProfiles(cfg)

	pencil, ok := resolved[audio.Pencil]
	if !ok {
		t.Fatalf("expected pencil profile to still be present")
	}
	if pencil.Rate != 9 || pencil.Filter != audio.Bandpass {
		t.Fatalf("override should replace the default pencil row, got %+v", pencil)
	}

	if _, ok := resolved[audio.Charcoal]; !ok {
		t.Fatalf("profiles without an override should remain at their compiled-in default")
	}
}
