package diag

import (
	"errors"
	"fmt"
)

// The engine's error taxonomy. Nothing here is fatal: every
// caller-visible error describes a degrade-in-place outcome, never a crash.
var (
	// ErrAudioUnavailable means synth init failed; visual/haptic paths continue.
	ErrAudioUnavailable = errors.New("sensoryink: audio unavailable")
	// ErrHapticUnavailable means triggerGrain/triggerImmediate became no-ops.
	ErrHapticUnavailable = errors.New("sensoryink: haptic unavailable")
	// ErrSurfaceUnavailable means the raster target is missing; export
	// returns empty bytes and drawing operations become no-ops.
	ErrSurfaceUnavailable = errors.New("sensoryink: render surface unavailable")
	// ErrPointerProtocolViolation means an orphaned pointer, lost capture, or
	// out-of-order addPoint was recovered by ending any dangling stroke.
	ErrPointerProtocolViolation = errors.New("sensoryink: pointer protocol violation")
	// ErrInvalidSerialization means loadStrokes was given malformed input;
	// the prior document is preserved.
	ErrInvalidSerialization = errors.New("sensoryink: invalid serialization")
)

// Wrap attaches context to one of the taxonomy errors while preserving
// errors.Is matching against the sentinel.
func Wrap(sentinel error, context string) error {
	if context == "" {
		return sentinel
	}
	return fmt.Errorf("%s: %w", context, sentinel)
}
