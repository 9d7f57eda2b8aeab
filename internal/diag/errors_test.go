package diag

import (
	"errors"
	"testing"
)

func TestWrapEmptyContextReturnsSentinelUnchanged(t *testing.T) {
	got := Wrap(ErrAudioUnavailable, "")
	if got != ErrAudioUnavailable {
		t.Fatalf("expected the bare sentinel back, got %v", got)
	}
}

func TestWrapPreservesErrorsIs(t *testing.T) {
	got := Wrap(ErrSurfaceUnavailable, "exportImage")
	if !errors.Is(got, ErrSurfaceUnavailable) {
		t.Fatalf("expected errors.Is to still match the sentinel through %v", got)
	}
	if got.Error() != "exportImage: sensoryink: render surface unavailable" {
		t.Fatalf("unexpected wrapped message: %q", got.Error())
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrAudioUnavailable,
		ErrHapticUnavailable,
		ErrSurfaceUnavailable,
		ErrPointerProtocolViolation,
		ErrInvalidSerialization,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("expected distinct sentinels, but %v matched %v", a, b)
			}
		}
	}
}
