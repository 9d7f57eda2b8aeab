// Package dbushaptic is the Real haptic backend on Linux desktops: it
// forwards pulse requests to whatever feedbackd/GNOME style session
// service is registered for haptic actuation, via a D-Bus session
// connection.
//
// Built on github.com/godbus/dbus/v5's session-bus call convention
// (Object(dest, path).Call(method, flags, args...)), the same shape
// every godbus consumer uses.
package dbushaptic

import (
	"github.com/godbus/dbus/v5"

	"github.com/sensoryink/core/internal/diag"
)

const (
	feedbackDest      = "org.sigxcpu.Feedback"
	feedbackPath      = "/org/sigxcpu/Feedback"
	feedbackInterface = "org.sigxcpu.Feedback"
	appID             = "ink.sensory.core"
)

// Device delivers haptic pulses through the feedbackd session service.
type Device struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// Open connects to the D-Bus session bus. Returns diag.ErrHapticUnavailable
// if no session bus is reachable (headless/CI), so callers can fall back to
// haptic.NoopPulser. It does not check that feedbackd is registered on the
// bus; without it, every Pulse call fails silently.
func Open() (*Device, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, diag.Wrap(diag.ErrHapticUnavailable, err.Error())
	}
	obj := conn.Object(feedbackDest, dbus.ObjectPath(feedbackPath))
	return &Device{conn: conn, obj: obj}, nil
}

// Pulse requests a single haptic event; errors are swallowed, matching the
// triggerGrain/Immediate "become no-ops when unavailable" contract rather
// than surfaced synchronously from a fire-and-forget call.
func (d *Device) Pulse(durationMS float64) {
	call := d.obj.Call(feedbackInterface+".TriggerEffect", 0, appID, "button-pressed")
	_ = call.Err
}

// Close releases the D-Bus connection.
func (d *Device) Close() error {
	return d.conn.Close()
}
