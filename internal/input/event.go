// Package input implements the pointer dispatcher: routing
// ingested pointer events to stroke start/add/end calls under the
// engine's exclusive-pen-lock and multi-touch-gesture resource policy.
package input

// PointerType names the ingested pointer's device class.
type PointerType int

const (
	Pen PointerType = iota
	Mouse
	Touch
)

// RawEvent mirrors the host toolkit's ingested pointer event, with
// client coordinates already relative to the canvas's bounding rect.
type RawEvent struct {
	PointerID   uint32
	PointerType PointerType
	ClientX     float64
	ClientY     float64
	Pressure    float64
	TiltX       float64
	TiltY       float64
	TimestampMS float64
	Coalesced   []RawEvent
}

// Phase names where in a pointer's lifecycle an event falls.
type Phase int

const (
	Down Phase = iota
	Move
	Up
	Cancel
)
