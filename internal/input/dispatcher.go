package input

// StrokeSink is the engine's drawing surface: the dispatcher drives
// exactly the startStroke/addPoint/endStroke sequence with well-defined
// ordering and cancellation guarantees.
type StrokeSink interface {
	StartStroke(x, y, pressure, tiltX, tiltY, timestampMS float64)
	AddPoint(x, y, pressure, tiltX, tiltY, timestampMS float64)
	EndStroke()
}

// GestureSink receives touch-pointer samples for multi-touch gesture
// tracking (pan/zoom gestures live above this package; this only routes).
type GestureSink interface {
	TouchDown(pointerID uint32, x, y float64)
	TouchMove(pointerID uint32, x, y float64)
	TouchUp(pointerID uint32)
}

// Dispatcher enforces the exclusive drawing-pointer lock and the
// touch-multi-set policy: only one
// pen pointer draws at a time, additional pen-downs force-cleanup the
// previous stroke first, and touch pointers never draw.
type Dispatcher struct {
	strokes  StrokeSink
	gestures GestureSink

	activePen   uint32
	havePen     bool
	touchActive map[uint32]struct{}
}

// New builds a Dispatcher driving strokes and gestures.
func New(strokes StrokeSink, gestures GestureSink) *Dispatcher {
	return &Dispatcher{
		strokes:     strokes,
		gestures:    gestures,
		touchActive: make(map[uint32]struct{}),
	}
}

// Dispatch routes one ingested pointer event (plus any coalesced
// sub-samples, processed in reported order).
func (d *Dispatcher) Dispatch(phase Phase, ev RawEvent) {
	for _, sub := range ev.Coalesced {
		d.route(Move, sub)
	}
	d.route(phase, ev)
}

func (d *Dispatcher) route(phase Phase, ev RawEvent) {
	switch ev.PointerType {
	case Pen, Mouse:
		d.routeDrawing(phase, ev)
	case Touch:
		d.routeTouch(phase, ev)
	}
}

func (d *Dispatcher) routeDrawing(phase Phase, ev RawEvent) {
	switch phase {
	case Down:
		if d.havePen && d.activePen != ev.PointerID {
			// Additional pen-down: force cleanup of the previous stroke
			// before starting the new one (exclusive lock).
			d.strokes.EndStroke()
		}
		d.activePen = ev.PointerID
		d.havePen = true
		d.strokes.StartStroke(ev.ClientX, ev.ClientY, ev.Pressure, ev.TiltX, ev.TiltY, ev.TimestampMS)

	case Move:
		if !d.havePen || d.activePen != ev.PointerID {
			return
		}
		d.strokes.AddPoint(ev.ClientX, ev.ClientY, ev.Pressure, ev.TiltX, ev.TiltY, ev.TimestampMS)

	case Up, Cancel:
		if !d.havePen || d.activePen != ev.PointerID {
			return
		}
		d.strokes.EndStroke()
		d.havePen = false
	}
}

func (d *Dispatcher) routeTouch(phase Phase, ev RawEvent) {
	if d.gestures == nil {
		return
	}
	switch phase {
	case Down:
		d.touchActive[ev.PointerID] = struct{}{}
		d.gestures.TouchDown(ev.PointerID, ev.ClientX, ev.ClientY)
	case Move:
		if _, ok := d.touchActive[ev.PointerID]; !ok {
			return
		}
		d.gestures.TouchMove(ev.PointerID, ev.ClientX, ev.ClientY)
	case Up, Cancel:
		if _, ok := d.touchActive[ev.PointerID]; !ok {
			return
		}
		delete(d.touchActive, ev.PointerID)
		d.gestures.TouchUp(ev.PointerID)
	}
}

// ActivePointer reports the exclusive drawing pointer, if any.
func (d *Dispatcher) ActivePointer() (id uint32, active bool) {
	return d.activePen, d.havePen
}
