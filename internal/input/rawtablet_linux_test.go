//go:build linux

package input

import "testing"

func TestScaleMapsValueIntoUnitRange(t *testing.T) {
	if got := scale(50, 0, 100); got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
	if got := scale(0, 0, 100); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
	if got := scale(100, 0, 100); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestScaleDegenerateRangeIsZero(t *testing.T) {
	if got := scale(5, 3, 3); got != 0 {
		t.Fatalf("expected a degenerate min==max range to return 0, got %v", got)
	}
}

func TestEvioCGAbsEncodesReadDirection(t *testing.T) {
	req := evioCGAbs(absX)
	dir := (req >> iocDirShift) & ((1 << iocDirBits) - 1)
	if dir != iocRead {
		t.Fatalf("expected the read direction bits set, got %v", dir)
	}
}

func TestEventParserDetectsSixteenByteLayout(t *testing.T) {
	var p eventParser
	// 16-byte input_event: 8 bytes timeval + u16 type + u16 code + i32 value.
	ev := make([]byte, 16)
	ev[8], ev[9] = 0x01, 0x00 // type = evKey (little-endian u16)
	ev[10], ev[11] = 0x4a, 0x01 // code = btnTouch
	ev[12], ev[13], ev[14], ev[15] = 0x01, 0x00, 0x00, 0x00 // value = 1

	var got []uint16
	p.feed(ev, func(etype, code uint16, value int32) {
		got = append(got, etype, code)
		if value != 1 {
			t.Fatalf("expected value 1, got %v", value)
		}
	})
	if len(got) != 2 || got[0] != evKey || got[1] != btnTouch {
		t.Fatalf("expected one decoded evKey/btnTouch event, got %v", got)
	}
}

func TestEventParserBuffersPartialEvents(t *testing.T) {
	var p eventParser
	var callCount int
	p.feed(make([]byte, 10), func(etype, code uint16, value int32) { callCount++ })
	if callCount != 0 {
		t.Fatalf("expected a partial 10-byte chunk to buffer without emitting")
	}
}

func TestSimulatedAbsAndSynRoutingScalesAxisValues(t *testing.T) {
	s := &RawTabletSource{ranges: axisRanges{xMax: 100, yMax: 100, pMax: 100}}
	var got []RawEvent
	var phases []Phase

	feed := func(etype, code uint16, value int32) {
		switch etype {
		case evAbs:
			switch code {
			case absX:
				s.x = value
			case absY:
				s.y = value
			case absPressure:
				s.pressure = value
			}
		case evKey:
			if code == btnToolPen {
				s.down = value != 0
			}
		case evSyn:
			phase := Move
			if s.down {
				phase = Down
			}
			phases = append(phases, phase)
			got = append(got, RawEvent{
				ClientX:  scale(s.x, s.ranges.xMin, s.ranges.xMax),
				ClientY:  scale(s.y, s.ranges.yMin, s.ranges.yMax),
				Pressure: scale(s.pressure, s.ranges.pMin, s.ranges.pMax),
			})
		}
	}

	feed(evAbs, absX, 50)
	feed(evAbs, absY, 25)
	feed(evAbs, absPressure, 80)
	feed(evKey, btnToolPen, 1)
	feed(evSyn, synReport, 0)

	if len(got) != 1 || phases[0] != Down {
		t.Fatalf("expected one Down-phase event from the simulated stream, got %+v phases=%v", got, phases)
	}
	if got[0].ClientX != 0.5 || got[0].ClientY != 0.25 || got[0].Pressure != 0.8 {
		t.Fatalf("expected scaled axis values, got %+v", got[0])
	}
}
