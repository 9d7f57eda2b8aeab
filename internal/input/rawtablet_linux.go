//go:build linux

package input

import (
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/sensoryink/core/internal/diag"
)

// Linux input event/key/axis codes the tablet source cares about.
// Grounded on /usr/include/linux/input-event-codes.h's stylus subset.
const (
	evSyn = 0x00
	evKey = 0x01
	evAbs = 0x03

	btnTouch      = 0x14a
	btnToolPen    = 0x140
	btnToolRubber = 0x141

	absX        = 0x00
	absY        = 0x01
	absPressure = 0x18
	absTiltX    = 0x1a
	absTiltY    = 0x1b

	synReport = 0x00
)

type absInfo struct {
	Value, Min, Max, Fuzz, Flat, Resolution int32
}

type axisRanges struct {
	xMin, xMax   int32
	yMin, yMax   int32
	pMin, pMax   int32
	tXMin, tXMax int32
	tYMin, tYMax int32
}

const (
	iocNRBits, iocTypeBits, iocSizeBits, iocDirBits = 8, 8, 14, 2
	iocNRShift                                       = 0
	iocTypeShift                                     = iocNRShift + iocNRBits
	iocSizeShift                                     = iocTypeShift + iocTypeBits
	iocDirShift                                      = iocSizeShift + iocSizeBits
	iocRead                                           = 2
)

func ioc(dir, typ, nr, size uint32) uintptr {
	return uintptr((dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNRShift) | (size << iocSizeShift))
}

func evioCGAbs(axis int) uintptr {
	return ioc(iocRead, uint32('E'), uint32(0x40+axis), uint32(unsafe.Sizeof(absInfo{})))
}

func getAbsInfo(fd int, axis int) (absInfo, error) {
	var info absInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), evioCGAbs(axis), uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return absInfo{}, errno
	}
	return info, nil
}

func getRanges(fd int) axisRanges {
	r := axisRanges{xMax: 1, yMax: 1, pMax: 4096, tXMin: -90, tXMax: 90, tYMin: -90, tYMax: 90}
	if v, err := getAbsInfo(fd, absX); err == nil {
		r.xMin, r.xMax = v.Min, v.Max
	}
	if v, err := getAbsInfo(fd, absY); err == nil {
		r.yMin, r.yMax = v.Min, v.Max
	}
	if v, err := getAbsInfo(fd, absPressure); err == nil {
		r.pMin, r.pMax = v.Min, v.Max
	}
	if v, err := getAbsInfo(fd, absTiltX); err == nil {
		r.tXMin, r.tXMax = v.Min, v.Max
	}
	if v, err := getAbsInfo(fd, absTiltY); err == nil {
		r.tYMin, r.tYMax = v.Min, v.Max
	}
	return r
}

func scale(v, min, max int32) float64 {
	if max == min {
		return 0
	}
	return float64(v-min) / float64(max-min)
}

// eventParser reassembles Linux input_event structs from a byte stream;
// the struct layout differs by 16 vs 24 bytes depending on the kernel's
// timeval width.
type eventParser struct {
	buf []byte
	sz  int
}

func (p *eventParser) feed(chunk []byte, cb func(etype, code uint16, value int32)) {
	p.buf = append(p.buf, chunk...)
	if p.sz == 0 {
		switch {
		case len(p.buf) >= 48 && len(p.buf)%24 == 0:
			p.sz = 24
		case len(p.buf) >= 32 && len(p.buf)%16 == 0:
			p.sz = 16
		case len(p.buf) >= 24:
			p.sz = 24
		}
	}
	for p.sz != 0 && len(p.buf) >= p.sz {
		ev := p.buf[:p.sz]
		p.buf = p.buf[p.sz:]
		var etype, code uint16
		var value int32
		if p.sz == 24 {
			etype = binary.LittleEndian.Uint16(ev[16:18])
			code = binary.LittleEndian.Uint16(ev[18:20])
			value = int32(binary.LittleEndian.Uint32(ev[20:24]))
		} else {
			etype = binary.LittleEndian.Uint16(ev[8:10])
			code = binary.LittleEndian.Uint16(ev[10:12])
			value = int32(binary.LittleEndian.Uint32(ev[12:16]))
		}
		cb(etype, code, value)
	}
}

// RawTabletSource reads a Linux evdev stylus device directly, bypassing
// the host toolkit's pointer events entirely: a second, optional
// pointer-event producer feeding the same Dispatcher.
type RawTabletSource struct {
	f      *os.File
	ranges axisRanges
	parser eventParser

	x, y, pressure, tiltX, tiltY int32
	down                         bool
}

// OpenRawTablet opens a /dev/input/eventN device node for direct stylus
// reads. Returns diag.ErrSurfaceUnavailable if the device can't be
// opened (no permission, no such tablet).
func OpenRawTablet(devicePath string) (*RawTabletSource, error) {
	f, err := os.OpenFile(devicePath, os.O_RDONLY, 0)
	if err != nil {
		return nil, diag.Wrap(diag.ErrSurfaceUnavailable, fmt.Sprintf("open %s: %v", devicePath, err))
	}
	return &RawTabletSource{f: f, ranges: getRanges(int(f.Fd()))}, nil
}

// Close releases the device file.
func (s *RawTabletSource) Close() error { return s.f.Close() }

// ReadEvents blocks reading one chunk and emits zero or more completed
// RawEvents (one per SYN_REPORT) via emit, in arrival order.
func (s *RawTabletSource) ReadEvents(emit func(phase Phase, ev RawEvent)) error {
	buf := make([]byte, 4096)
	n, err := s.f.Read(buf)
	if err != nil {
		return err
	}

	now := 0.0
	s.parser.feed(buf[:n], func(etype, code uint16, value int32) {
		switch etype {
		case evAbs:
			switch code {
			case absX:
				s.x = value
			case absY:
				s.y = value
			case absPressure:
				s.pressure = value
			case absTiltX:
				s.tiltX = value
			case absTiltY:
				s.tiltY = value
			}
		case evKey:
			if code == btnToolPen || code == btnToolRubber || code == btnTouch {
				s.down = value != 0
			}
		case evSyn:
			if code != synReport {
				return
			}
			phase := Move
			if s.down {
				phase = Down
			} else {
				phase = Up
			}
			emit(phase, RawEvent{
				PointerID:   1,
				PointerType: Pen,
				ClientX:     scale(s.x, s.ranges.xMin, s.ranges.xMax),
				ClientY:     scale(s.y, s.ranges.yMin, s.ranges.yMax),
				Pressure:    scale(s.pressure, s.ranges.pMin, s.ranges.pMax),
				TiltX:       scale(s.tiltX, s.ranges.tXMin, s.ranges.tXMax)*180 - 90,
				TiltY:       scale(s.tiltY, s.ranges.tYMin, s.ranges.tYMax)*180 - 90,
				TimestampMS: now,
			})
		}
	})
	return nil
}
