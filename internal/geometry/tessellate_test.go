package geometry

import (
	"testing"

	"github.com/sensoryink/core/internal/point"
)

func cfg() point.RenderConfig {
	return point.RenderConfig{
		BaseStrokeWidth:   10,
		MinWidth:          1,
		MaxWidth:          20,
		Smoothness:        0.5,
		PressureInfluence: 0.5,
		VelocityInfluence: 0.3,
	}
}

func TestTessellateSinglePointYieldsDisk(t *testing.T) {
	s := point.Stroke{Points: []point.Point{{X: 5, Y: 5, Pressure: 1}}, Config: cfg()}
	out := Tessellate(s)
	if out.Disk == nil || out.Polyline != nil {
		t.Fatalf("single point stroke should produce a disk, got %+v", out)
	}
	if out.Disk.X != 5 || out.Disk.Y != 5 || out.Disk.Radius <= 0 {
		t.Fatalf("got disk %+v", out.Disk)
	}
}

func TestTessellateShortStrokeYieldsOneVertexPerPoint(t *testing.T) {
	pts := []point.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	s := point.Stroke{Points: pts, Config: cfg()}
	out := Tessellate(s)
	if out.Polyline == nil || out.Disk != nil {
		t.Fatalf("2-3 point stroke should produce a polyline, got %+v", out)
	}
	if len(out.Polyline) != len(pts) {
		t.Fatalf("got %d vertices, want %d", len(out.Polyline), len(pts))
	}
}

func TestTessellateLongStrokeSubdividesAndStaysOnEndpoints(t *testing.T) {
	pts := make([]point.Point, 6)
	for i := range pts {
		pts[i] = point.Point{X: float64(i) * 20, Y: 0, Pressure: 0.5, TimestampMS: float64(i) * 16}
	}
	s := point.Stroke{Points: pts, Config: cfg()}
	out := Tessellate(s)

	if len(out.Polyline) <= len(pts) {
		t.Fatalf("curve tessellation should subdivide beyond the raw point count, got %d vertices for %d points", len(out.Polyline), len(pts))
	}

	first := out.Polyline[0]
	last := out.Polyline[len(out.Polyline)-1]
	if first.X != pts[0].X || first.Y != pts[0].Y {
		t.Fatalf("first vertex should sit on the first raw point, got %+v", first)
	}
	if last.X != pts[len(pts)-1].X || last.Y != pts[len(pts)-1].Y {
		t.Fatalf("last vertex should sit on the last raw point, got %+v", last)
	}
}

func TestTessellateTaperNarrowsEnds(t *testing.T) {
	pts := make([]point.Point, 20)
	for i := range pts {
		pts[i] = point.Point{X: float64(i) * 20, Y: 0, Pressure: 1, TimestampMS: float64(i) * 16}
	}
	c := cfg()
	s := point.Stroke{Points: pts, Config: c}
	out := Tessellate(s)

	first := out.Polyline[0]
	middle := out.Polyline[len(out.Polyline)/2]
	if first.Width >= middle.Width {
		t.Fatalf("tapered first vertex should be narrower than the untapered middle: first=%v middle=%v", first.Width, middle.Width)
	}
}
