package point

import "testing"

func TestBoundingBoxEmpty(t *testing.T) {
	b := BoundingBox(nil)
	if b != (BBox{}) {
		t.Fatalf("empty points: got %+v, want zero value", b)
	}
}

func TestBoundingBoxSingleAndMultiple(t *testing.T) {
	pts := []Point{{X: 3, Y: 4}, {X: -1, Y: 10}, {X: 5, Y: -2}}
	b := BoundingBox(pts)
	if b.MinX != -1 || b.MaxX != 5 || b.MinY != -2 || b.MaxY != 10 {
		t.Fatalf("got %+v", b)
	}
}

func TestBBoxOverlaps(t *testing.T) {
	a := BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	touching := BBox{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}
	separate := BBox{MinX: 11, MinY: 11, MaxX: 20, MaxY: 20}

	if !a.Overlaps(touching) {
		t.Fatalf("touching boxes should overlap")
	}
	if a.Overlaps(separate) {
		t.Fatalf("separate boxes should not overlap")
	}
}

func TestBBoxContainsPoint(t *testing.T) {
	b := BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if !b.ContainsPoint(0, 0) || !b.ContainsPoint(10, 10) {
		t.Fatalf("inclusive bounds should contain their edges")
	}
	if b.ContainsPoint(10.1, 5) {
		t.Fatalf("point just outside the box should not be contained")
	}
}

func TestTranslatePreservesNonSpatialFields(t *testing.T) {
	pts := []Point{{X: 1, Y: 1, Pressure: 0.5, TimestampMS: 100, TiltX: 5, TiltY: -5}}
	out := Translate(pts, 10, -10)
	if out[0].X != 11 || out[0].Y != -9 {
		t.Fatalf("got %+v", out[0])
	}
	if out[0].Pressure != 0.5 || out[0].TimestampMS != 100 || out[0].TiltX != 5 || out[0].TiltY != -5 {
		t.Fatalf("non-spatial fields should be unchanged: got %+v", out[0])
	}
}

func TestScaleAboutPivotIsFixed(t *testing.T) {
	pts := []Point{{X: 20, Y: 20}}
	out := ScaleAbout(pts, 10, 10, 2, 2)
	if out[0].X != 30 || out[0].Y != 30 {
		t.Fatalf("got %+v", out[0])
	}

	pivotPts := []Point{{X: 10, Y: 10}}
	pivotOut := ScaleAbout(pivotPts, 10, 10, 3, 0.5)
	if pivotOut[0].X != 10 || pivotOut[0].Y != 10 {
		t.Fatalf("pivot point itself should not move: got %+v", pivotOut[0])
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 {
		t.Fatalf("below range should clamp to lo")
	}
	if Clamp(2, 0, 1) != 1 {
		t.Fatalf("above range should clamp to hi")
	}
	if Clamp(0.5, 0, 1) != 0.5 {
		t.Fatalf("in range should pass through")
	}
}
