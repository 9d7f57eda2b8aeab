package rendertarget

import (
	"image"
	"image/color"
	"math"

	"github.com/sensoryink/core/internal/point"
)

// ImageTarget is a software RenderTarget backed by an *image.NRGBA, used by
// the raster exporter (internal/serialize) and by tests that need to
// observe pixels without a windowing toolkit.
type ImageTarget struct {
	Img              *image.NRGBA
	panX, panY, zoom float64
}

// NewImageTarget allocates a w x h NRGBA target with the identity transform.
func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewNRGBA(image.Rect(0, 0, w, h)), zoom: 1}
}

func (t *ImageTarget) SetTransform(panX, panY, zoom float64) {
	t.panX, t.panY, t.zoom = panX, panY, zoom
}

func (t *ImageTarget) toScreen(x, y float64) (float64, float64) {
	return (x + t.panX) * t.zoom, (y + t.panY) * t.zoom
}

func colorWithAlpha(c point.Color, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(point.Clamp(alpha, 0, 1) * 255)}
}

func (t *ImageTarget) Clear(c point.Color) {
	bg := colorWithAlpha(c, 1)
	b := t.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.Img.SetNRGBA(x, y, bg)
		}
	}
}

func (t *ImageTarget) FillRect(x0, y0, x1, y1 float64, c point.Color, alpha float64) {
	sx0, sy0 := t.toScreen(x0, y0)
	sx1, sy1 := t.toScreen(x1, y1)
	col := colorWithAlpha(c, alpha)
	for y := int(math.Floor(sy0)); y < int(math.Ceil(sy1)); y++ {
		for x := int(math.Floor(sx0)); x < int(math.Ceil(sx1)); x++ {
			t.blend(x, y, col)
		}
	}
}

func (t *ImageTarget) StrokeSegment(x0, y0, x1, y1, width float64, c point.Color, alpha float64) {
	sx0, sy0 := t.toScreen(x0, y0)
	sx1, sy1 := t.toScreen(x1, y1)
	sw := math.Max(1, width*t.zoom)
	col := colorWithAlpha(c, alpha)

	length := math.Hypot(sx1-sx0, sy1-sy0)
	steps := int(length) + 1
	halfW := sw / 2
	for i := 0; i <= steps; i++ {
		u := float64(i) / float64(max(steps, 1))
		cx := sx0 + (sx1-sx0)*u
		cy := sy0 + (sy1-sy0)*u
		t.fillDiskScreen(cx, cy, halfW, col)
	}
}

func (t *ImageTarget) FillDisk(x, y, radius float64, c point.Color, alpha float64) {
	sx, sy := t.toScreen(x, y)
	t.fillDiskScreen(sx, sy, radius*t.zoom, colorWithAlpha(c, alpha))
}

func (t *ImageTarget) fillDiskScreen(cx, cy, radius float64, col color.NRGBA) {
	r2 := radius * radius
	for y := int(math.Floor(cy - radius)); y <= int(math.Ceil(cy+radius)); y++ {
		for x := int(math.Floor(cx - radius)); x <= int(math.Ceil(cx+radius)); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				t.blend(x, y, col)
			}
		}
	}
}

func (t *ImageTarget) blend(x, y int, col color.NRGBA) {
	if !image.Pt(x, y).In(t.Img.Bounds()) {
		return
	}
	if col.A == 255 {
		t.Img.SetNRGBA(x, y, col)
		return
	}
	dst := t.Img.NRGBAAt(x, y)
	a := float64(col.A) / 255
	blended := color.NRGBA{
		R: uint8(float64(col.R)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(col.G)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(col.B)*a + float64(dst.B)*(1-a)),
		A: uint8(math.Min(255, float64(col.A)+float64(dst.A)*(1-a))),
	}
	t.Img.SetNRGBA(x, y, blended)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
