package serialize

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/nfnt/resize"

	"github.com/sensoryink/core/internal/camera"
	"github.com/sensoryink/core/internal/geometry"
	"github.com/sensoryink/core/internal/grid"
	"github.com/sensoryink/core/internal/point"
	"github.com/sensoryink/core/internal/rendertarget"
)

// paperColor is the document's background fill.
var paperColor = point.Color{R: 0xf9, G: 0xf9, B: 0xf9}

const oversample = 2

// ExportImage renders the current visible view at 2x oversampling as
// paper -> grid -> strokes, and encodes it as PNG bytes.
func ExportImage(cam camera.Camera, gridType grid.Type, strokes []point.Stroke, viewportW, viewportH int) ([]byte, error) {
	img := renderView(cam, gridType, strokes, viewportW, viewportH, oversample)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportThumbnail renders and downsamples the view to at most maxDim on
// its longer side, using a Lanczos resample.
func ExportThumbnail(cam camera.Camera, gridType grid.Type, strokes []point.Stroke, viewportW, viewportH, maxDim int) ([]byte, error) {
	img := renderView(cam, gridType, strokes, viewportW, viewportH, 1)

	w, h := uint(maxDim), uint(0)
	if viewportH > viewportW {
		w, h = 0, uint(maxDim)
	}
	thumb := resize.Resize(w, h, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderView(cam camera.Camera, gridType grid.Type, strokes []point.Stroke, viewportW, viewportH, scale int) *image.RGBA {
	w, h := viewportW*scale, viewportH*scale
	target := rendertarget.NewImageTarget(w, h)
	target.SetTransform(cam.PanX, cam.PanY, cam.Zoom*float64(scale))

	target.Clear(paperColor)

	visible := cam.VisibleWorldRect(float64(viewportW), float64(viewportH))
	grid.Render(target, gridType, visible, cam.Zoom*float64(scale))

	for _, s := range strokes {
		drawStroke(target, s)
	}

	out := image.NewRGBA(target.Img.Bounds())
	draw.Draw(out, out.Bounds(), target.Img, image.Point{}, draw.Src)
	return out
}

func drawStroke(rt rendertarget.RenderTarget, s point.Stroke) {
	t := geometry.Tessellate(s)
	alpha := s.Config.Opacity

	if t.Disk != nil {
		rt.FillDisk(t.Disk.X, t.Disk.Y, t.Disk.Radius, s.Config.Color, alpha)
		return
	}
	for i := 1; i < len(t.Polyline); i++ {
		a, b := t.Polyline[i-1], t.Polyline[i]
		rt.StrokeSegment(a.X, a.Y, b.X, b.Y, (a.Width+b.Width)/2, s.Config.Color, alpha)
	}
}
