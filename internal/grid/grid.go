// Package grid renders the seven world-space grid backgrounds
// against the visible world rectangle only, stroked at hairline width
// (1/zoom) regardless of camera zoom.
package grid

import (
	"math"

	"github.com/sensoryink/core/internal/point"
	"github.com/sensoryink/core/internal/rendertarget"
)

// Type enumerates the supported grid styles.
type Type string

const (
	None      Type = "none"
	Square    Type = "square"
	Dot       Type = "dot"
	Ruled     Type = "ruled"
	Isometric Type = "isometric"
	Graph     Type = "graph"
	Hex       Type = "hex"
)

// Cell is the common world cell size for all grid styles.
const Cell = 40.0

var (
	gridLineColor  = point.Color{R: 200, G: 200, B: 200}
	ruledLineColor = point.Color{R: 220, G: 80, B: 80}
	minorLineColor = point.Color{R: 230, G: 230, B: 230}
)

// Render draws gridType's lines/dots within visible (world coordinates),
// stroked/filled at hairline widths scaled by 1/zoom so they stay 1px on
// screen.
func Render(rt rendertarget.RenderTarget, gridType Type, visible point.BBox, zoom float64) {
	hairline := 1 / zoom
	switch gridType {
	case None:
		return
	case Square:
		renderSquare(rt, visible, hairline, Cell, gridLineColor)
	case Dot:
		renderDots(rt, visible, 1.5/zoom, gridLineColor)
	case Ruled:
		renderRuled(rt, visible, hairline)
	case Isometric:
		renderIsometric(rt, visible, hairline)
	case Graph:
		renderSquare(rt, visible, hairline, Cell/4, minorLineColor)
		renderSquare(rt, visible, hairline, Cell, gridLineColor)
	case Hex:
		renderHex(rt, visible, hairline)
	}
}

func firstMultiple(lo, step float64) float64 {
	return math.Floor(lo/step) * step
}

func renderSquare(rt rendertarget.RenderTarget, visible point.BBox, w, cell float64, col point.Color) {
	for x := firstMultiple(visible.MinX, cell); x <= visible.MaxX; x += cell {
		rt.StrokeSegment(x, visible.MinY, x, visible.MaxY, w, col, 1)
	}
	for y := firstMultiple(visible.MinY, cell); y <= visible.MaxY; y += cell {
		rt.StrokeSegment(visible.MinX, y, visible.MaxX, y, w, col, 1)
	}
}

func renderDots(rt rendertarget.RenderTarget, visible point.BBox, radius float64, col point.Color) {
	for x := firstMultiple(visible.MinX, Cell); x <= visible.MaxX; x += Cell {
		for y := firstMultiple(visible.MinY, Cell); y <= visible.MaxY; y += Cell {
			rt.FillDisk(x, y, radius, col, 1)
		}
	}
}

func renderRuled(rt rendertarget.RenderTarget, visible point.BBox, w float64) {
	for y := firstMultiple(visible.MinY, Cell); y <= visible.MaxY; y += Cell {
		rt.StrokeSegment(visible.MinX, y, visible.MaxX, y, w, gridLineColor, 1)
	}
	marginX := 2 * Cell
	rt.StrokeSegment(marginX, visible.MinY, marginX, visible.MaxY, w, ruledLineColor, 0.3)
}

func renderIsometric(rt rendertarget.RenderTarget, visible point.BBox, w float64) {
	spacing := Cell * math.Sqrt(3) / 2
	for y := firstMultiple(visible.MinY, spacing); y <= visible.MaxY; y += spacing {
		rt.StrokeSegment(visible.MinX, y, visible.MaxX, y, w, gridLineColor, 1)
	}

	// Diagonals at +-60 degrees, stepped along x by the cell size so the
	// whole visible rect is covered regardless of pan.
	tan60 := math.Tan(60 * math.Pi / 180)
	span := visible.MaxY - visible.MinY
	for x := firstMultiple(visible.MinX-span/tan60, Cell); x <= visible.MaxX+span/tan60; x += Cell {
		rt.StrokeSegment(x, visible.MinY, x+span/tan60, visible.MaxY, w, gridLineColor, 1)
		rt.StrokeSegment(x, visible.MinY, x-span/tan60, visible.MaxY, w, gridLineColor, 1)
	}
}

func renderHex(rt rendertarget.RenderTarget, visible point.BBox, w float64) {
	radius := 0.6 * Cell
	rowSpacing := 1.5 * radius
	hexWidth := math.Sqrt(3) * radius

	row := 0
	for cy := firstMultiple(visible.MinY, rowSpacing); cy <= visible.MaxY+rowSpacing; cy += rowSpacing {
		offset := 0.0
		if row%2 == 1 {
			offset = hexWidth / 2
		}
		for cx := firstMultiple(visible.MinX, hexWidth) - offset; cx <= visible.MaxX+hexWidth; cx += hexWidth {
			drawHexOutline(rt, cx, cy, radius, w)
		}
		row++
	}
}

func drawHexOutline(rt rendertarget.RenderTarget, cx, cy, radius, w float64) {
	var px, py float64
	for i := 0; i <= 6; i++ {
		angle := math.Pi/2 + float64(i)*math.Pi/3
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i > 0 {
			rt.StrokeSegment(px, py, x, y, w, gridLineColor, 1)
		}
		px, py = x, y
	}
}
