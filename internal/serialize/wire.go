// Package serialize implements the exporter/serializer: a
// versioned JSON round-trip of the document's strokes, and a raster
// (PNG) export of the current visible view.
//
// The wire struct follows the usual save-state idiom: a small versioned
// struct the engine deep-copies into/out of, rather than aliasing live
// document memory, adapted here from savestate bytes to JSON.
package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/sensoryink/core/internal/diag"
	"github.com/sensoryink/core/internal/point"
)

const wireVersion = 1

// WirePoint is the JSON shape of a point.Point. Field names mirror the
// ingested pointer event's camelCase convention.
type WirePoint struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Pressure    float64 `json:"pressure"`
	TimestampMS float64 `json:"timestampMs"`
	TiltX       float64 `json:"tiltX"`
	TiltY       float64 `json:"tiltY"`
}

// WireColor is the JSON shape of a point.Color.
type WireColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// WireConfig is the JSON shape of a point.RenderConfig.
type WireConfig struct {
	Color             WireColor `json:"color"`
	Opacity           float64   `json:"opacity"`
	BaseStrokeWidth   float64   `json:"baseStrokeWidth"`
	MinWidth          float64   `json:"minWidth"`
	MaxWidth          float64   `json:"maxWidth"`
	Smoothness        float64   `json:"smoothness"`
	Streamline        float64   `json:"streamline"`
	PressureInfluence float64   `json:"pressureInfluence"`
	VelocityInfluence float64   `json:"velocityInfluence"`
}

// WireStroke is one entry of the strokes array.
type WireStroke struct {
	Config WireConfig  `json:"config"`
	Points []WirePoint `json:"points"`
}

// SerializedDrawing is the top-level exportStrokes()/loadStrokes() shape.
type SerializedDrawing struct {
	Version  int          `json:"version"`
	GridType string       `json:"gridType"`
	Strokes  []WireStroke `json:"strokes"`
}

func toWirePoint(p point.Point) WirePoint {
	return WirePoint{X: p.X, Y: p.Y, Pressure: p.Pressure, TimestampMS: p.TimestampMS, TiltX: p.TiltX, TiltY: p.TiltY}
}

func fromWirePoint(w WirePoint) point.Point {
	return point.Point{X: w.X, Y: w.Y, Pressure: w.Pressure, TimestampMS: w.TimestampMS, TiltX: w.TiltX, TiltY: w.TiltY}
}

func toWireConfig(c point.RenderConfig) WireConfig {
	return WireConfig{
		Color:             WireColor{R: c.Color.R, G: c.Color.G, B: c.Color.B},
		Opacity:           c.Opacity,
		BaseStrokeWidth:   c.BaseStrokeWidth,
		MinWidth:          c.MinWidth,
		MaxWidth:          c.MaxWidth,
		Smoothness:        c.Smoothness,
		Streamline:        c.Streamline,
		PressureInfluence: c.PressureInfluence,
		VelocityInfluence: c.VelocityInfluence,
	}
}

func fromWireConfig(w WireConfig) point.RenderConfig {
	return point.RenderConfig{
		Color:             point.Color{R: w.Color.R, G: w.Color.G, B: w.Color.B},
		Opacity:           w.Opacity,
		BaseStrokeWidth:   w.BaseStrokeWidth,
		MinWidth:          w.MinWidth,
		MaxWidth:          w.MaxWidth,
		Smoothness:        w.Smoothness,
		Streamline:        w.Streamline,
		PressureInfluence: w.PressureInfluence,
		VelocityInfluence: w.VelocityInfluence,
	}
}

// ExportStrokes deep-copies strokes into a versioned SerializedDrawing.
func ExportStrokes(strokes []point.Stroke, gridType string) SerializedDrawing {
	out := SerializedDrawing{Version: wireVersion, GridType: gridType, Strokes: make([]WireStroke, len(strokes))}
	for i, s := range strokes {
		ws := WireStroke{Config: toWireConfig(s.Config), Points: make([]WirePoint, len(s.Points))}
		for j, p := range s.Points {
			ws.Points[j] = toWirePoint(p)
		}
		out.Strokes[i] = ws
	}
	return out
}

// LoadStrokes deep-copies a SerializedDrawing back into strokes and the
// grid type it carried.
func LoadStrokes(d SerializedDrawing) (strokes []point.Stroke, gridType string, err error) {
	if d.Version != wireVersion {
		return nil, "", diag.Wrap(diag.ErrInvalidSerialization, fmt.Sprintf("unsupported version %d", d.Version))
	}
	strokes = make([]point.Stroke, len(d.Strokes))
	for i, ws := range d.Strokes {
		s := point.Stroke{Config: fromWireConfig(ws.Config), Points: make([]point.Point, len(ws.Points))}
		for j, wp := range ws.Points {
			s.Points[j] = fromWirePoint(wp)
		}
		strokes[i] = s
	}
	return strokes, d.GridType, nil
}

// Marshal serializes a drawing to JSON bytes.
func Marshal(d SerializedDrawing) ([]byte, error) {
	return json.Marshal(d)
}

// Unmarshal parses JSON bytes into a SerializedDrawing, wrapping malformed
// input as diag.ErrInvalidSerialization.
func Unmarshal(data []byte) (SerializedDrawing, error) {
	var d SerializedDrawing
	if err := json.Unmarshal(data, &d); err != nil {
		return SerializedDrawing{}, diag.Wrap(diag.ErrInvalidSerialization, err.Error())
	}
	return d, nil
}
