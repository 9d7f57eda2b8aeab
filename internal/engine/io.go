package engine

import (
	"github.com/sensoryink/core/internal/grid"
	"github.com/sensoryink/core/internal/serialize"
)

func gridTypeFromString(s string) grid.Type {
	switch grid.Type(s) {
	case grid.Square, grid.Dot, grid.Ruled, grid.Isometric, grid.Graph, grid.Hex:
		return grid.Type(s)
	default:
		return grid.None
	}
}

// ExportImage implements exportImage -> PNG bytes.
func (e *Engine) ExportImage() ([]byte, error) {
	return serialize.ExportImage(*e.Camera, e.GridType, e.Document.Strokes, int(e.viewportW), int(e.viewportH))
}

// ExportThumbnail renders a bounded-dimension PNG thumbnail of the
// current view, supplemental to the core export verbs.
func (e *Engine) ExportThumbnail(maxDim int) ([]byte, error) {
	return serialize.ExportThumbnail(*e.Camera, e.GridType, e.Document.Strokes, int(e.viewportW), int(e.viewportH), maxDim)
}

// ExportStrokes implements exportStrokes -> SerializedDrawing.
func (e *Engine) ExportStrokes() serialize.SerializedDrawing {
	return serialize.ExportStrokes(e.Document.Strokes, string(e.GridType))
}

// LoadStrokes implements loadStrokes(SerializedDrawing): replaces the
// document, clears undo/redo/selection, and sets gridType.
func (e *Engine) LoadStrokes(d serialize.SerializedDrawing) error {
	strokes, gridType, err := serialize.LoadStrokes(d)
	if err != nil {
		return err
	}
	e.Document.ClearAll()
	e.Document.Strokes = strokes
	e.GridType = gridTypeFromString(gridType)
	return nil
}
