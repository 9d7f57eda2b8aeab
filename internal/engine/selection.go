package engine

import (
	"github.com/sensoryink/core/internal/hittest"
	"github.com/sensoryink/core/internal/point"
)

const hitToleranceScreenPx = 12.0 // constant on-screen margin, converted to world units by zoom

// SelectStroke implements selectStroke(x, y, additive): hit-tests world
// coordinates against strokes back-to-front.
func (e *Engine) SelectStroke(worldX, worldY float64, additive bool) bool {
	idx, ok := hittest.HitTestPoint(e.Document.Strokes, worldX, worldY, hitToleranceScreenPx/e.Camera.Zoom)
	if !ok {
		if !additive {
			e.Document.ClearSelection()
		}
		return false
	}
	e.Document.SetSelection([]int{idx}, additive)
	return true
}

// ClearSelection implements clearSelection.
func (e *Engine) ClearSelection() { e.Document.ClearSelection() }

// StartSelectionRect implements startSelectionRect.
func (e *Engine) StartSelectionRect(worldX, worldY float64) {
	e.selecting = true
	e.usingLasso = false
	e.rectStart = point.Point{X: worldX, Y: worldY}
	e.rectCurr = e.rectStart
}

// UpdateSelectionRect implements updateSelectionRect.
func (e *Engine) UpdateSelectionRect(worldX, worldY float64) {
	if !e.selecting || e.usingLasso {
		return
	}
	e.rectCurr = point.Point{X: worldX, Y: worldY}
}

// EndSelectionRect implements endSelectionRect(additive).
func (e *Engine) EndSelectionRect(additive bool) {
	if !e.selecting || e.usingLasso {
		return
	}
	e.selecting = false
	rect := point.BBox{
		MinX: minF(e.rectStart.X, e.rectCurr.X), MinY: minF(e.rectStart.Y, e.rectCurr.Y),
		MaxX: maxF(e.rectStart.X, e.rectCurr.X), MaxY: maxF(e.rectStart.Y, e.rectCurr.Y),
	}
	indices := hittest.RectSelect(e.Document.Strokes, rect)
	e.Document.SetSelection(indices, additive)
}

// CurrentSelectionRect reports the in-progress rect for the host UI to
// draw as a marquee overlay.
func (e *Engine) CurrentSelectionRect() (point.BBox, bool) {
	if !e.selecting || e.usingLasso {
		return point.BBox{}, false
	}
	return point.BBox{
		MinX: minF(e.rectStart.X, e.rectCurr.X), MinY: minF(e.rectStart.Y, e.rectCurr.Y),
		MaxX: maxF(e.rectStart.X, e.rectCurr.X), MaxY: maxF(e.rectStart.Y, e.rectCurr.Y),
	}, true
}

// StartLasso implements startLasso.
func (e *Engine) StartLasso(worldX, worldY float64) {
	e.selecting = true
	e.usingLasso = true
	e.lassoPoints = e.lassoPoints[:0]
	e.lassoPoints = append(e.lassoPoints, point.Point{X: worldX, Y: worldY})
}

// UpdateLasso implements updateLasso.
func (e *Engine) UpdateLasso(worldX, worldY float64) {
	if !e.selecting || !e.usingLasso {
		return
	}
	e.lassoPoints = append(e.lassoPoints, point.Point{X: worldX, Y: worldY})
}

// EndLasso implements endLasso(additive).
func (e *Engine) EndLasso(additive bool) {
	if !e.selecting || !e.usingLasso {
		return
	}
	e.selecting = false
	indices := hittest.LassoSelect(e.Document.Strokes, e.lassoPoints)
	e.Document.SetSelection(indices, additive)
}

// CurrentLasso reports the in-progress lasso polygon for overlay drawing.
func (e *Engine) CurrentLasso() ([]point.Point, bool) {
	if !e.selecting || !e.usingLasso {
		return nil, false
	}
	return e.lassoPoints, true
}

// StartMoveSelected implements startMoveSelected. The drag accumulates a
// live offset that is only committed to the document (as a single undo
// action) on EndMoveSelected; the host renderer draws selected strokes
// shifted by CurrentMoveOffset in the meantime.
func (e *Engine) StartMoveSelected(worldX, worldY float64) {
	e.moving = true
	e.moveLastX, e.moveLastY = worldX, worldY
	e.moveTotalDx, e.moveTotalDy = 0, 0
}

// UpdateMoveSelected implements updateMoveSelected.
func (e *Engine) UpdateMoveSelected(worldX, worldY float64) {
	if !e.moving {
		return
	}
	e.moveTotalDx += worldX - e.moveLastX
	e.moveTotalDy += worldY - e.moveLastY
	e.moveLastX, e.moveLastY = worldX, worldY
}

// CurrentMoveOffset reports the live, uncommitted drag offset.
func (e *Engine) CurrentMoveOffset() (dx, dy float64, active bool) {
	return e.moveTotalDx, e.moveTotalDy, e.moving
}

// EndMoveSelected implements endMoveSelected: commits the accumulated
// translation as a single undo action. Moves of at most 0.5 world-px are
// skipped entirely: no-op drags don't pollute the undo log.
func (e *Engine) EndMoveSelected() {
	if !e.moving {
		return
	}
	e.moving = false
	dx, dy := e.moveTotalDx, e.moveTotalDy
	if dx*dx+dy*dy <= 0.5*0.5 {
		return
	}
	e.Document.MoveIndices(e.Document.SelectedIndices(), dx, dy)
}

// DeleteSelected implements deleteSelected.
func (e *Engine) DeleteSelected() { e.Document.DeleteSelected() }

// ChangeSelectedColor implements changeSelectedColor(color).
func (e *Engine) ChangeSelectedColor(c point.Color) { e.Document.RecolorSelected(c) }

// SelectionHandles returns the eight resize handles for the current
// selection's bbox, if any strokes are selected.
func (e *Engine) SelectionHandles() ([hittest.HandleCount]hittest.Handle, bool) {
	bbox, ok := e.Document.SelectionBBox()
	if !ok {
		return [hittest.HandleCount]hittest.Handle{}, false
	}
	return hittest.Handles(bbox), true
}

// HitTestHandle returns the index of the resize handle within
// hitToleranceScreenPx/zoom of (worldX, worldY), if any.
func (e *Engine) HitTestHandle(worldX, worldY float64) (int, bool) {
	handles, ok := e.SelectionHandles()
	if !ok {
		return 0, false
	}
	tol := hitToleranceScreenPx / e.Camera.Zoom
	for i, h := range handles {
		dx, dy := h.X-worldX, h.Y-worldY
		if dx*dx+dy*dy <= tol*tol {
			return i, true
		}
	}
	return 0, false
}

// StartResizeHandle implements startResizeHandle(handleIndex): grabs a
// resize handle and fixes the opposite handle's position as the scale
// pivot. Like StartMoveSelected, the drag is tracked live and only
// committed to the document on EndResizeHandle.
func (e *Engine) StartResizeHandle(handleIndex int, worldX, worldY float64) bool {
	handles, ok := e.SelectionHandles()
	if !ok {
		return false
	}
	pivot := handles[handles[handleIndex].Opposite]
	e.resizing = true
	e.resizeHandle = handleIndex
	e.resizePivotX, e.resizePivotY = pivot.X, pivot.Y
	e.resizeStartX, e.resizeStartY = handles[handleIndex].X, handles[handleIndex].Y
	e.resizeSx, e.resizeSy = 1, 1
	return true
}

// UpdateResizeHandle implements updateResizeHandle: recomputes the live
// anisotropic scale factors from how far the dragged handle has moved
// from the pivot relative to its starting distance. An edge handle (N/S
// or E/W) sits on the pivot along one axis, so that axis's factor stays
// at 1 rather than dividing by zero.
func (e *Engine) UpdateResizeHandle(worldX, worldY float64) {
	if !e.resizing {
		return
	}
	if startDx := e.resizeStartX - e.resizePivotX; startDx != 0 {
		e.resizeSx = (worldX - e.resizePivotX) / startDx
	}
	if startDy := e.resizeStartY - e.resizePivotY; startDy != 0 {
		e.resizeSy = (worldY - e.resizePivotY) / startDy
	}
}

// CurrentResizeScale reports the live, uncommitted scale factors and
// pivot for the host renderer to draw a scaled preview without mutating
// the document.
func (e *Engine) CurrentResizeScale() (pivotX, pivotY, sx, sy float64, active bool) {
	return e.resizePivotX, e.resizePivotY, e.resizeSx, e.resizeSy, e.resizing
}

// EndResizeHandle implements endResizeHandle: commits the accumulated
// scale as a single undo action about the pivot fixed at
// StartResizeHandle. A drag that ends within 1% of identity scale on
// both axes is skipped, mirroring EndMoveSelected's no-op threshold for
// sub-pixel drags.
func (e *Engine) EndResizeHandle() {
	if !e.resizing {
		return
	}
	e.resizing = false
	sx, sy := e.resizeSx, e.resizeSy
	if abs(sx-1) <= 0.01 && abs(sy-1) <= 0.01 {
		return
	}
	e.Document.ScaleIndices(e.Document.SelectedIndices(), e.resizePivotX, e.resizePivotY, sx, sy)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
