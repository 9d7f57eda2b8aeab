package document

import "github.com/sensoryink/core/internal/point"

// UndoAction is the closed set of four action kinds logged by commits,
// plus ScaleAction for resize-by-handle.
type UndoAction interface {
	isUndoAction()
}

// AddStrokeAction records a committed stroke for undo (pop) / redo
// (re-append).
type AddStrokeAction struct {
	Stroke point.Stroke
}

// DeletedEntry is one (index, stroke) pair removed by a delete action.
type DeletedEntry struct {
	Index  int
	Stroke point.Stroke
}

// DeleteAction records strokes removed together (e.g. by deleteSelected or
// scratch-erase), sorted ascending by Index for reinsertion.
type DeleteAction struct {
	Entries []DeletedEntry
}

// RecoloredEntry is one stroke's prior color before a recolor commit.
type RecoloredEntry struct {
	Index    int
	OldColor point.Color
}

// RecolorAction records a batch color change.
type RecolorAction struct {
	Entries  []RecoloredEntry
	NewColor point.Color
}

// MoveAction records a batch translation in world units.
type MoveAction struct {
	Indices []int
	Dx, Dy  float64
}

// ScaledEntry captures a stroke's exact point geometry before and after a
// handle-driven anisotropic scale, so undo/redo are exact regardless of
// pivot math.
type ScaledEntry struct {
	Index           int
	OriginalPoints  []point.Point
	PostScalePoints []point.Point
}

// ScaleAction records a batch anisotropic scale about a pivot.
type ScaleAction struct {
	Entries []ScaledEntry
}

func (AddStrokeAction) isUndoAction() {}
func (DeleteAction) isUndoAction()    {}
func (RecolorAction) isUndoAction()   {}
func (MoveAction) isUndoAction()      {}
func (ScaleAction) isUndoAction()     {}
