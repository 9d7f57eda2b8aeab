// Package document implements the editable drawing: an ordered stroke list,
// selection set, and undo/redo action log.
package document

import (
	"sort"

	"github.com/sensoryink/core/internal/point"
)

// ToolMode selects how pen/mouse pointer samples are routed.
type ToolMode int

const (
	ToolDraw ToolMode = iota
	ToolSelect
)

// Document is the ordered list of strokes plus selection and undo/redo logs.
// Render order is list order: later strokes paint over earlier ones.
type Document struct {
	Strokes   []point.Stroke
	Selection map[int]struct{}
	ToolMode  ToolMode

	undoLog []UndoAction
	redoLog []UndoAction
}

// New returns an empty document in draw mode.
func New() *Document {
	return &Document{Selection: make(map[int]struct{})}
}

// commit pushes a new action onto the undo log and clears the redo log: any
// new user action invalidates whatever was undone before it.
func (d *Document) commit(a UndoAction) {
	d.undoLog = append(d.undoLog, a)
	d.redoLog = nil
}

// AddStroke appends a stroke and logs an addStroke action.
func (d *Document) AddStroke(s point.Stroke) {
	d.Strokes = append(d.Strokes, s)
	d.commit(AddStrokeAction{Stroke: s})
}

// DeleteIndices removes the given stroke indices (order-independent
// input), clears them from the selection, and logs one delete action
// carrying (index, stroke) pairs sorted ascending so undo can reinsert them
// in original order.
func (d *Document) DeleteIndices(indices []int) {
	if len(indices) == 0 {
		return
	}
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)

	removed := make([]DeletedEntry, 0, len(sorted))
	for _, idx := range sorted {
		if idx < 0 || idx >= len(d.Strokes) {
			continue
		}
		removed = append(removed, DeletedEntry{Index: idx, Stroke: d.Strokes[idx]})
	}
	if len(removed) == 0 {
		return
	}

	keep := make([]point.Stroke, 0, len(d.Strokes)-len(removed))
	removedSet := make(map[int]bool, len(removed))
	for _, r := range removed {
		removedSet[r.Index] = true
	}
	for i, s := range d.Strokes {
		if !removedSet[i] {
			keep = append(keep, s)
		}
	}
	d.Strokes = keep
	d.Selection = make(map[int]struct{})

	d.commit(DeleteAction{Entries: removed})
}

// RecolorIndices replaces each index's RenderConfig.Color with newColor,
// logging the old colors for undo.
func (d *Document) RecolorIndices(indices []int, newColor point.Color) {
	if len(indices) == 0 {
		return
	}
	olds := make([]RecoloredEntry, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(d.Strokes) {
			continue
		}
		olds = append(olds, RecoloredEntry{Index: idx, OldColor: d.Strokes[idx].Config.Color})
		d.Strokes[idx].Config.Color = newColor
	}
	if len(olds) == 0 {
		return
	}
	d.commit(RecolorAction{Entries: olds, NewColor: newColor})
}

// MoveIndices translates strokes by (dx, dy) world units and logs a move
// action. Callers should skip the call entirely when |delta| <= 0.5 (spec
// §4.H); MoveIndices itself always applies and logs what it's given.
func (d *Document) MoveIndices(indices []int, dx, dy float64) {
	if len(indices) == 0 {
		return
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(d.Strokes) {
			continue
		}
		d.Strokes[idx].Points = point.Translate(d.Strokes[idx].Points, dx, dy)
	}
	d.commit(MoveAction{Indices: append([]int(nil), indices...), Dx: dx, Dy: dy})
}

// ScaleIndices scales strokes about (pivotX, pivotY) by (sx, sy), storing
// each affected stroke's pre-scale points so undo restores exact geometry;
// resize-by-handle gets its own action kind rather than reusing move/translate.
func (d *Document) ScaleIndices(indices []int, pivotX, pivotY, sx, sy float64) {
	if len(indices) == 0 {
		return
	}
	before := make([]ScaledEntry, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(d.Strokes) {
			continue
		}
		original := append([]point.Point(nil), d.Strokes[idx].Points...)
		d.Strokes[idx].Points = point.ScaleAbout(d.Strokes[idx].Points, pivotX, pivotY, sx, sy)
		before = append(before, ScaledEntry{
			Index:           idx,
			OriginalPoints:  original,
			PostScalePoints: append([]point.Point(nil), d.Strokes[idx].Points...),
		})
	}
	if len(before) == 0 {
		return
	}
	d.commit(ScaleAction{Entries: before})
}

// ClearAll removes every stroke, selection, and log entry, logging nothing:
// it is not itself undoable, treating a full reset as a boundary rather
// than a reversible step.
func (d *Document) ClearAll() {
	d.Strokes = nil
	d.Selection = make(map[int]struct{})
	d.undoLog = nil
	d.redoLog = nil
}

// CanUndo reports whether Undo would have any effect.
func (d *Document) CanUndo() bool { return len(d.undoLog) > 0 }

// CanRedo reports whether Redo would have any effect.
func (d *Document) CanRedo() bool { return len(d.redoLog) > 0 }

// Undo pops and inverts the most recent undo action, pushing its inverse
// form onto the redo log.
func (d *Document) Undo() {
	if !d.CanUndo() {
		return
	}
	n := len(d.undoLog)
	action := d.undoLog[n-1]
	d.undoLog = d.undoLog[:n-1]

	d.applyInverse(action)
	d.redoLog = append(d.redoLog, action)
	d.Selection = make(map[int]struct{})
}

// Redo re-applies the most recently undone action.
func (d *Document) Redo() {
	if !d.CanRedo() {
		return
	}
	n := len(d.redoLog)
	action := d.redoLog[n-1]
	d.redoLog = d.redoLog[:n-1]

	d.applyForward(action)
	d.undoLog = append(d.undoLog, action)
}

func (d *Document) applyInverse(a UndoAction) {
	switch action := a.(type) {
	case AddStrokeAction:
		if len(d.Strokes) > 0 {
			d.Strokes = d.Strokes[:len(d.Strokes)-1]
		}
	case DeleteAction:
		d.reinsert(action.Entries)
	case RecolorAction:
		for _, e := range action.Entries {
			if e.Index < len(d.Strokes) {
				d.Strokes[e.Index].Config.Color = e.OldColor
			}
		}
	case MoveAction:
		for _, idx := range action.Indices {
			if idx < len(d.Strokes) {
				d.Strokes[idx].Points = point.Translate(d.Strokes[idx].Points, -action.Dx, -action.Dy)
			}
		}
	case ScaleAction:
		for _, e := range action.Entries {
			if e.Index < len(d.Strokes) {
				d.Strokes[e.Index].Points = append([]point.Point(nil), e.OriginalPoints...)
			}
		}
	}
}

func (d *Document) applyForward(a UndoAction) {
	switch action := a.(type) {
	case AddStrokeAction:
		d.Strokes = append(d.Strokes, action.Stroke)
	case DeleteAction:
		removedSet := make(map[int]bool, len(action.Entries))
		for _, e := range action.Entries {
			removedSet[e.Index] = true
		}
		keep := make([]point.Stroke, 0, len(d.Strokes))
		for i, s := range d.Strokes {
			if !removedSet[i] {
				keep = append(keep, s)
			}
		}
		d.Strokes = keep
	case RecolorAction:
		for _, e := range action.Entries {
			if e.Index < len(d.Strokes) {
				d.Strokes[e.Index].Config.Color = action.NewColor
			}
		}
	case MoveAction:
		for _, idx := range action.Indices {
			if idx < len(d.Strokes) {
				d.Strokes[idx].Points = point.Translate(d.Strokes[idx].Points, action.Dx, action.Dy)
			}
		}
	case ScaleAction:
		// Redo restores the post-scale snapshot captured at commit time,
		// so it reproduces the scaled geometry exactly.
		for _, e := range action.Entries {
			if e.Index < len(d.Strokes) && e.PostScalePoints != nil {
				d.Strokes[e.Index].Points = append([]point.Point(nil), e.PostScalePoints...)
			}
		}
	}
}

// reinsert restores deleted entries at their original indices, in
// ascending order so earlier insertions don't shift later target indices.
func (d *Document) reinsert(entries []DeletedEntry) {
	sorted := append([]DeletedEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	for _, e := range sorted {
		idx := e.Index
		if idx > len(d.Strokes) {
			idx = len(d.Strokes)
		}
		d.Strokes = append(d.Strokes, point.Stroke{})
		copy(d.Strokes[idx+1:], d.Strokes[idx:])
		d.Strokes[idx] = e.Stroke
	}
}
