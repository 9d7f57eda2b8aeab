package document

import (
	"testing"

	"github.com/sensoryink/core/internal/point"
)

func stroke(x float64) point.Stroke {
	return point.Stroke{
		Points: []point.Point{{X: x, Y: 0}, {X: x + 10, Y: 0}},
		Config: point.RenderConfig{Color: point.Color{R: 1, G: 2, B: 3}},
	}
}

func TestAddStrokeUndoRemovesIt(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	if len(d.Strokes) != 1 {
		t.Fatalf("expected 1 stroke after add, got %d", len(d.Strokes))
	}
	d.Undo()
	if len(d.Strokes) != 0 {
		t.Fatalf("expected 0 strokes after undo, got %d", len(d.Strokes))
	}
	if d.CanUndo() {
		t.Fatalf("undo log should be empty after the only action was undone")
	}
}

func TestRedoReappliesUndoneAction(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	d.Undo()
	d.Redo()
	if len(d.Strokes) != 1 {
		t.Fatalf("expected 1 stroke after redo, got %d", len(d.Strokes))
	}
}

func TestNewActionClearsRedoLog(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	d.Undo()
	d.AddStroke(stroke(100))
	if d.CanRedo() {
		t.Fatalf("a fresh action should clear the redo log")
	}
}

func TestDeleteIndicesThenUndoRestoresOriginalOrder(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	d.AddStroke(stroke(10))
	d.AddStroke(stroke(20))

	d.DeleteIndices([]int{1})
	if len(d.Strokes) != 2 {
		t.Fatalf("expected 2 strokes after delete, got %d", len(d.Strokes))
	}

	d.Undo()
	if len(d.Strokes) != 3 {
		t.Fatalf("expected 3 strokes after undoing delete, got %d", len(d.Strokes))
	}
	if d.Strokes[1].Points[0].X != 10 {
		t.Fatalf("deleted stroke should be reinserted at its original index, got %+v", d.Strokes[1])
	}
}

func TestDeleteIndicesClearsSelection(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	d.SetSelection([]int{0}, false)
	d.DeleteIndices([]int{0})
	if len(d.SelectedIndices()) != 0 {
		t.Fatalf("selection should be cleared after a delete")
	}
}

func TestRecolorIndicesUndoRestoresOldColor(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	old := d.Strokes[0].Config.Color
	d.RecolorIndices([]int{0}, point.Color{R: 9, G: 9, B: 9})
	if d.Strokes[0].Config.Color != (point.Color{R: 9, G: 9, B: 9}) {
		t.Fatalf("color should have changed")
	}
	d.Undo()
	if d.Strokes[0].Config.Color != old {
		t.Fatalf("undo should restore the old color, got %+v want %+v", d.Strokes[0].Config.Color, old)
	}
}

func TestMoveIndicesUndoTranslatesBack(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	origX := d.Strokes[0].Points[0].X
	d.MoveIndices([]int{0}, 5, -5)
	if d.Strokes[0].Points[0].X != origX+5 {
		t.Fatalf("move should translate the stroke")
	}
	d.Undo()
	if d.Strokes[0].Points[0].X != origX {
		t.Fatalf("undo should translate back to the original position")
	}
}

func TestScaleIndicesUndoRestoresExactGeometry(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	orig := append([]point.Point(nil), d.Strokes[0].Points...)

	d.ScaleIndices([]int{0}, 0, 0, 2, 3)
	if d.Strokes[0].Points[1].X != 20 || d.Strokes[0].Points[1].Y != 0 {
		t.Fatalf("expected the far point scaled to (20,0) about the origin, got %+v", d.Strokes[0].Points[1])
	}
	if !d.CanUndo() {
		t.Fatalf("a real scale should be undoable")
	}

	d.Undo()
	for i, p := range d.Strokes[0].Points {
		if p != orig[i] {
			t.Fatalf("undo should restore exact pre-scale points, got %+v want %+v", d.Strokes[0].Points, orig)
		}
	}

	d.Redo()
	if d.Strokes[0].Points[1].X != 20 || d.Strokes[0].Points[1].Y != 0 {
		t.Fatalf("redo should restore the post-scale snapshot, got %+v", d.Strokes[0].Points[1])
	}
}

func TestScaleIndicesEmptyIndicesIsNoop(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	d.ScaleIndices(nil, 0, 0, 2, 2)
	// The only logged action is the AddStroke: one undo empties the log.
	d.Undo()
	if d.CanUndo() || len(d.Strokes) != 0 {
		t.Fatalf("scaling no indices should not log an undo action")
	}
}

func TestClearAllIsNotUndoable(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	d.ClearAll()
	if len(d.Strokes) != 0 {
		t.Fatalf("expected no strokes after clear")
	}
	if d.CanUndo() {
		t.Fatalf("clearAll should not be undoable")
	}
}

func TestSetSelectionAdditiveUnionsInsteadOfReplacing(t *testing.T) {
	d := New()
	d.SetSelection([]int{0}, false)
	d.SetSelection([]int{1}, true)
	sel := d.SelectedIndices()
	if len(sel) != 2 {
		t.Fatalf("additive select should union, got %v", sel)
	}
}

func TestSelectionBBoxUnionsSelectedStrokes(t *testing.T) {
	d := New()
	d.AddStroke(stroke(0))
	d.AddStroke(stroke(100))
	d.SetSelection([]int{0, 1}, false)

	b, ok := d.SelectionBBox()
	if !ok {
		t.Fatalf("expected a valid bbox for a non-empty selection")
	}
	if b.MinX != 0 || b.MaxX != 110 {
		t.Fatalf("expected union bbox spanning both strokes, got %+v", b)
	}
}

func TestSelectionBBoxEmptySelectionIsInvalid(t *testing.T) {
	d := New()
	_, ok := d.SelectionBBox()
	if ok {
		t.Fatalf("expected no valid bbox for an empty selection")
	}
}
