package document

import "github.com/sensoryink/core/internal/point"

// SetSelection replaces the selection set, or unions into it when additive.
func (d *Document) SetSelection(indices []int, additive bool) {
	if !additive {
		d.Selection = make(map[int]struct{}, len(indices))
	}
	for _, idx := range indices {
		d.Selection[idx] = struct{}{}
	}
}

// ClearSelection empties the selection set.
func (d *Document) ClearSelection() {
	d.Selection = make(map[int]struct{})
}

// SelectedIndices returns the current selection as a sorted-free slice.
func (d *Document) SelectedIndices() []int {
	out := make([]int, 0, len(d.Selection))
	for idx := range d.Selection {
		out = append(out, idx)
	}
	return out
}

// DeleteSelected deletes every selected stroke and clears the selection
// (DeleteIndices already clears it).
func (d *Document) DeleteSelected() {
	d.DeleteIndices(d.SelectedIndices())
}

// RecolorSelected recolors every selected stroke.
func (d *Document) RecolorSelected(c point.Color) {
	d.RecolorIndices(d.SelectedIndices(), c)
}

// SelectionBBox returns the union world bbox of every selected stroke, used
// to derive the eight resize handles.
func (d *Document) SelectionBBox() (point.BBox, bool) {
	first := true
	var b point.BBox
	for idx := range d.Selection {
		if idx < 0 || idx >= len(d.Strokes) {
			continue
		}
		sb := point.BoundingBox(d.Strokes[idx].Points)
		if first {
			b = sb
			first = false
			continue
		}
		if sb.MinX < b.MinX {
			b.MinX = sb.MinX
		}
		if sb.MinY < b.MinY {
			b.MinY = sb.MinY
		}
		if sb.MaxX > b.MaxX {
			b.MaxX = sb.MaxX
		}
		if sb.MaxY > b.MaxY {
			b.MaxY = sb.MaxY
		}
	}
	return b, !first
}
