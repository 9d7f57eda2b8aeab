// Package gesture implements the post-stroke recognizer: the
// scratch-to-erase classifier and the shape-snap classifier, both run once
// on endStroke before addStroke is logged.
package gesture

import (
	"math"

	"github.com/sensoryink/core/internal/point"
)

const (
	scratchMinPoints        = 15
	scratchMinReversals     = 4
	scratchLengthRatio      = 2.5
	scratchReversalMinDx    = 2.0
	scratchEraseBBoxInflate = 5.0
)

// ScratchResult is the outcome of scratch-to-erase detection.
type ScratchResult struct {
	IsScratch bool
	// EraseBBox is the scratch stroke's bbox inflated by
	// scratchEraseBBoxInflate, used to find strokes to delete.
	EraseBBox point.BBox
}

// DetectScratch counts horizontal direction reversals (only over
// |Δx| > 2) and compares total path length against the bbox diagonal.
// Scale-invariant: scaling both coordinates and timestamps by the same
// factor does not change reversal count, nor the T/D length ratio.
func DetectScratch(pts []point.Point) ScratchResult {
	if len(pts) < scratchMinPoints {
		return ScratchResult{}
	}

	reversals := 0
	lastDir := 0 // -1, 0, +1
	totalLength := 0.0
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		totalLength += math.Hypot(dx, dy)

		if math.Abs(dx) > scratchReversalMinDx {
			dir := 1
			if dx < 0 {
				dir = -1
			}
			if lastDir != 0 && dir != lastDir {
				reversals++
			}
			lastDir = dir
		}
	}

	bbox := point.BoundingBox(pts)
	diag := bbox.Diagonal()
	if diag == 0 {
		return ScratchResult{}
	}

	isScratch := reversals >= scratchMinReversals && totalLength > scratchLengthRatio*diag
	if !isScratch {
		return ScratchResult{}
	}
	return ScratchResult{IsScratch: true, EraseBBox: bbox.Inflate(scratchEraseBBoxInflate)}
}

// StrokesTouchingBBox returns indices of strokes with at least one point
// inside bbox.
func StrokesTouchingBBox(strokes []point.Stroke, bbox point.BBox) []int {
	var out []int
	for i, s := range strokes {
		for _, p := range s.Points {
			if bbox.ContainsPoint(p.X, p.Y) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
