package radar

import (
	"github.com/droplink/findable/math2d"
	"github.com/droplink/findable/scan"
)

// Placer maps device samples to screen coordinates around Origin.
// GridStepPx quantizes placements to a fixed pixel grid so positions
// snap instead of jittering with every noisy distance estimate; zero
// disables the snap.
type Placer struct {
	Scale      Scale
	Origin     math2d.Vec2
	GridStepPx float64
}

// Place computes the screen position for one device sample under the
// current view:
//
//	radial (distance·px/ft, 0) → rotate by the name bearing →
//	view transform → grid snap → translate to Origin.
//
// Distance 0 lands exactly on Origin regardless of the view. Negative
// distances (malformed input; the scanner should not produce them) are
// clamped to zero. Samples beyond the display range are placed
// off-radius rather than clamped; filter first with FilterInRange.
func (p Placer) Place(sample scan.DeviceSample, view *View) math2d.Vec2 {
	distance := sample.DistanceFeet
	if distance < 0 {
		distance = 0
	}
	radial := math2d.V2(distance*p.Scale.PixelsPerFoot, 0)
	offset := math2d.Rotation(Bearing(sample.Name)).MulVec(radial)
	offset = view.Transform().MulVec(offset)
	return offset.Quantize(p.GridStepPx).Add(p.Origin)
}

// PlaceAll places a batch, preserving input order.
func (p Placer) PlaceAll(samples []scan.DeviceSample, view *View) []math2d.Vec2 {
	positions := make([]math2d.Vec2, len(samples))
	for i, s := range samples {
		positions[i] = p.Place(s, view)
	}
	return positions
}

// FilterInRange returns the samples whose distance estimate falls
// within maxRangeFeet. The placement function itself never clamps;
// this is the filtering collaborator callers use first.
func FilterInRange(samples []scan.DeviceSample, maxRangeFeet float64) []scan.DeviceSample {
	kept := make([]scan.DeviceSample, 0, len(samples))
	for _, s := range samples {
		if s.DistanceFeet <= maxRangeFeet {
			kept = append(kept, s)
		}
	}
	return kept
}
