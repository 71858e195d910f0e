package radar

import "github.com/droplink/findable/math2d"

// Interaction returns the pairwise interaction strength between two
// placed positions: 1 - (d/R)², clamped to [0,1]. Symmetric, 1 at zero
// distance, exactly 0 at and beyond radius R. Decorative only; nothing
// feeds back into placement.
func Interaction(a, b math2d.Vec2, maxRadius float64) float64 {
	if maxRadius <= 0 {
		return 0
	}
	r := a.Distance(b) / maxRadius
	s := 1 - r*r
	if s < 0 {
		return 0
	}
	return s
}

// Density sums the interaction contribution of every placed position
// at a test point. Range [0, len(positions)].
func Density(p math2d.Vec2, positions []math2d.Vec2, maxRadius float64) float64 {
	var sum float64
	for _, pos := range positions {
		sum += Interaction(p, pos, maxRadius)
	}
	return sum
}
