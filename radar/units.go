// Package radar converts device sightings into screen-space positions
// arranged radially around a fixed origin, and holds the view transform
// (rotation + zoom) applied uniformly to every placement.
package radar

import "github.com/droplink/findable/math2d"

// Scale maps real-world feet to display pixels for a given radar
// geometry. Derive it with NewScale; the zero value is unusable.
type Scale struct {
	MaxRadiusPx   float64
	MaxRangeFeet  float64
	PixelsPerFoot float64
}

// NewScale derives the feet→pixel ratio from the display radius and the
// real-world range it represents.
func NewScale(maxRadiusPx, maxRangeFeet float64) Scale {
	s := Scale{MaxRadiusPx: maxRadiusPx, MaxRangeFeet: maxRangeFeet}
	if maxRangeFeet > 0 {
		s.PixelsPerFoot = maxRadiusPx / maxRangeFeet
	}
	return s
}

// FeetToPixels returns the feet→pixel transform.
func (s Scale) FeetToPixels() math2d.Mat2 {
	return math2d.Scaling(s.PixelsPerFoot)
}

// PixelsToFeet returns the inverse transform.
func (s Scale) PixelsToFeet() math2d.Mat2 {
	if s.PixelsPerFoot == 0 {
		return math2d.Identity()
	}
	return math2d.Scaling(1 / s.PixelsPerFoot)
}

// ScaleCache memoizes the last derived Scale on input equality, so the
// ratio is only recomputed when the screen geometry or range changes.
// Single slot; there is nothing to evict.
type ScaleCache struct {
	valid        bool
	maxRadiusPx  float64
	maxRangeFeet float64
	scale        Scale
}

// Get returns the Scale for the given inputs, reusing the cached value
// when the inputs are unchanged.
func (c *ScaleCache) Get(maxRadiusPx, maxRangeFeet float64) Scale {
	if c.valid && c.maxRadiusPx == maxRadiusPx && c.maxRangeFeet == maxRangeFeet {
		return c.scale
	}
	c.scale = NewScale(maxRadiusPx, maxRangeFeet)
	c.maxRadiusPx = maxRadiusPx
	c.maxRangeFeet = maxRangeFeet
	c.valid = true
	return c.scale
}
