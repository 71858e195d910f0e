package radar

import "github.com/droplink/findable/math2d"

// Default zoom bounds. Configuration, not structure.
const (
	DefaultMinScale = 0.5
	DefaultMaxScale = 3.0
)

// View is the single mutable container for the radar's rotation angle
// and zoom scale. The gesture side writes it, placement reads it.
// Angle is unbounded (it wraps through the trig functions downstream);
// scale is clamped to [MinScale, MaxScale] on every write.
type View struct {
	MinScale float64
	MaxScale float64

	angle float64
	scale float64
}

// NewView returns an identity view with the given zoom bounds.
// Non-positive bounds fall back to the defaults.
func NewView(minScale, maxScale float64) *View {
	if minScale <= 0 || maxScale < minScale {
		minScale, maxScale = DefaultMinScale, DefaultMaxScale
	}
	return &View{MinScale: minScale, MaxScale: maxScale, scale: 1}
}

// Angle returns the current rotation angle in radians.
func (v *View) Angle() float64 { return v.angle }

// ZoomScale returns the current zoom scale.
func (v *View) ZoomScale() float64 { return v.scale }

// SetAngle sets the rotation angle. No wrapping; trigonometric
// periodicity handles it downstream.
func (v *View) SetAngle(angle float64) { v.angle = angle }

// RotateBy adds delta to the rotation angle.
func (v *View) RotateBy(delta float64) { v.angle += delta }

// SetZoomScale sets the zoom scale, clamped to the view's bounds.
func (v *View) SetZoomScale(scale float64) {
	if scale < v.MinScale {
		scale = v.MinScale
	}
	if scale > v.MaxScale {
		scale = v.MaxScale
	}
	v.scale = scale
}

// ZoomBy multiplies the zoom scale by factor, clamped.
func (v *View) ZoomBy(factor float64) {
	v.SetZoomScale(v.scale * factor)
}

// Reset restores the identity view (angle 0, scale 1) unconditionally.
func (v *View) Reset() {
	v.angle = 0
	v.scale = 1
}

// Transform composes the view matrix as rotate∘scale (scale applied
// first). For a uniform scale the reverse order is numerically
// identical, but this order is the canonical one so a future
// non-uniform scale keeps zooming in view-space axes.
func (v *View) Transform() math2d.Mat2 {
	return math2d.Rotation(v.angle).Mul(math2d.Scaling(v.scale))
}
