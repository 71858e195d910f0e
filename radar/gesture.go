package radar

import "github.com/droplink/findable/math2d"

// MinPinchSpanPx is the floor on the inter-point distance before a
// pinch is considered started. Guards the distance ratio against
// division by zero when both touch points coincide.
const MinPinchSpanPx = 1.0

// Pinch tracks a two-point gesture and writes the resulting rotation
// and zoom into a View. It is the only writer of the View while a
// gesture is active.
//
// Two states: idle and tracking. Idle→tracking when Update sees two
// points further apart than MinPinchSpanPx; tracking→idle when Update
// sees fewer than two points (release or interruption). Interruption
// keeps the view at its last written value; there is no rollback.
type Pinch struct {
	view     *View
	tracking bool

	initialSpan     float64
	initialAngle    float64
	initialScale    float64
	initialRotation float64
}

// NewPinch creates a tracker writing into view.
func NewPinch(view *View) *Pinch {
	return &Pinch{view: view}
}

// Tracking reports whether a gesture is in progress.
func (g *Pinch) Tracking() bool { return g.tracking }

// Update feeds the current touch points (one call per input frame).
// Only the first two points are considered; extra points are ignored.
func (g *Pinch) Update(points []math2d.Vec2) {
	if len(points) < 2 {
		g.tracking = false
		return
	}
	span := points[0].Distance(points[1])
	angle := points[1].Sub(points[0]).Angle()

	if !g.tracking {
		if span < MinPinchSpanPx {
			// Coincident points: not a startable pinch yet.
			return
		}
		g.tracking = true
		g.initialSpan = span
		g.initialAngle = angle
		g.initialScale = g.view.ZoomScale()
		g.initialRotation = g.view.Angle()
		return
	}

	if span >= MinPinchSpanPx {
		g.view.SetZoomScale(span / g.initialSpan * g.initialScale)
	}
	g.view.SetAngle(angle - g.initialAngle + g.initialRotation)
}
