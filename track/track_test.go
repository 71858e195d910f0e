package track

import (
	"testing"
	"time"

	"github.com/droplink/findable/math2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func obs(id string, x, y float64) Observation {
	return Observation{ID: id, Position: math2d.V2(x, y)}
}

func TestFirstSightingHasNoDerivatives(t *testing.T) {
	tr := NewTracker()
	tr.Observe([]Observation{obs("a", 10, 0)}, t0)

	s := tr.Get("a")
	require.NotNil(t, s)
	assert.Equal(t, math2d.V2(10, 0), s.Position)
	assert.False(t, s.HasVelocity())
	assert.False(t, s.HasAcceleration())
}

func TestVelocityFiniteDifference(t *testing.T) {
	tr := NewTracker()
	tr.Observe([]Observation{obs("a", 0, 0)}, t0)
	tr.Observe([]Observation{obs("a", 10, -5)}, t0.Add(2*time.Second))

	s := tr.Get("a")
	require.NotNil(t, s)
	assert.True(t, s.HasVelocity())
	assert.False(t, s.HasAcceleration())
	assert.InDelta(t, 5, s.Velocity.X, 1e-9)
	assert.InDelta(t, -2.5, s.Velocity.Y, 1e-9)
}

func TestAccelerationNeedsTwoVelocities(t *testing.T) {
	tr := NewTracker()
	tr.Observe([]Observation{obs("a", 0, 0)}, t0)
	tr.Observe([]Observation{obs("a", 10, 0)}, t0.Add(time.Second))   // v = (10,0)
	tr.Observe([]Observation{obs("a", 30, 0)}, t0.Add(2*time.Second)) // v = (20,0)

	s := tr.Get("a")
	require.NotNil(t, s)
	assert.True(t, s.HasAcceleration())
	assert.InDelta(t, 10, s.Acceleration.X, 1e-9)
	assert.InDelta(t, 0, s.Acceleration.Y, 1e-9)
}

func TestStationaryDevice(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 5; i++ {
		tr.Observe([]Observation{obs("a", 42, 7)}, t0.Add(time.Duration(i)*time.Second))
	}
	s := tr.Get("a")
	require.NotNil(t, s)
	assert.Equal(t, math2d.Zero(), s.Velocity)
	assert.Equal(t, math2d.Zero(), s.Acceleration)
}

func TestAbsentDeviceDropped(t *testing.T) {
	tr := NewTracker()
	tr.Observe([]Observation{obs("a", 0, 0), obs("b", 1, 1)}, t0)
	assert.Equal(t, 2, tr.Len())

	tr.Observe([]Observation{obs("b", 2, 2)}, t0.Add(time.Second))
	assert.Equal(t, 1, tr.Len())
	assert.Nil(t, tr.Get("a"))

	// Re-sighting starts fresh: no derivatives carried across the gap.
	tr.Observe([]Observation{obs("a", 5, 5), obs("b", 3, 3)}, t0.Add(2*time.Second))
	assert.False(t, tr.Get("a").HasVelocity())
}

func TestSameInstantResample(t *testing.T) {
	tr := NewTracker()
	tr.Observe([]Observation{obs("a", 0, 0)}, t0)
	tr.Observe([]Observation{obs("a", 10, 0)}, t0.Add(time.Second))
	v := tr.Get("a").Velocity

	// A second batch at the same timestamp must not divide by zero or
	// spike the derivatives; it just moves the position.
	tr.Observe([]Observation{obs("a", 11, 0)}, t0.Add(time.Second))
	s := tr.Get("a")
	assert.Equal(t, math2d.V2(11, 0), s.Position)
	assert.Equal(t, v, s.Velocity)
}

func TestScalarFieldsCarried(t *testing.T) {
	tr := NewTracker()
	tr.Observe([]Observation{{ID: "a", Position: math2d.V2(1, 2), DistanceFeet: 12.5, Bearing: 1.1}}, t0)
	s := tr.Get("a")
	require.NotNil(t, s)
	assert.Equal(t, 12.5, s.DistanceFeet)
	assert.Equal(t, 1.1, s.Bearing)
}
