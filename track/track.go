// Package track derives per-device motion (velocity, acceleration) from
// successive placements by finite differences. Purely an enrichment
// over the placement output; nothing here feeds back into positioning.
package track

import (
	"time"

	"github.com/droplink/findable/math2d"
)

// State is the derived spatial state of one device.
type State struct {
	Position     math2d.Vec2
	Velocity     math2d.Vec2 // px/s, finite difference of Position
	Acceleration math2d.Vec2 // px/s², finite difference of Velocity
	DistanceFeet float64
	Bearing      float64
	UpdatedAt    time.Time

	samples int // sightings so far: 1 = position only, 2 = velocity, 3+ = acceleration
}

// HasVelocity reports whether enough sightings exist for a velocity.
func (s *State) HasVelocity() bool { return s.samples >= 2 }

// HasAcceleration reports whether enough sightings exist for an
// acceleration (two velocity samples).
func (s *State) HasAcceleration() bool { return s.samples >= 3 }

// Observation is one placed sighting fed to the tracker.
type Observation struct {
	ID           string
	Position     math2d.Vec2
	DistanceFeet float64
	Bearing      float64
}

// Tracker maintains State per device identifier. Entries age out by
// absence: a device missing from an Observe batch is dropped. Not safe
// for concurrent use; the radar subsystem is single-threaded.
type Tracker struct {
	states map[string]*State
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]*State)}
}

// Observe ingests one batch of placed sightings taken at now.
// Velocity and acceleration come strictly from successive
// position/timestamp pairs for the same identifier.
func (t *Tracker) Observe(batch []Observation, now time.Time) {
	seen := make(map[string]bool, len(batch))
	for _, obs := range batch {
		seen[obs.ID] = true
		prev, ok := t.states[obs.ID]
		if !ok {
			t.states[obs.ID] = &State{
				Position:     obs.Position,
				DistanceFeet: obs.DistanceFeet,
				Bearing:      obs.Bearing,
				UpdatedAt:    now,
				samples:      1,
			}
			continue
		}
		dt := now.Sub(prev.UpdatedAt).Seconds()
		if dt <= 0 {
			// Same-instant resample: take the position, keep the derivatives.
			prev.Position = obs.Position
			prev.DistanceFeet = obs.DistanceFeet
			prev.Bearing = obs.Bearing
			continue
		}
		velocity := obs.Position.Sub(prev.Position).Scale(1 / dt)
		if prev.samples >= 2 {
			prev.Acceleration = velocity.Sub(prev.Velocity).Scale(1 / dt)
		}
		prev.Velocity = velocity
		prev.Position = obs.Position
		prev.DistanceFeet = obs.DistanceFeet
		prev.Bearing = obs.Bearing
		prev.UpdatedAt = now
		prev.samples++
	}

	// Devices absent from this batch dropped out of range; no tombstones.
	for id := range t.states {
		if !seen[id] {
			delete(t.states, id)
		}
	}
}

// Get returns the state for a device identifier, or nil if unknown.
func (t *Tracker) Get(id string) *State {
	return t.states[id]
}

// Len returns the number of tracked devices.
func (t *Tracker) Len() int {
	return len(t.states)
}
