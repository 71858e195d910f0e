// Package scan supplies the radar's input: device sightings with a
// signal-strength-derived distance estimate. Real BLE transport is out
// of scope; sources here are the synthetic demo walker and recorded
// session replay, both producing the same DeviceSample stream a
// hardware scanner would.
package scan

import (
	"math"
	"time"
)

const (
	// MeasuredPower is the expected RSSI at 1 meter (dBm).
	MeasuredPower = -59.0
	// PathLossExponent models the environment (2 = free space,
	// 2.5 = light indoor obstruction).
	PathLossExponent = 2.5

	feetPerMeter = 3.28084
)

// DeviceSample is one sighting of a nearby device. Samples are
// read-only; a later sighting of the same ID supersedes the earlier
// sample rather than mutating it.
type DeviceSample struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RSSI         int       `json:"rssi"`
	DistanceFeet float64   `json:"distance_feet"`
	SeenAt       time.Time `json:"seen_at"`
}

// EstimateDistanceFeet converts an RSSI reading to a straight-line
// distance estimate in feet using the log-distance path loss model:
//
//	d_meters = 10^((measuredPower - rssi) / (10 * n))
//
// The estimate is noisy and never negative.
func EstimateDistanceFeet(rssi int) float64 {
	meters := math.Pow(10, (MeasuredPower-float64(rssi))/(10*PathLossExponent))
	feet := meters * feetPerMeter
	if feet < 0 || math.IsNaN(feet) {
		return 0
	}
	return feet
}

// NewSample builds a DeviceSample from a raw RSSI reading.
func NewSample(id, name string, rssi int, at time.Time) DeviceSample {
	return DeviceSample{
		ID:           id,
		Name:         name,
		RSSI:         rssi,
		DistanceFeet: EstimateDistanceFeet(rssi),
		SeenAt:       at,
	}
}
