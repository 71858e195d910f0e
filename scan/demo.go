package scan

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Demo device population bounds.
const (
	DemoDeviceMin = 8
	DemoDeviceMax = 12
)

var demoNames = []string{
	"Pixel 9", "iPhone 15", "Galaxy Buds", "MacBook Air", "Tile Mate",
	"AirTag", "Fitbit Charge", "JBL Flip", "ThinkPad X1", "Apple Watch",
	"Quest 3", "Kindle", "GoPro 12", "Steam Deck", "Polar H10",
}

type demoDevice struct {
	id       string
	name     string
	distance float64 // feet, random walk
	drift    float64 // feet per step bias
}

// Demo is a synthetic device source. Each device random-walks its
// distance inside the configured range, and the RSSI reported is the
// inverse of the path loss model plus jitter, so distance estimates
// wobble the way real readings do.
type Demo struct {
	rng      *rand.Rand
	devices  []demoDevice
	maxRange float64 // feet
}

// NewDemo creates a demo source with count devices (0 picks a random
// population between DemoDeviceMin and DemoDeviceMax) spread over
// maxRangeFeet.
func NewDemo(count int, maxRangeFeet float64, seed uint64) *Demo {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	if count <= 0 {
		count = DemoDeviceMin + rng.IntN(DemoDeviceMax-DemoDeviceMin+1)
	}
	d := &Demo{rng: rng, maxRange: maxRangeFeet}
	for i := 0; i < count; i++ {
		name := demoNames[i%len(demoNames)]
		if i >= len(demoNames) {
			name = fmt.Sprintf("%s %d", name, i/len(demoNames)+1)
		}
		d.devices = append(d.devices, demoDevice{
			id:       uuid.NewString(),
			name:     name,
			distance: rng.Float64() * maxRangeFeet,
			drift:    (rng.Float64() - 0.5) * 0.4,
		})
	}
	return d
}

// Poll advances every device one step and returns the current batch of
// samples. Distances bounce off 0 and the range limit.
func (d *Demo) Poll(now time.Time) []DeviceSample {
	samples := make([]DeviceSample, 0, len(d.devices))
	for i := range d.devices {
		dev := &d.devices[i]
		dev.distance += dev.drift + (d.rng.Float64()-0.5)*0.8
		if dev.distance < 0 {
			dev.distance = -dev.distance
			dev.drift = -dev.drift
		}
		if dev.distance > d.maxRange {
			dev.distance = 2*d.maxRange - dev.distance
			dev.drift = -dev.drift
		}
		samples = append(samples, NewSample(dev.id, dev.name, d.rssiFor(dev.distance), now))
	}
	return samples
}

// rssiFor inverts the path loss model and adds measurement jitter.
func (d *Demo) rssiFor(distanceFeet float64) int {
	meters := distanceFeet / feetPerMeter
	if meters < 0.1 {
		meters = 0.1
	}
	rssi := MeasuredPower - 10*PathLossExponent*math.Log10(meters)
	rssi += (d.rng.Float64() - 0.5) * 4 // ±2 dBm jitter
	return int(math.Round(rssi))
}
