package radar

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// bearingSteps sets the angular resolution of hashed bearings
// (~0.09° per step). Coarser than float precision on purpose: the
// reduction stays exact in integer space before the single division.
const bearingSteps = 4096

// Bearing derives a stable pseudo-bearing in [0, 2π) from a device's
// display name. A single RSSI reading carries no directional
// information, so the radar needs some repeatable angle to keep a
// device from jumping between scans; hashing the name is that stand-in,
// not a physical measurement. Devices sharing a name share a bearing.
func Bearing(name string) float64 {
	h := xxhash.Sum64String(name)
	return 2 * math.Pi * float64(h%bearingSteps) / bearingSteps
}
