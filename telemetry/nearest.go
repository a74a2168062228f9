package telemetry

import (
	"math"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

// FindNearest scans every candidate and returns the closest active one with its distance
// Ties keep the first candidate in slice order. Returns (nil, +Inf) when nothing is active
func FindNearest(agent vmath.Vec3F, candidates []*core.Collectible) (*core.Collectible, float64) {
	var nearest *core.Collectible
	best := math.Inf(1)

	for _, c := range candidates {
		if c == nil || !c.Active {
			continue
		}
		// Strict less-than: an equal later candidate never displaces an earlier one
		if d := vmath.V3FDist(agent, c.Position); d < best {
			best = d
			nearest = c
		}
	}
	return nearest, best
}

// HasTarget reports whether a distance returned by FindNearest is a real measurement
func HasTarget(dist float64) bool {
	return !math.IsInf(dist, 1)
}
