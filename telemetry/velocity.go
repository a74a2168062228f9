package telemetry

import (
	"time"

	"github.com/lixenwraith/rollball/vmath"
)

// VelocityEstimator derives agent velocity by finite difference over one fixed step
type VelocityEstimator struct {
	prev   vmath.Vec3F
	primed bool
}

// Update returns (pos - prev) / dt and stores pos as the new previous sample
// The first sample and a non-positive dt both yield zero velocity
func (e *VelocityEstimator) Update(pos vmath.Vec3F, dt time.Duration) vmath.Vec3F {
	var vel vmath.Vec3F
	if e.primed && dt > 0 {
		vel = vmath.V3FDiv(vmath.V3FSub(pos, e.prev), dt.Seconds())
	}
	e.prev = pos
	e.primed = true
	return vel
}

// Reset primes the estimator at pos so the next Update measures from there
func (e *VelocityEstimator) Reset(pos vmath.Vec3F) {
	e.prev = pos
	e.primed = true
}

// previous returns the last stored sample and whether one exists
func (e *VelocityEstimator) previous() (vmath.Vec3F, bool) {
	return e.prev, e.primed
}
