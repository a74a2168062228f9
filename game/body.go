package game

import "github.com/lixenwraith/rollball/vmath"

// Body is the rolling agent: a point mass on the X/Z floor with linear drag
type Body struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Mass     float64
	Drag     float64
	Radius   float64

	force vmath.Vec3F
}

// AddForce accumulates a force for the next Integrate call
func (b *Body) AddForce(f vmath.Vec3F) {
	b.force = vmath.V3FAdd(b.force, f)
}

// Integrate advances the body by dt seconds with semi-implicit Euler, then clears forces
// The body is kept inside [-half, half] on X and Z; hitting a wall zeroes that velocity axis
func (b *Body) Integrate(dt, half float64) {
	if dt <= 0 {
		b.force = vmath.Vec3F{}
		return
	}

	accel := vmath.V3FScale(b.force, 1/b.Mass)
	b.Velocity = vmath.V3FAdd(b.Velocity, vmath.V3FScale(accel, dt))

	damp := 1 - b.Drag*dt
	if damp < 0 {
		damp = 0
	}
	b.Velocity = vmath.V3FScale(b.Velocity, damp)
	b.Velocity.Y = 0

	b.Position = vmath.V3FAdd(b.Position, vmath.V3FScale(b.Velocity, dt))
	b.force = vmath.Vec3F{}

	limit := half - b.Radius
	if b.Position.X > limit {
		b.Position.X, b.Velocity.X = limit, 0
	} else if b.Position.X < -limit {
		b.Position.X, b.Velocity.X = -limit, 0
	}
	if b.Position.Z > limit {
		b.Position.Z, b.Velocity.Z = limit, 0
	} else if b.Position.Z < -limit {
		b.Position.Z, b.Velocity.Z = -limit, 0
	}
}
