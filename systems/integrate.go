package systems

import "github.com/pthm-cable/slime/components"

// Boundary response constants.
const (
	// Restitution is the velocity reflection factor on wall/floor/ceiling hits.
	Restitution = 0.5

	// FloorFriction scales horizontal velocity on floor contact.
	FloorFriction = 0.9
)

// Integrate advances live particles one step of semi-implicit Euler:
// velocity from accumulated force, uniform damping as a viscosity term,
// then position from velocity. Fixed particles are left untouched.
func Integrate(pos []*components.Position, vel []*components.Velocity, force []*components.Force, body []*components.Body, part []*components.Particle, damping, dt float32) {
	for i := range pos {
		if !part[i].Alive() || body[i].Fixed {
			continue
		}
		vel[i].X += force[i].X / body[i].Mass * dt
		vel[i].Y += force[i].Y / body[i].Mass * dt

		vel[i].X *= damping
		vel[i].Y *= damping

		pos[i].X += vel[i].X * dt
		pos[i].Y += vel[i].Y * dt
	}
}

// ResolveBounds clamps live particles into the world rectangle and reflects
// the crossed velocity component. Floor contact also applies friction to the
// horizontal component. Returns the largest floor impact speed of the pass,
// which feeds the bounce sound channel.
func ResolveBounds(pos []*components.Position, vel []*components.Velocity, body []*components.Body, part []*components.Particle, width, height float32) float32 {
	var maxImpact float32

	for i := range pos {
		if !part[i].Alive() {
			continue
		}
		r := body[i].Radius

		if pos[i].X < r {
			pos[i].X = r
			vel[i].X = -vel[i].X * Restitution
		} else if pos[i].X > width-r {
			pos[i].X = width - r
			vel[i].X = -vel[i].X * Restitution
		}

		if pos[i].Y < r {
			pos[i].Y = r
			vel[i].Y = -vel[i].Y * Restitution
		} else if pos[i].Y > height-r {
			impact := vel[i].Y
			pos[i].Y = height - r
			vel[i].Y = -vel[i].Y * Restitution
			vel[i].X *= FloorFriction
			if impact > maxImpact {
				maxImpact = impact
			}
		}
	}

	return maxImpact
}
