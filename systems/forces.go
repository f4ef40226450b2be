package systems

import "github.com/pthm-cable/slime/components"

// Force regime constants.
const (
	// NominalDiameterFactor scales the particle radius into the boundary
	// between the repulsive and cohesive force regimes.
	NominalDiameterFactor = 1.5

	// EyeRepulsionBoost strengthens repulsion between the two eye particles
	// so they stay visually separated inside the body.
	EyeRepulsionBoost = 2.5

	// CohesionScale converts the configured cohesion strength into force units.
	CohesionScale = 100.0

	// PointerForceScale converts the configured pointer force into force units.
	PointerForceScale = 0.05

	// GrabDamping is applied to a particle's velocity while it is inside the
	// pointer field. A deliberate energy sink that stabilizes grabbing.
	GrabDamping = 0.8

	// MoveFieldRadius is the reach of the keyboard locomotion field around
	// its virtual target, and the horizontal offset of that target from the
	// group centroid.
	MoveFieldRadius = 120.0

	// MovePullStrength scales the proportional pull toward the virtual target.
	MovePullStrength = 40.0

	// MovePushForce is the constant directional push on particles inside the
	// locomotion field.
	MovePushForce = 25.0

	// GroundMargin is the floor-proximity tolerance for the on-ground test.
	GroundMargin = 4.0
)

// ForceParams holds the per-tick tunables consumed by the pairwise force model.
type ForceParams struct {
	ParticleRadius    float32
	Repulsion         float32
	Cohesion          float32
	InteractionRadius float32
}

// ResetForces clears all force accumulators and applies gravity.
// Gravity is applied first, before any pairwise or player force.
func ResetForces(force []*components.Force, body []*components.Body, part []*components.Particle, gravity float32) {
	for i := range force {
		if !part[i].Alive() {
			continue
		}
		force[i].X = 0
		force[i].Y = body[i].Mass * gravity
	}
}

// AccumulatePairForces evaluates repulsion and cohesion for every unordered
// live pair within the interaction radius. Separation below the nominal
// diameter repels, separation between diameter and interaction radius
// attracts. Forces are applied as equal-and-opposite pairs. Exact-zero
// separation skips the interaction to avoid dividing by zero.
func AccumulatePairForces(pos []*components.Position, force []*components.Force, part []*components.Particle, p ForceParams) {
	n := len(pos)
	diameter := p.ParticleRadius * NominalDiameterFactor

	for i := 0; i < n; i++ {
		if !part[i].Alive() {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !part[j].Alive() {
				continue
			}

			dist := distance(pos[i].X, pos[i].Y, pos[j].X, pos[j].Y)
			if dist <= 0 || dist >= p.InteractionRadius {
				continue
			}

			// Separation normal from i toward j.
			nx := (pos[j].X - pos[i].X) / dist
			ny := (pos[j].Y - pos[i].Y) / dist

			var mag float32
			if dist < diameter {
				strength := p.Repulsion
				if part[i].Role == components.RoleEye && part[j].Role == components.RoleEye {
					strength *= EyeRepulsionBoost
				}
				// Repulsion pushes the pair apart: negative along the normal.
				mag = -(1 - dist/diameter) * strength
			} else {
				mag = (1 - dist/p.InteractionRadius) * CohesionScale * p.Cohesion
			}

			force[i].X += nx * mag
			force[i].Y += ny * mag
			force[j].X -= nx * mag
			force[j].Y -= ny * mag
		}
	}
}

// ApplyPointerForce pulls main-group particles toward the drag point.
// Only particles inside the pointer radius respond; their velocity is also
// damped so the grabbed mass does not oscillate.
func ApplyPointerForce(pos []*components.Position, vel []*components.Velocity, force []*components.Force, part []*components.Particle, group []bool, dragX, dragY, pointerRadius, pointerForce float32) {
	for i := range pos {
		if !group[i] || !part[i].Alive() {
			continue
		}
		dist := distance(pos[i].X, pos[i].Y, dragX, dragY)
		if dist <= 0 || dist >= pointerRadius {
			continue
		}

		mag := (1 - dist/pointerRadius) * pointerForce * PointerForceScale
		force[i].X += (dragX - pos[i].X) / dist * mag
		force[i].Y += (dragY - pos[i].Y) / dist * mag

		vel[i].X *= GrabDamping
		vel[i].Y *= GrabDamping
	}
}

// ApplyLocomotion drives the main group horizontally. A virtual target sits
// at the group centroid offset by the field radius in the pressed direction
// (dir is -1 or 1); particles inside the field receive a proportional pull
// toward it plus a constant directional push, which translates the group as
// a cohesive mass instead of scattering individual particles.
// Emitted particles never respond to locomotion.
func ApplyLocomotion(pos []*components.Position, force []*components.Force, part []*components.Particle, group []bool, dir float32) {
	var cx, cy float32
	count := 0
	for i := range pos {
		if !group[i] || !part[i].Alive() || part[i].Emitted {
			continue
		}
		cx += pos[i].X
		cy += pos[i].Y
		count++
	}
	if count == 0 {
		return
	}
	cx /= float32(count)
	cy /= float32(count)

	targetX := cx + dir*MoveFieldRadius
	targetY := cy

	for i := range pos {
		if !group[i] || !part[i].Alive() || part[i].Emitted {
			continue
		}
		dist := distance(pos[i].X, pos[i].Y, targetX, targetY)
		if dist >= MoveFieldRadius {
			continue
		}

		if dist > 0 {
			pull := (1 - dist/MoveFieldRadius) * MovePullStrength
			force[i].X += (targetX - pos[i].X) / dist * pull
			force[i].Y += (targetY - pos[i].Y) / dist * pull
		}
		force[i].X += dir * MovePushForce
	}
}

// OnGround reports whether any main-group, non-emitted particle rests within
// the floor margin. Gates jumping.
func OnGround(pos []*components.Position, body []*components.Body, part []*components.Particle, group []bool, height float32) bool {
	for i := range pos {
		if !group[i] || !part[i].Alive() || part[i].Emitted {
			continue
		}
		if pos[i].Y >= height-body[i].Radius-GroundMargin {
			return true
		}
	}
	return false
}
