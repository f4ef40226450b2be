// Package components defines ECS components for the slime simulation.
package components

// Role classifies a particle within the slime body.
type Role uint8

const (
	RoleBody Role = iota // passive body mass, launchable
	RoleEye              // one of the two eye particles, never emitted
)

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity.
type Velocity struct {
	X, Y float32
}

// Force accumulates forces within a tick. Reset at the start of every tick.
type Force struct {
	X, Y float32
}

// Body holds the physical properties of a particle.
type Body struct {
	Mass   float32
	Radius float32 // collision radius, used for boundary clamp and hit boxes
	Fixed  bool    // pinning lever; fixed particles are skipped by the integrator
}

// Particle holds slime-specific particle state.
// Health is optional: HasHealth tracks presence so that particles stay
// immortal until they first enter combat (charged launch or enemy contact).
type Particle struct {
	ID        int
	Role      Role
	Emitted   bool
	HasHealth bool
	Health    float32
	MaxHealth float32
}

// Alive reports whether the particle is still part of the simulation.
// Particles without health tracking are immortal.
func (p *Particle) Alive() bool {
	return !p.HasHealth || p.Health > 0
}
