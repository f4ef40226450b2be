package sim

import (
	"math"

	"github.com/pthm-cable/slime/components"
	"github.com/pthm-cable/slime/systems"
)

// Launch and reabsorption constants.
const (
	launchMinSpeed    = 320.0
	launchSpeedRange  = 160.0
	launchAngleSpread = 0.5 // radians either side of straight up

	// launchSpeedCeiling normalizes launch magnitude into sound intensity.
	launchSpeedCeiling = 900.0

	particleMaxHealth = 100.0

	// An emitted particle is reabsorbed once it is both slow and near the
	// body. The two-sided condition prevents launch/reabsorb oscillation.
	reabsorbMaxSpeed = 30.0
	reabsorbRange    = 28.0

	reabsorbSoundIntensity = 0.5
)

// eligibleLaunchIndexes returns snapshot indexes of particles that may be
// launched: alive, not emitted, not an eye.
func (e *Engine) eligibleLaunchIndexes() []int {
	var out []int
	for i, p := range e.snap.part {
		if p.Alive() && !p.Emitted && p.Role != components.RoleEye {
			out = append(out, i)
		}
	}
	return out
}

// LaunchParticle promotes a uniformly random eligible particle to an emitted
// projectile with an upward velocity of randomized magnitude and angle.
// No-op when no eligible particle exists.
func (e *Engine) LaunchParticle() {
	e.rebuildSnapshot()
	cands := e.eligibleLaunchIndexes()
	if len(cands) == 0 {
		return
	}
	i := cands[e.rng.Intn(len(cands))]

	speed := launchMinSpeed + e.rng.Float32()*launchSpeedRange
	angle := -math.Pi/2 + (e.rng.Float64()*2-1)*launchAngleSpread

	e.snap.part[i].Emitted = true
	e.snap.vel[i].X = speed * float32(math.Cos(angle))
	e.snap.vel[i].Y = speed * float32(math.Sin(angle))

	e.pushSound(SoundLaunch, systems.Clamp01(speed/launchSpeedCeiling))
}

// LaunchChargedParticle promotes the eligible particle lowest on screen
// (greatest Y) and sends it toward target at the given speed magnitude.
// When health tracking is active the particle's health is (re)initialized so
// it can be destroyed in combat. A target coincident with the particle falls
// back to a straight-up launch. No-op when no eligible particle exists.
func (e *Engine) LaunchChargedParticle(target Vec2, magnitude float32) {
	e.rebuildSnapshot()
	cands := e.eligibleLaunchIndexes()
	if len(cands) == 0 {
		return
	}

	pick := cands[0]
	for _, i := range cands[1:] {
		if e.snap.pos[i].Y > e.snap.pos[pick].Y {
			pick = i
		}
	}

	pos := e.snap.pos[pick]
	part := e.snap.part[pick]

	part.Emitted = true
	if e.healthTracking {
		part.HasHealth = true
		part.Health = particleMaxHealth
		part.MaxHealth = particleMaxHealth
	}

	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := systems.Magnitude(dx, dy)
	if dist < 1e-3 {
		// Degenerate target: straight up instead of dividing by zero.
		dx, dy, dist = 0, -1, 1
	}
	e.snap.vel[pick].X = dx / dist * magnitude
	e.snap.vel[pick].Y = dy / dist * magnitude

	e.pushSound(SoundLaunch, systems.Clamp01(magnitude/launchSpeedCeiling))
}

// reabsorb demotes emitted particles back into the body once they are slow
// AND within range of at least one alive, non-emitted body particle. Runs
// every tick after integration; idempotent once a particle is demoted.
func (e *Engine) reabsorb() {
	s := &e.snap
	for i, p := range s.part {
		if !p.Emitted || !p.Alive() || p.Role == components.RoleEye {
			continue
		}
		if systems.Magnitude(s.vel[i].X, s.vel[i].Y) >= reabsorbMaxSpeed {
			continue
		}

		for j, anchor := range s.part {
			if j == i || !anchor.Alive() || anchor.Emitted || anchor.Role != components.RoleBody {
				continue
			}
			dx := s.pos[i].X - s.pos[j].X
			dy := s.pos[i].Y - s.pos[j].Y
			if dx*dx+dy*dy < reabsorbRange*reabsorbRange {
				p.Emitted = false
				e.pushSound(SoundReabsorb, reabsorbSoundIntensity)
				break
			}
		}
	}
}
