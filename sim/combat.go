package sim

import (
	"github.com/pthm-cable/slime/components"
	"github.com/pthm-cable/slime/systems"
)

// Enemy tuning. Fixed per instance; patrol paths and speeds get per-enemy
// randomization at init.
const (
	enemyMaxHealth      = 50.0
	enemyHitDamage      = 15.0 // damage per emitted-particle hit
	enemyHitCooldownSec = 0.5
	enemySize           = 42.0
	enemyPatrolSpeed    = 60.0
	enemyContactDamage  = 10.0
	enemyMarginX        = 80.0

	patrolPointsMin   = 2
	patrolPointsExtra = 2 // up to min+extra waypoints
	patrolSpreadX     = 120.0
	patrolSpreadY     = 80.0
)

// InitEnemies replaces the enemy collection with count patrolling enemies on
// randomized paths, alternating between left and right base positions.
func (e *Engine) InitEnemies(count int) {
	e.enemyInit = count
	e.enemies = e.enemies[:0]
	e.hitCooldowns = make(map[int]float32)
	e.nextEnemyID = 0

	for i := 0; i < count; i++ {
		baseX := enemyMarginX + e.rng.Float32()*e.width*0.25
		if i%2 == 1 {
			baseX = e.width - baseX
		}
		baseY := e.height*0.2 + e.rng.Float32()*e.height*0.6

		points := patrolPointsMin + e.rng.Intn(patrolPointsExtra+1)
		waypoints := make([]components.Position, points)
		for w := range waypoints {
			waypoints[w] = components.Position{
				X: clampWorld(baseX+(e.rng.Float32()*2-1)*patrolSpreadX, enemySize/2, e.width-enemySize/2),
				Y: clampWorld(baseY+(e.rng.Float32()*2-1)*patrolSpreadY, enemySize/2, e.height-enemySize/2),
			}
		}

		e.enemies = append(e.enemies, components.Enemy{
			ID:        e.nextEnemyID,
			Pos:       components.Position{X: baseX, Y: baseY},
			Size:      enemySize,
			Waypoints: waypoints,
			Speed:     enemyPatrolSpeed * (0.8 + e.rng.Float32()*0.4),
			Damage:    enemyContactDamage,
			Health:    enemyMaxHealth,
			MaxHealth: enemyMaxHealth,
		})
		e.nextEnemyID++
	}
}

func clampWorld(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// updateEnemies advances patrols and decrements per-enemy hit cooldowns.
// Runs every tick, game-over or not; only the collision pass is gated.
func (e *Engine) updateEnemies(dt float32) {
	for i := range e.enemies {
		systems.AdvancePatrol(&e.enemies[i], dt)
	}
	for id, cd := range e.hitCooldowns {
		if cd > 0 {
			e.hitCooldowns[id] = cd - dt
		}
	}
}

// combatPass overlaps every non-dead enemy against every alive particle.
// Emitted projectiles trade damage with the enemy under a per-enemy
// cooldown; plain body contact is always lethal for the particle and costs
// the enemy nothing. Destroyed particles keep their slot until the prune
// stage at the end of the tick.
func (e *Engine) combatPass() {
	s := &e.snap

	for ei := range e.enemies {
		enemy := &e.enemies[ei]
		if enemy.Dead {
			continue
		}
		half := enemy.Size / 2

		for i, p := range s.part {
			if !p.Alive() {
				continue
			}
			if !systems.BoxesOverlap(s.pos[i].X, s.pos[i].Y, s.body[i].Radius,
				enemy.Pos.X, enemy.Pos.Y, half) {
				continue
			}

			if p.Emitted {
				if e.hitCooldowns[enemy.ID] > 0 {
					continue
				}
				enemy.Health -= enemyHitDamage
				e.hitCooldowns[enemy.ID] = enemyHitCooldownSec
				e.destroyParticle(p)
				e.pushSound(SoundPop, 1)
				if enemy.Health <= 0 {
					enemy.Dead = true
					e.pushSound(SoundEnemyHit, 1)
				}
			} else {
				// Contact with the main body: lethal per particle, no
				// cooldown gate, enemy takes no damage.
				e.destroyParticle(p)
				e.pushSound(SoundHurt, 1)
			}

			if enemy.Dead {
				break
			}
		}
	}
}

// destroyParticle zeroes the particle's health, making it dead for the rest
// of the tick and a prune candidate at the end of it.
func (e *Engine) destroyParticle(p *components.Particle) {
	p.HasHealth = true
	if p.MaxHealth == 0 {
		p.MaxHealth = particleMaxHealth
	}
	p.Health = 0
}
