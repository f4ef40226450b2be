// Package sim implements the slime physics engine: particle interaction and
// integration, main-group connectivity, the emit/reabsorb lifecycle, and the
// enemy combat state machine. The engine is single-threaded and
// frame-stepped; one Update call runs the whole tick pipeline to completion.
package sim

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/slime/components"
	"github.com/pthm-cable/slime/systems"
)

// Particle creation constants.
const (
	defaultSeed  = 42
	particleMass = 1.0

	// Eye placement offsets from the scatter center.
	eyeOffsetX = 12.0
	eyeOffsetY = -10.0

	// scatterRadiusFrac sets the initial scatter radius as a fraction of the
	// smaller world dimension.
	scatterRadiusFrac = 0.15
)

// Jump constants.
const (
	jumpCooldownSec = 0.25
	jumpVelocity    = -380.0
)

// Bounce sound gating.
const (
	bounceCooldownSec  = 0.15
	bounceMinSpeed     = 60.0
	bounceSpeedCeiling = 700.0
)

// snapshot is a dense per-tick view into the particle entities. Pointers
// stay valid for the whole tick because structural changes only happen in
// the prune stage, after every pass that reads the snapshot.
type snapshot struct {
	entities []ecs.Entity
	pos      []*components.Position
	vel      []*components.Velocity
	force    []*components.Force
	body     []*components.Body
	part     []*components.Particle
}

func (s *snapshot) reset() {
	s.entities = s.entities[:0]
	s.pos = s.pos[:0]
	s.vel = s.vel[:0]
	s.force = s.force[:0]
	s.body = s.body[:0]
	s.part = s.part[:0]
}

// Engine owns one simulation instance: the particle world, the enemy
// collection, and the outbound event queues. Not safe for concurrent use;
// callers invoke Update serially at a fixed cadence.
type Engine struct {
	world  *ecs.World
	mapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Force,
		components.Body,
		components.Particle,
	]
	filter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Force,
		components.Body,
		components.Particle,
	]

	rng    *rand.Rand
	width  float32
	height float32

	snap      snapshot
	group     []bool       // main-group mask over the tick's snapshot
	groupByID map[int]bool // main-group membership keyed by particle ID, for visitors

	enemies      []components.Enemy
	hitCooldowns map[int]float32

	gameOver       bool
	healthTracking bool
	liveCount      int
	nextID         int
	nextEnemyID    int
	tick           int32

	// Input-derived state
	jumpHeld    bool
	jumpTimer   float32
	bounceTimer float32

	// Remembered init sizes for ResetGame.
	particleInit int
	enemyInit    int

	sounds []SoundEvent
	states []StateEvent
}

// New creates a fully initialized engine: a circular particle scatter with
// two eyes, and a batch of patrolling enemies. Health tracking for launched
// particles is active whenever the instance has enemies.
func New(opts Options) *Engine {
	world := ecs.NewWorld()

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	e := &Engine{
		world: world,
		rng:   rand.New(rand.NewSource(seed)),
		mapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Force,
			components.Body,
			components.Particle,
		](world),
		filter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Force,
			components.Body,
			components.Particle,
		](world),
		width:          opts.Width,
		height:         opts.Height,
		hitCooldowns:   make(map[int]float32),
		healthTracking: opts.EnemyCount > 0,
	}

	e.InitSlime(opts.ParticleCount)
	e.InitEnemies(opts.EnemyCount)

	return e
}

// InitSlime replaces the particle collection with a fresh circular scatter
// of count particles, the last two of which are the eyes placed at fixed
// offsets from the scatter center.
func (e *Engine) InitSlime(count int) {
	e.particleInit = count
	e.removeAllParticles()
	e.nextID = 0

	cx := e.width / 2
	cy := e.height / 2
	scatter := e.width
	if e.height < scatter {
		scatter = e.height
	}
	scatter *= scatterRadiusFrac

	// Fewer than two particles means no eyes: the scatter is all body mass.
	bodies := count - 2
	if count < 2 {
		bodies = count
	}
	for i := 0; i < bodies; i++ {
		r := e.rng.Float32() * scatter
		angle := e.rng.Float64() * 2 * math.Pi
		x := cx + r*float32(math.Cos(angle))
		y := cy + r*float32(math.Sin(angle))
		e.spawnParticle(x, y, components.RoleBody)
	}
	if count >= 2 {
		e.spawnParticle(cx-eyeOffsetX, cy+eyeOffsetY, components.RoleEye)
		e.spawnParticle(cx+eyeOffsetX, cy+eyeOffsetY, components.RoleEye)
	}
}

// spawnParticle creates one particle entity. Radius starts at a nominal
// value; boundary resolution and hit boxes use this per-particle radius.
func (e *Engine) spawnParticle(x, y float32, role components.Role) {
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	force := components.Force{}
	body := components.Body{Mass: particleMass, Radius: 6}
	part := components.Particle{ID: e.nextID, Role: role}
	e.nextID++

	e.mapper.NewEntity(&pos, &vel, &force, &body, &part)
	e.liveCount++
}

// removeAllParticles clears the particle world. Collects first, removes
// after the query completes.
func (e *Engine) removeAllParticles() {
	var toRemove []ecs.Entity
	query := e.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, ent := range toRemove {
		e.mapper.Remove(ent)
	}
	e.liveCount = 0
}

// Update runs one fixed tick of the pipeline: connectivity, forces, player
// forces, integration, reabsorption, boundary resolution, enemy patrol,
// combat, then dead-particle pruning with game-over detection. A nil keys
// skips locomotion and jump entirely.
func (e *Engine) Update(dt float32, p Params, drag Vec2, dragging bool, keys *KeyState) {
	if e.jumpTimer > 0 {
		e.jumpTimer -= dt
	}
	if e.bounceTimer > 0 {
		e.bounceTimer -= dt
	}

	e.rebuildSnapshot()
	s := &e.snap

	// Main group gates every player-directed force this tick.
	e.group = systems.MainGroup(s.pos, s.part, p.InteractionRadius)
	e.groupByID = make(map[int]bool, len(s.part))
	for i := range s.part {
		if e.group[i] {
			e.groupByID[s.part[i].ID] = true
		}
	}

	systems.ResetForces(s.force, s.body, s.part, p.Gravity)
	systems.AccumulatePairForces(s.pos, s.force, s.part, systems.ForceParams{
		ParticleRadius:    p.ParticleRadius,
		Repulsion:         p.Repulsion,
		Cohesion:          p.Cohesion,
		InteractionRadius: p.InteractionRadius,
	})

	if dragging {
		systems.ApplyPointerForce(s.pos, s.vel, s.force, s.part, e.group,
			drag.X, drag.Y, p.PointerRadius, p.PointerForce)
	}
	if keys != nil {
		e.applyKeyboard(keys)
	}

	systems.Integrate(s.pos, s.vel, s.force, s.body, s.part, p.Damping, dt)

	e.reabsorb()

	impact := systems.ResolveBounds(s.pos, s.vel, s.body, s.part, e.width, e.height)
	e.recordBounce(impact)

	e.updateEnemies(dt)
	if !e.gameOver {
		e.combatPass()
	}
	e.pruneDead()

	e.tick++
}

// rebuildSnapshot refreshes the dense particle view from the ECS world.
func (e *Engine) rebuildSnapshot() {
	e.snap.reset()
	query := e.filter.Query()
	for query.Next() {
		pos, vel, force, body, part := query.Get()
		e.snap.entities = append(e.snap.entities, query.Entity())
		e.snap.pos = append(e.snap.pos, pos)
		e.snap.vel = append(e.snap.vel, vel)
		e.snap.force = append(e.snap.force, force)
		e.snap.body = append(e.snap.body, body)
		e.snap.part = append(e.snap.part, part)
	}
}

// applyKeyboard handles locomotion and the edge-triggered jump.
func (e *Engine) applyKeyboard(keys *KeyState) {
	s := &e.snap

	dir := float32(0)
	if keys.Left {
		dir--
	}
	if keys.Right {
		dir++
	}
	if dir != 0 {
		systems.ApplyLocomotion(s.pos, s.force, s.part, e.group, dir)
	}

	// Jump fires on the not-pressed -> pressed transition only, gated by the
	// on-ground test and a cooldown. Velocity override, not a force.
	if keys.Jump && !e.jumpHeld && e.jumpTimer <= 0 &&
		systems.OnGround(s.pos, s.body, s.part, e.group, e.height) {
		for i := range s.part {
			if e.group[i] && s.part[i].Alive() && !s.part[i].Emitted {
				s.vel[i].Y = jumpVelocity
			}
		}
		e.jumpTimer = jumpCooldownSec
	}
	e.jumpHeld = keys.Jump
}

// recordBounce emits a bounce sound for the tick's hardest floor impact,
// gated by a short cooldown so repeated contact does not spam events.
func (e *Engine) recordBounce(impact float32) {
	if impact < bounceMinSpeed || e.bounceTimer > 0 {
		return
	}
	e.pushSound(SoundBounce, systems.Clamp01(impact/bounceSpeedCeiling))
	e.bounceTimer = bounceCooldownSec
}

// pruneDead removes particles whose health reached zero this tick and
// latches game-over exactly once when the collection empties.
func (e *Engine) pruneDead() {
	var toRemove []ecs.Entity
	query := e.filter.Query()
	for query.Next() {
		_, _, _, _, part := query.Get()
		if !part.Alive() {
			toRemove = append(toRemove, query.Entity())
		}
	}
	if len(toRemove) == 0 {
		return
	}

	for _, ent := range toRemove {
		e.mapper.Remove(ent)
		e.liveCount--
	}

	if e.liveCount <= 0 && !e.gameOver {
		e.gameOver = true
		e.pushSound(SoundGameOver, 1)
		e.pushState(StateEvent{GameOver: true, ParticleCount: 0})
		return
	}
	e.pushState(StateEvent{GameOver: e.gameOver, ParticleCount: e.liveCount})
}

// ResetGame clears game-over and combat cooldown state and re-runs both
// initialization routines.
func (e *Engine) ResetGame() {
	e.gameOver = false
	e.hitCooldowns = make(map[int]float32)
	e.jumpHeld = false
	e.jumpTimer = 0
	e.bounceTimer = 0
	e.sounds = nil
	e.states = nil
	e.InitSlime(e.particleInit)
	e.InitEnemies(e.enemyInit)
}

// ParticleCount returns the number of live particles.
func (e *Engine) ParticleCount() int {
	return e.liveCount
}

// GameOver reports whether the terminal state has been latched.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Tick returns the number of completed updates.
func (e *Engine) Tick() int32 {
	return e.tick
}

// ParticleView is a read-only projection for rendering and telemetry.
type ParticleView struct {
	ID        int
	Pos       Vec2
	Vel       Vec2
	Radius    float32
	Role      components.Role
	Emitted   bool
	HasHealth bool
	Health    float32
	MaxHealth float32
	MainGroup bool
}

// VisitParticles calls fn for every live particle. The view reflects the
// state after the most recent Update; the main-group flag is from the same
// tick. Collaborators must not call back into the engine from fn.
func (e *Engine) VisitParticles(fn func(ParticleView)) {
	query := e.filter.Query()
	for query.Next() {
		pos, vel, _, body, part := query.Get()
		if !part.Alive() {
			continue
		}
		fn(ParticleView{
			ID:        part.ID,
			Pos:       Vec2{X: pos.X, Y: pos.Y},
			Vel:       Vec2{X: vel.X, Y: vel.Y},
			Radius:    body.Radius,
			Role:      part.Role,
			Emitted:   part.Emitted,
			HasHealth: part.HasHealth,
			Health:    part.Health,
			MaxHealth: part.MaxHealth,
			MainGroup: e.groupByID[part.ID],
		})
	}
}

// VisitEnemies calls fn for every enemy, dead ones included so renderers
// can show corpses.
func (e *Engine) VisitEnemies(fn func(components.Enemy)) {
	for i := range e.enemies {
		fn(e.enemies[i])
	}
}
