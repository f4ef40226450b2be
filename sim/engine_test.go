package sim

import (
	"math"
	"testing"

	"github.com/pthm-cable/slime/components"
)

const dt = 1.0 / 60.0

func testParams() Params {
	return Params{
		Gravity:           400,
		ParticleCount:     30,
		ParticleRadius:    6,
		Repulsion:         60,
		Cohesion:          1.2,
		InteractionRadius: 60,
		Damping:           0.98,
		PointerRadius:     150,
		PointerForce:      500,
	}
}

// quietParams disables every force so tests can observe single mechanisms.
func quietParams() Params {
	p := testParams()
	p.Gravity = 0
	p.Repulsion = 0
	p.Cohesion = 0
	p.Damping = 1
	p.InteractionRadius = 500
	return p
}

func newTestEngine(particles, enemies int) *Engine {
	return New(Options{
		Width:         800,
		Height:        600,
		ParticleCount: particles,
		EnemyCount:    enemies,
		Seed:          1,
	})
}

func collectParticles(e *Engine) []ParticleView {
	var out []ParticleView
	e.VisitParticles(func(v ParticleView) { out = append(out, v) })
	return out
}

func TestNewEngineCounts(t *testing.T) {
	e := newTestEngine(30, 0)

	if got := e.ParticleCount(); got != 30 {
		t.Fatalf("ParticleCount = %d, want 30", got)
	}

	eyes := 0
	for _, v := range collectParticles(e) {
		if v.Role == components.RoleEye {
			eyes++
		}
		if v.Emitted {
			t.Errorf("particle %d starts emitted", v.ID)
		}
		if v.HasHealth {
			t.Errorf("particle %d starts with health tracking", v.ID)
		}
	}
	if eyes != 2 {
		t.Errorf("eye count = %d, want 2", eyes)
	}
	if e.GameOver() {
		t.Error("fresh engine reports game over")
	}
}

func TestNewEngineTinyCounts(t *testing.T) {
	tests := []struct {
		name      string
		particles int
		wantEyes  int
	}{
		{"single particle is an eyeless body", 1, 0},
		{"two particles are eyes only", 2, 2},
		{"zero particles", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.particles, 0)

			if got := e.ParticleCount(); got != tt.particles {
				t.Fatalf("ParticleCount = %d, want %d", got, tt.particles)
			}
			eyes := 0
			for _, v := range collectParticles(e) {
				if v.Role == components.RoleEye {
					eyes++
				}
			}
			if eyes != tt.wantEyes {
				t.Errorf("eye count = %d, want %d", eyes, tt.wantEyes)
			}
		})
	}
}

func TestNewEngineHealthTrackingFollowsEnemies(t *testing.T) {
	if e := newTestEngine(10, 0); e.healthTracking {
		t.Error("health tracking active without enemies")
	}
	if e := newTestEngine(10, 3); !e.healthTracking {
		t.Error("health tracking inactive with enemies present")
	}
	if e := newTestEngine(10, 3); len(e.enemies) != 3 {
		t.Errorf("enemy count = %d, want 3", len(e.enemies))
	}
}

// TestGravityFirstTick isolates gravity: with pair forces zeroed, one tick
// must add g*dt to every particle's vertical velocity, then damp it.
func TestGravityFirstTick(t *testing.T) {
	e := newTestEngine(30, 0)
	p := testParams()
	p.Repulsion = 0
	p.Cohesion = 0

	e.Update(dt, p, Vec2{}, false, nil)

	want := float32(400*dt) * p.Damping
	for _, v := range collectParticles(e) {
		if math.Abs(float64(v.Vel.Y-want)) > 1e-3 {
			t.Fatalf("particle %d vel.Y = %v, want %v", v.ID, v.Vel.Y, want)
		}
		if v.Vel.X != 0 {
			t.Fatalf("particle %d vel.X = %v, want 0", v.ID, v.Vel.X)
		}
	}
	if e.Tick() != 1 {
		t.Errorf("tick = %d, want 1", e.Tick())
	}
}

// TestContainmentOverTicks runs the full pipeline under gravity and checks
// that no particle ever leaves the world rectangle.
func TestContainmentOverTicks(t *testing.T) {
	e := newTestEngine(30, 0)
	p := testParams()

	for i := 0; i < 120; i++ {
		e.Update(dt, p, Vec2{}, false, nil)

		for _, v := range collectParticles(e) {
			if v.Pos.X < v.Radius || v.Pos.X > 800-v.Radius ||
				v.Pos.Y < v.Radius || v.Pos.Y > 600-v.Radius {
				t.Fatalf("tick %d: particle %d escaped to (%v,%v)", i, v.ID, v.Pos.X, v.Pos.Y)
			}
		}
	}
}

func (e *Engine) placeOnFloor() {
	e.rebuildSnapshot()
	for i := range e.snap.pos {
		e.snap.pos[i].X = 100 + float32(i)*10
		e.snap.pos[i].Y = e.height - e.snap.body[i].Radius
		e.snap.vel[i].X = 0
		e.snap.vel[i].Y = 0
	}
}

func TestJumpEdgeTriggerAndCooldown(t *testing.T) {
	e := newTestEngine(10, 0)
	p := quietParams()

	assertVelY := func(t *testing.T, want float32, msg string) {
		t.Helper()
		for _, v := range collectParticles(e) {
			if math.Abs(float64(v.Vel.Y-want)) > 1e-3 {
				t.Fatalf("%s: particle %d vel.Y = %v, want %v", msg, v.ID, v.Vel.Y, want)
			}
		}
	}

	// Press on the ground: jump fires.
	e.placeOnFloor()
	e.Update(dt, p, Vec2{}, false, &KeyState{Jump: true})
	assertVelY(t, jumpVelocity, "initial press")

	// Still held: no re-trigger.
	e.placeOnFloor()
	e.Update(dt, p, Vec2{}, false, &KeyState{Jump: true})
	assertVelY(t, 0, "held key")

	// Release, then press again inside the cooldown window: no trigger.
	e.Update(dt, p, Vec2{}, false, &KeyState{})
	e.placeOnFloor()
	e.Update(dt, p, Vec2{}, false, &KeyState{Jump: true})
	assertVelY(t, 0, "press during cooldown")

	// Let the cooldown expire with the key released, then press: fires again.
	for i := 0; i < 20; i++ {
		e.Update(dt, p, Vec2{}, false, &KeyState{})
	}
	e.placeOnFloor()
	e.Update(dt, p, Vec2{}, false, &KeyState{Jump: true})
	assertVelY(t, jumpVelocity, "press after cooldown")
}

func TestJumpRequiresGround(t *testing.T) {
	e := newTestEngine(10, 0)
	p := quietParams()

	// Mid-air cluster: the press must not fire.
	e.rebuildSnapshot()
	for i := range e.snap.pos {
		e.snap.pos[i].X = 100 + float32(i)*10
		e.snap.pos[i].Y = 300
	}
	e.Update(dt, p, Vec2{}, false, &KeyState{Jump: true})

	for _, v := range collectParticles(e) {
		if v.Vel.Y != 0 {
			t.Fatalf("airborne jump fired: particle %d vel.Y = %v", v.ID, v.Vel.Y)
		}
	}
}

func TestDragPullsMainGroup(t *testing.T) {
	e := newTestEngine(10, 0)
	p := quietParams()

	// Cluster left of the drag point; every particle should gain +X velocity.
	e.rebuildSnapshot()
	for i := range e.snap.pos {
		e.snap.pos[i].X = 300 + float32(i)*8
		e.snap.pos[i].Y = 300
	}
	e.Update(dt, p, Vec2{X: 420, Y: 300}, true, nil)

	for _, v := range collectParticles(e) {
		if v.Vel.X <= 0 {
			t.Fatalf("particle %d vel.X = %v, want > 0", v.ID, v.Vel.X)
		}
		if !v.MainGroup {
			t.Fatalf("particle %d not flagged as main group", v.ID)
		}
	}
}

func TestResetGame(t *testing.T) {
	e := newTestEngine(10, 2)
	p := testParams()

	for i := 0; i < 5; i++ {
		e.Update(dt, p, Vec2{}, false, nil)
	}
	e.LaunchParticle()
	e.enemies[0].Health = 5
	e.gameOver = true

	e.ResetGame()

	if e.GameOver() {
		t.Error("game over survived reset")
	}
	if got := e.ParticleCount(); got != 10 {
		t.Errorf("ParticleCount = %d, want 10", got)
	}
	if len(e.enemies) != 2 {
		t.Fatalf("enemy count = %d, want 2", len(e.enemies))
	}
	for i, enemy := range e.enemies {
		if enemy.Dead || enemy.Health != enemy.MaxHealth {
			t.Errorf("enemy %d not restored: dead=%v health=%v", i, enemy.Dead, enemy.Health)
		}
	}
	for _, v := range collectParticles(e) {
		if v.Emitted {
			t.Errorf("particle %d still emitted after reset", v.ID)
		}
	}
	if sounds := e.DrainSounds(); len(sounds) != 0 {
		t.Errorf("sound queue not cleared: %v", sounds)
	}
	if states := e.DrainStates(); len(states) != 0 {
		t.Errorf("state queue not cleared: %v", states)
	}
}

func TestDrainSoundsClearsQueue(t *testing.T) {
	e := newTestEngine(10, 0)
	e.LaunchParticle()

	sounds := e.DrainSounds()
	if len(sounds) != 1 || sounds[0].Kind != SoundLaunch {
		t.Fatalf("sounds = %v, want one launch event", sounds)
	}
	if sounds[0].Intensity <= 0 || sounds[0].Intensity > 1 {
		t.Errorf("intensity = %v, want in (0,1]", sounds[0].Intensity)
	}
	if again := e.DrainSounds(); len(again) != 0 {
		t.Errorf("second drain returned %v, want empty", again)
	}
}
