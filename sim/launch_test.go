package sim

import (
	"math"
	"testing"

	"github.com/pthm-cable/slime/components"
)

func emittedParticles(e *Engine) []ParticleView {
	var out []ParticleView
	for _, v := range collectParticles(e) {
		if v.Emitted {
			out = append(out, v)
		}
	}
	return out
}

func TestLaunchParticle(t *testing.T) {
	e := newTestEngine(10, 0)

	e.LaunchParticle()

	emitted := emittedParticles(e)
	if len(emitted) != 1 {
		t.Fatalf("emitted count = %d, want 1", len(emitted))
	}
	v := emitted[0]
	if v.Role == components.RoleEye {
		t.Error("an eye was launched")
	}
	if v.Vel.Y >= 0 {
		t.Errorf("launch vel.Y = %v, want upward (negative)", v.Vel.Y)
	}
	speed := float32(math.Hypot(float64(v.Vel.X), float64(v.Vel.Y)))
	if speed < launchMinSpeed || speed > launchMinSpeed+launchSpeedRange {
		t.Errorf("launch speed = %v, want in [%v,%v]", speed, launchMinSpeed, launchMinSpeed+launchSpeedRange)
	}
}

func TestLaunchParticleNoEligible(t *testing.T) {
	// Two particles means eyes only; nothing may launch.
	e := newTestEngine(2, 0)

	e.LaunchParticle()

	if got := emittedParticles(e); len(got) != 0 {
		t.Fatalf("emitted count = %d, want 0", len(got))
	}
	if sounds := e.DrainSounds(); len(sounds) != 0 {
		t.Errorf("sounds = %v, want none", sounds)
	}
}

func TestChargedLaunchPicksLowestAndTracksHealth(t *testing.T) {
	e := newTestEngine(5, 1) // enemies present, so health tracking is on
	e.rebuildSnapshot()

	// Three bodies at increasing depth, eyes parked lower than all of them
	// to prove eyes are never candidates.
	bodyY := []float32{100, 200, 300}
	bi := 0
	for i, p := range e.snap.part {
		if p.Role == components.RoleEye {
			e.snap.pos[i].X = 150 + float32(i)
			e.snap.pos[i].Y = 500
			continue
		}
		e.snap.pos[i].X = 300
		e.snap.pos[i].Y = bodyY[bi]
		bi++
	}

	e.LaunchChargedParticle(Vec2{X: 300, Y: 800}, 400)

	emitted := emittedParticles(e)
	if len(emitted) != 1 {
		t.Fatalf("emitted count = %d, want 1", len(emitted))
	}
	v := emitted[0]
	if v.Role == components.RoleEye {
		t.Fatal("an eye was charged-launched")
	}
	if v.Pos.Y != 300 {
		t.Errorf("picked particle at Y=%v, want the lowest body at 300", v.Pos.Y)
	}
	if !v.HasHealth || v.Health != particleMaxHealth || v.MaxHealth != particleMaxHealth {
		t.Errorf("health not initialized: has=%v health=%v max=%v", v.HasHealth, v.Health, v.MaxHealth)
	}
	// Target is straight down from the pick; velocity must be (0, magnitude).
	if v.Vel.X != 0 || math.Abs(float64(v.Vel.Y-400)) > 1e-3 {
		t.Errorf("vel = (%v,%v), want (0,400)", v.Vel.X, v.Vel.Y)
	}
}

func TestChargedLaunchWithoutEnemiesSkipsHealth(t *testing.T) {
	e := newTestEngine(5, 0)

	e.LaunchChargedParticle(Vec2{X: 400, Y: 0}, 500)

	emitted := emittedParticles(e)
	if len(emitted) != 1 {
		t.Fatalf("emitted count = %d, want 1", len(emitted))
	}
	if emitted[0].HasHealth {
		t.Error("health tracking applied without enemies")
	}
}

func TestChargedLaunchDegenerateTarget(t *testing.T) {
	e := newTestEngine(3, 0) // a single body plus the eyes
	e.rebuildSnapshot()

	var bodyPos Vec2
	for i, p := range e.snap.part {
		if p.Role == components.RoleBody {
			bodyPos = Vec2{X: e.snap.pos[i].X, Y: e.snap.pos[i].Y}
		}
	}

	e.LaunchChargedParticle(bodyPos, 500)

	emitted := emittedParticles(e)
	if len(emitted) != 1 {
		t.Fatalf("emitted count = %d, want 1", len(emitted))
	}
	v := emitted[0]
	if v.Vel.X != 0 || v.Vel.Y != -500 {
		t.Errorf("vel = (%v,%v), want straight-up fallback (0,-500)", v.Vel.X, v.Vel.Y)
	}
}

func TestReabsorb(t *testing.T) {
	p := quietParams()

	setup := func(t *testing.T) (*Engine, int) {
		t.Helper()
		e := newTestEngine(6, 0)
		e.rebuildSnapshot()
		// Tight cluster of anchors around (300,300).
		for i := range e.snap.pos {
			e.snap.pos[i].X = 300 + float32(i)*8
			e.snap.pos[i].Y = 300
			e.snap.vel[i].X = 0
			e.snap.vel[i].Y = 0
		}
		for i, part := range e.snap.part {
			if part.Role == components.RoleBody {
				return e, i
			}
		}
		t.Fatal("no body particle found")
		return nil, 0
	}

	t.Run("slow and near is reabsorbed once", func(t *testing.T) {
		e, i := setup(t)
		e.snap.part[i].Emitted = true

		e.Update(dt, p, Vec2{}, false, nil)

		if e.snap.part[i].Emitted {
			t.Fatal("particle not reabsorbed")
		}
		sounds := e.DrainSounds()
		if len(sounds) != 1 || sounds[0].Kind != SoundReabsorb {
			t.Fatalf("sounds = %v, want one reabsorb event", sounds)
		}

		// Idempotent: a second tick emits nothing new.
		e.Update(dt, p, Vec2{}, false, nil)
		if again := e.DrainSounds(); len(again) != 0 {
			t.Errorf("second tick sounds = %v, want none", again)
		}
	})

	t.Run("far from the body stays emitted", func(t *testing.T) {
		e, i := setup(t)
		e.snap.part[i].Emitted = true
		e.snap.pos[i].X = 700
		e.snap.pos[i].Y = 100

		e.Update(dt, p, Vec2{}, false, nil)

		if !e.snap.part[i].Emitted {
			t.Error("distant particle was reabsorbed")
		}
	})

	t.Run("fast stays emitted", func(t *testing.T) {
		e, i := setup(t)
		e.snap.part[i].Emitted = true
		e.snap.vel[i].X = 100

		e.Update(dt, p, Vec2{}, false, nil)

		if !e.snap.part[i].Emitted {
			t.Error("fast particle was reabsorbed")
		}
	})
}
