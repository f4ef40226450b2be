package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/slime/sim"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %dx%d, want 800x600", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Physics.Gravity != 400 {
		t.Errorf("gravity = %v, want 400", cfg.Physics.Gravity)
	}
	if cfg.Slime.ParticleCount != 30 {
		t.Errorf("particle_count = %d, want 30", cfg.Slime.ParticleCount)
	}
	if cfg.Slime.Damping <= 0 || cfg.Slime.Damping > 1 {
		t.Errorf("damping = %v, want in (0,1]", cfg.Slime.Damping)
	}
	if cfg.Derived.DT32 <= 0 {
		t.Errorf("derived DT32 = %v, want positive", cfg.Derived.DT32)
	}
	if cfg.Derived.Width32 != 800 || cfg.Derived.Height32 != 600 {
		t.Errorf("derived dims = %vx%v, want 800x600", cfg.Derived.Width32, cfg.Derived.Height32)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	content := []byte("slime:\n  particle_count: 50\n  cohesion: 2.5\nenemies:\n  count: 0\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Slime.ParticleCount != 50 {
		t.Errorf("particle_count = %d, want overridden 50", cfg.Slime.ParticleCount)
	}
	if cfg.Slime.Cohesion != 2.5 {
		t.Errorf("cohesion = %v, want overridden 2.5", cfg.Slime.Cohesion)
	}
	if cfg.Enemies.Count != 0 {
		t.Errorf("enemies.count = %d, want overridden 0", cfg.Enemies.Count)
	}
	// Untouched sections keep their defaults.
	if cfg.Screen.Width != 800 {
		t.Errorf("screen width = %d, want default 800", cfg.Screen.Width)
	}
	if cfg.Physics.Gravity != 400 {
		t.Errorf("gravity = %v, want default 400", cfg.Physics.Gravity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestSimParamsMapping(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p := cfg.SimParams()
	if p.Gravity != float32(cfg.Physics.Gravity) {
		t.Errorf("Gravity = %v, want %v", p.Gravity, cfg.Physics.Gravity)
	}
	if p.ParticleCount != cfg.Slime.ParticleCount {
		t.Errorf("ParticleCount = %d, want %d", p.ParticleCount, cfg.Slime.ParticleCount)
	}
	if p.RenderMode != sim.RenderMetaballs {
		t.Errorf("RenderMode = %v, want metaballs from defaults", p.RenderMode)
	}

	cfg.Render.Mode = "circles"
	if got := cfg.SimParams().RenderMode; got != sim.RenderCircles {
		t.Errorf("RenderMode = %v, want circles", got)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Slime.Repulsion = 77.5

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if back.Slime.Repulsion != 77.5 {
		t.Errorf("repulsion = %v, want 77.5 after round trip", back.Slime.Repulsion)
	}
}
