// Package game wires the slime engine to raylib input and rendering, drains
// the engine's event queues, and feeds telemetry.
package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/slime/components"
	"github.com/pthm-cable/slime/config"
	"github.com/pthm-cable/slime/sim"
	"github.com/pthm-cable/slime/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
}

// Game holds the complete game state around one engine instance.
type Game struct {
	eng    *sim.Engine
	params sim.Params
	dt     float32

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *telemetry.PerfCollector

	paused   bool
	logStats bool
	showHUD  bool

	// Aimed-launch charge state
	charging   bool
	chargeTime float32

	// Per-frame input, filled by handleInput
	dragPoint  sim.Vec2
	dragging   bool
	keys       sim.KeyState
	haveKeys   bool
	wantReset  bool
	wantLaunch bool
}

// NewGameWithOptions creates a game instance from the loaded config.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	eng := sim.New(sim.Options{
		Width:         cfg.Derived.Width32,
		Height:        cfg.Derived.Height32,
		ParticleCount: cfg.Slime.ParticleCount,
		EnemyCount:    cfg.Enemies.Count,
		Seed:          opts.Seed,
	})

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Warn("telemetry output disabled", "error", err)
		output = nil
	}
	if output != nil {
		if err := cfg.WriteYAML(output.Dir() + "/config.yaml"); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	return &Game{
		eng:       eng,
		params:    cfg.SimParams(),
		dt:        cfg.Derived.DT32,
		collector: telemetry.NewCollector(statsWindow, cfg.Derived.DT32),
		output:    output,
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:  opts.LogStats,
	}
}

// Update runs one frame in graphical mode: input, one fixed tick, events.
func (g *Game) Update() {
	g.handleInput()

	if g.wantReset {
		g.eng.ResetGame()
		g.wantReset = false
		slog.Info("game reset")
	}
	if g.paused {
		return
	}
	if g.wantLaunch {
		g.eng.LaunchParticle()
		g.wantLaunch = false
	}

	g.step()
}

// UpdateHeadless runs one tick with no player input.
func (g *Game) UpdateHeadless() {
	g.step()
}

// step advances the engine one fixed tick and drains its event queues.
func (g *Game) step() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseSim)

	var keys *sim.KeyState
	if g.haveKeys {
		keys = &g.keys
	}
	g.eng.Update(g.dt, g.params, g.dragPoint, g.dragging, keys)

	g.perf.StartPhase(telemetry.PhaseEvents)
	g.drainEvents()
	g.perf.EndTick()

	if g.collector.WindowDone(g.eng.Tick()) {
		g.flushWindow()
	}
}

// drainEvents consumes the engine's sound and state queues.
func (g *Game) drainEvents() {
	for _, ev := range g.eng.DrainSounds() {
		switch ev.Kind {
		case sim.SoundBounce:
			g.collector.RecordBounce()
		case sim.SoundLaunch:
			g.collector.RecordLaunch()
		case sim.SoundReabsorb:
			g.collector.RecordReabsorb()
		case sim.SoundPop:
			g.collector.RecordParticleLost()
		case sim.SoundEnemyHit:
			g.collector.RecordEnemyKilled()
		case sim.SoundHurt:
			g.collector.RecordBodyContact()
			g.collector.RecordParticleLost()
		case sim.SoundGameOver:
			slog.Info("game over", "tick", g.eng.Tick())
		}
		// Audio synthesis lives outside this repo; sound events end here.
	}

	for _, st := range g.eng.DrainStates() {
		slog.Debug("state", "game_over", st.GameOver, "particles", st.ParticleCount)
	}
}

// flushWindow closes the current telemetry window.
func (g *Game) flushWindow() {
	speeds := g.sampleSpeeds()
	enemiesAlive := 0
	g.eng.VisitEnemies(func(e components.Enemy) {
		if !e.Dead {
			enemiesAlive++
		}
	})

	stats := g.collector.Flush(g.eng.Tick(), g.eng.ParticleCount(), enemiesAlive, g.eng.GameOver(), speeds)

	if g.logStats {
		slog.Info("window",
			"tick", stats.WindowEndTick,
			"particles", stats.ParticleCount,
			"enemies_alive", stats.EnemiesAlive,
			"launches", stats.Launches,
			"reabsorbs", stats.Reabsorbs,
			"particles_lost", stats.ParticlesLost,
			"speed_mean", stats.SpeedMean,
		)
		g.perf.LogSummary(stats.WindowEndTick)
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Warn("telemetry write failed", "error", err)
	}
}

// sampleSpeeds collects live particle speeds for distribution stats.
func (g *Game) sampleSpeeds() []float64 {
	var speeds []float64
	g.eng.VisitParticles(func(p sim.ParticleView) {
		speeds = append(speeds, math.Hypot(float64(p.Vel.X), float64(p.Vel.Y)))
	})
	return speeds
}

// Tick returns the engine tick.
func (g *Game) Tick() int32 {
	return g.eng.Tick()
}

// Unload releases resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Warn("closing telemetry output", "error", err)
	}
}
