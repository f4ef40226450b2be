// Package telemetry accumulates per-window simulation statistics and writes
// them as CSV for offline analysis.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	// Event counters for the current window
	launches      int
	reabsorbs     int
	bounces       int
	particlesLost int
	enemiesKilled int
	bodyContacts  int
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick.
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	// Round: dt arrives as a float32 (e.g. 1/60), so the quotient lands just
	// under the integer tick count.
	ticksPerWindow := int32(windowDurationSec/float64(dt) + 0.5)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordLaunch records a particle launch.
func (c *Collector) RecordLaunch() { c.launches++ }

// RecordReabsorb records a projectile rejoining the body.
func (c *Collector) RecordReabsorb() { c.reabsorbs++ }

// RecordBounce records a floor-impact sound trigger.
func (c *Collector) RecordBounce() { c.bounces++ }

// RecordParticleLost records a particle destroyed in combat.
func (c *Collector) RecordParticleLost() { c.particlesLost++ }

// RecordEnemyKilled records an enemy death.
func (c *Collector) RecordEnemyKilled() { c.enemiesKilled++ }

// RecordBodyContact records a lethal body-enemy contact.
func (c *Collector) RecordBodyContact() { c.bodyContacts++ }

// WindowDone reports whether the current window ends at the given tick.
func (c *Collector) WindowDone(tick int32) bool {
	return tick-c.windowStartTick >= c.windowDurationTicks
}

// Flush closes the current window and returns its stats. speeds is a sample
// of live particle speeds taken at window end; counts describe the live
// population at the same moment.
func (c *Collector) Flush(tick int32, particles, enemiesAlive int, gameOver bool, speeds []float64) WindowStats {
	w := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * float64(c.dt),
		ParticleCount:   particles,
		EnemiesAlive:    enemiesAlive,
		GameOver:        gameOver,
		Launches:        c.launches,
		Reabsorbs:       c.reabsorbs,
		Bounces:         c.bounces,
		ParticlesLost:   c.particlesLost,
		EnemiesKilled:   c.enemiesKilled,
		BodyContacts:    c.bodyContacts,
	}
	w.speedStats(speeds)

	c.windowStartTick = tick
	c.launches = 0
	c.reabsorbs = 0
	c.bounces = 0
	c.particlesLost = 0
	c.enemiesKilled = 0
	c.bodyContacts = 0

	return w
}
