package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	ParticleCount int  `csv:"particles"`
	EnemiesAlive  int  `csv:"enemies_alive"`
	GameOver      bool `csv:"game_over"`

	// Events during window
	Launches       int `csv:"launches"`
	Reabsorbs      int `csv:"reabsorbs"`
	Bounces        int `csv:"bounces"`
	ParticlesLost  int `csv:"particles_lost"`
	EnemiesKilled  int `csv:"enemies_killed"`
	BodyContacts   int `csv:"body_contacts"`

	// Speed distribution sampled at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// speedStats fills the distribution fields from a sample of particle speeds.
func (w *WindowStats) speedStats(speeds []float64) {
	if len(speeds) == 0 {
		return
	}
	sorted := make([]float64, len(speeds))
	copy(sorted, speeds)
	sort.Float64s(sorted)

	w.SpeedMean = stat.Mean(sorted, nil)
	w.SpeedStd = stat.StdDev(sorted, nil)
	w.SpeedP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	w.SpeedP90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
}
