package main

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/slime/sim"
)

// FitnessEvaluator runs headless simulations and scores parameter vectors.
// A good slime settles: low residual particle speed after the drop, while
// staying one cohesive blob (dispersion near the expected packing radius).
type FitnessEvaluator struct {
	base        sim.Params
	width       float32
	height      float32
	particles   int
	maxTicks    int
	settleTicks int
	dt          float32
	seeds       []int64
}

// NewFitnessEvaluator creates an evaluator over the given seeds.
func NewFitnessEvaluator(base sim.Params, width, height float32, particles, maxTicks int, dt float32, seeds []int64) *FitnessEvaluator {
	settle := maxTicks / 4
	if settle < 1 {
		settle = 1
	}
	return &FitnessEvaluator{
		base:        base,
		width:       width,
		height:      height,
		particles:   particles,
		maxTicks:    maxTicks,
		settleTicks: settle,
		dt:          dt,
		seeds:       seeds,
	}
}

// dispersionWeight balances blob spread against residual jitter.
const dispersionWeight = 0.05

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	p := fe.base
	p.Damping = float32(raw[0])
	p.Cohesion = float32(raw[1])
	p.Repulsion = float32(raw[2])
	p.InteractionRadius = float32(raw[3])

	scores := make([]float64, 0, len(fe.seeds))
	for _, seed := range fe.seeds {
		scores = append(scores, fe.runOne(seed, p))
	}
	return stat.Mean(scores, nil)
}

// runOne runs a single headless simulation and scores its final quarter.
func (fe *FitnessEvaluator) runOne(seed int64, p sim.Params) float64 {
	eng := sim.New(sim.Options{
		Width:         fe.width,
		Height:        fe.height,
		ParticleCount: fe.particles,
		EnemyCount:    0, // pure physics run, no combat
		Seed:          seed,
	})

	var jitter, dispersion []float64

	for t := 0; t < fe.maxTicks; t++ {
		eng.Update(fe.dt, p, sim.Vec2{}, false, nil)
		eng.DrainSounds()
		eng.DrainStates()

		if t < fe.maxTicks-fe.settleTicks {
			continue
		}

		var sx, sy float64
		var speeds []float64
		var xs, ys []float64
		eng.VisitParticles(func(v sim.ParticleView) {
			speeds = append(speeds, math.Hypot(float64(v.Vel.X), float64(v.Vel.Y)))
			sx += float64(v.Pos.X)
			sy += float64(v.Pos.Y)
			xs = append(xs, float64(v.Pos.X))
			ys = append(ys, float64(v.Pos.Y))
		})
		n := float64(len(speeds))
		if n == 0 {
			continue
		}
		cx, cy := sx/n, sy/n

		var spread float64
		for i := range xs {
			spread += math.Hypot(xs[i]-cx, ys[i]-cy)
		}
		spread /= n

		jitter = append(jitter, stat.Mean(speeds, nil))
		dispersion = append(dispersion, spread)
	}

	if len(jitter) == 0 {
		return math.Inf(1)
	}

	// Expected packing radius for a disc of n particles.
	target := float64(p.ParticleRadius) * math.Sqrt(float64(fe.particles))
	excess := stat.Mean(dispersion, nil) - target
	if excess < 0 {
		excess = 0
	}

	return stat.Mean(jitter, nil) + dispersionWeight*excess
}
