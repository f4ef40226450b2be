package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the frame loop.
const (
	PhaseSim    = "sim"
	PhaseEvents = "events"
	PhaseDraw   = "draw"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks performance metrics over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a performance collector averaging over windowSize
// ticks (e.g. 60 for one second at 60 fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// AvgTick returns the average tick duration over the window.
func (p *PerfCollector) AvgTick() time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		total += p.samples[i].TickDuration
	}
	return total / time.Duration(p.sampleCount)
}

// AvgPhase returns the average duration of one phase over the window.
func (p *PerfCollector) AvgPhase(phase string) time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		total += p.samples[i].Phases[phase]
	}
	return total / time.Duration(p.sampleCount)
}

// LogSummary emits the window averages via slog.
func (p *PerfCollector) LogSummary(tick int32) {
	slog.Info("perf",
		"tick", tick,
		"avg_tick", p.AvgTick().Round(time.Microsecond),
		"sim", p.AvgPhase(PhaseSim).Round(time.Microsecond),
		"events", p.AvgPhase(PhaseEvents).Round(time.Microsecond),
		"draw", p.AvgPhase(PhaseDraw).Round(time.Microsecond),
	)
}
