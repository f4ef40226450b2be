package sim

// SoundKind discriminates engine-emitted sound events. The engine never
// plays audio; callers drain the queue and decide what to do with it.
type SoundKind uint8

const (
	SoundBounce SoundKind = iota
	SoundLaunch
	SoundReabsorb
	SoundPop      // an emitted particle destroyed on enemy contact
	SoundEnemyHit // an enemy killed
	SoundHurt     // a body particle destroyed on enemy contact
	SoundGameOver
)

// String returns a stable name for logging and telemetry.
func (k SoundKind) String() string {
	switch k {
	case SoundBounce:
		return "bounce"
	case SoundLaunch:
		return "launch"
	case SoundReabsorb:
		return "reabsorb"
	case SoundPop:
		return "pop"
	case SoundEnemyHit:
		return "enemy_hit"
	case SoundHurt:
		return "hurt"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// SoundEvent is a fire-and-forget sound trigger with intensity in [0, 1].
type SoundEvent struct {
	Kind      SoundKind
	Intensity float32
}

// StateEvent reports a change in the live particle collection.
type StateEvent struct {
	GameOver      bool
	ParticleCount int
}

func (e *Engine) pushSound(kind SoundKind, intensity float32) {
	e.sounds = append(e.sounds, SoundEvent{Kind: kind, Intensity: intensity})
}

func (e *Engine) pushState(ev StateEvent) {
	e.states = append(e.states, ev)
}

// DrainSounds returns all pending sound events in emission order and clears
// the queue. The caller drains after each tick; delivery is synchronous and
// never re-enters the engine.
func (e *Engine) DrainSounds() []SoundEvent {
	out := e.sounds
	e.sounds = nil
	return out
}

// DrainStates returns all pending game-state events in emission order and
// clears the queue.
func (e *Engine) DrainStates() []StateEvent {
	out := e.states
	e.states = nil
	return out
}
