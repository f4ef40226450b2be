package sim

// RenderMode is a hint consumed only by the rendering collaborator.
type RenderMode uint8

const (
	RenderCircles RenderMode = iota
	RenderMetaballs
)

// Params is the immutable-per-tick record of physics tunables. The engine
// reads it fresh on every Update call and never retains a reference.
type Params struct {
	Gravity           float32
	ParticleCount     int
	ParticleRadius    float32
	Repulsion         float32
	Cohesion          float32
	InteractionRadius float32
	Damping           float32
	PointerRadius     float32
	PointerForce      float32
	RenderMode        RenderMode
}

// KeyState carries the discrete key states for one tick. A nil *KeyState on
// Update skips locomotion and jump logic entirely.
type KeyState struct {
	Left  bool
	Right bool
	Jump  bool
}

// Vec2 is a 2D point used on the public engine surface.
type Vec2 struct {
	X, Y float32
}

// Options configures a new engine instance.
type Options struct {
	Width         float32
	Height        float32
	ParticleCount int
	EnemyCount    int
	Seed          int64 // 0 = fixed default seed
}
