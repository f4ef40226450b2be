package components

// Enemy is a patrolling hostile with a square hit box.
// Enemies are not ECS entities: the engine owns them in a plain slice and
// they are never removed, only marked dead (inert, excluded from collision).
type Enemy struct {
	ID        int
	Pos       Position
	Vel       Velocity
	Size      float32 // hit-box edge length
	Waypoints []Position
	Waypoint  int // index of the current patrol target
	Speed     float32
	Damage    float32 // contact damage dealt to the player body
	Health    float32
	MaxHealth float32
	Dead      bool
}
