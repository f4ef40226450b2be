package systems

import "github.com/pthm-cable/slime/components"

// PatrolEpsilon is the waypoint arrival tolerance.
const PatrolEpsilon = 2.0

// AdvancePatrol moves a live enemy linearly toward its current waypoint at
// its patrol speed. On arrival within epsilon the enemy snaps to the
// waypoint and advances to the next one, wrapping circularly.
func AdvancePatrol(e *components.Enemy, dt float32) {
	if e.Dead || len(e.Waypoints) == 0 {
		return
	}

	target := e.Waypoints[e.Waypoint]
	dist := distance(e.Pos.X, e.Pos.Y, target.X, target.Y)
	if dist <= PatrolEpsilon {
		e.Pos = target
		e.Waypoint = (e.Waypoint + 1) % len(e.Waypoints)
		return
	}

	e.Vel.X = (target.X - e.Pos.X) / dist * e.Speed
	e.Vel.Y = (target.Y - e.Pos.Y) / dist * e.Speed

	step := e.Speed * dt
	if step >= dist {
		e.Pos = target
		e.Waypoint = (e.Waypoint + 1) % len(e.Waypoints)
		return
	}
	e.Pos.X += e.Vel.X * dt
	e.Pos.Y += e.Vel.Y * dt
}

// BoxesOverlap tests two axis-aligned boxes given by center and half-extent.
func BoxesOverlap(ax, ay, aHalf, bx, by, bHalf float32) bool {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	reach := aHalf + bHalf
	return dx < reach && dy < reach
}
