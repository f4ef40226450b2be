package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slime/sim"
)

// Charged-launch tuning: magnitude grows with hold time on the right button.
const (
	chargeRate   = 600.0 // speed units per held second
	chargeMin    = 200.0
	chargeMax    = 900.0
	frameSeconds = 1.0 / 60.0
)

// handleInput translates raylib input into the engine's input structures.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.wantReset = true
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showHUD = !g.showHUD
	}
	if rl.IsKeyPressed(rl.KeyE) {
		g.wantLaunch = true
	}

	// Pointer drag on the left button.
	mouse := rl.GetMousePosition()
	g.dragging = rl.IsMouseButtonDown(rl.MouseLeftButton)
	g.dragPoint = sim.Vec2{X: mouse.X, Y: mouse.Y}

	// Charged, aimed launch on the right button: hold to charge, release to
	// fire toward the cursor.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		g.charging = true
		g.chargeTime += frameSeconds
	} else if g.charging {
		mag := chargeMin + g.chargeTime*chargeRate
		if mag > chargeMax {
			mag = chargeMax
		}
		g.eng.LaunchChargedParticle(sim.Vec2{X: mouse.X, Y: mouse.Y}, mag)
		g.charging = false
		g.chargeTime = 0
	}

	// Locomotion and jump.
	g.keys = sim.KeyState{
		Left:  rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Jump:  rl.IsKeyDown(rl.KeySpace) || rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
	}
	g.haveKeys = true
}

// ChargeFraction reports the current charge level in [0,1] for the HUD.
func (g *Game) ChargeFraction() float32 {
	if !g.charging {
		return 0
	}
	frac := (chargeMin + g.chargeTime*chargeRate) / chargeMax
	if frac > 1 {
		return 1
	}
	return frac
}
