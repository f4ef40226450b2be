package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slime/components"
	"github.com/pthm-cable/slime/sim"
)

// Draw renders the frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(18, 18, 28, 255))

	g.drawEnemies()
	g.drawParticles()

	// HUD
	rl.DrawText(fmt.Sprintf("Tick: %d", g.eng.Tick()), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Particles: %d", g.eng.ParticleCount()), 10, 35, 20, rl.White)
	rl.DrawFPS(10, 60)
	if g.paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Yellow)
	}
	if frac := g.ChargeFraction(); frac > 0 {
		rl.DrawRectangle(10, 110, int32(frac*120), 10, rl.Orange)
		rl.DrawRectangleLines(10, 110, 120, 10, rl.White)
	}

	g.drawPanels()

	rl.EndDrawing()
}

// drawParticles renders the slime body. Metaball mode layers translucent
// halos under the cores so touching particles read as one blob; circle mode
// is the cheap debug view.
func (g *Game) drawParticles() {
	metaballs := g.params.RenderMode == sim.RenderMetaballs

	if metaballs {
		g.eng.VisitParticles(func(p sim.ParticleView) {
			if p.Role == components.RoleEye {
				return
			}
			halo := rl.NewColor(60, 200, 90, 60)
			rl.DrawCircleV(rl.Vector2{X: p.Pos.X, Y: p.Pos.Y}, p.Radius*2.4, halo)
		})
	}

	g.eng.VisitParticles(func(p sim.ParticleView) {
		center := rl.Vector2{X: p.Pos.X, Y: p.Pos.Y}
		switch {
		case p.Role == components.RoleEye:
			rl.DrawCircleV(center, p.Radius, rl.White)
			rl.DrawCircleV(center, p.Radius*0.45, rl.Black)
		case p.Emitted:
			rl.DrawCircleV(center, p.Radius, rl.Orange)
		default:
			body := rl.NewColor(70, 220, 100, 255)
			if !p.MainGroup {
				body = rl.NewColor(70, 160, 90, 255)
			}
			rl.DrawCircleV(center, p.Radius, body)
		}
	})
}

// drawEnemies renders enemy hit boxes with health bars; dead ones stay as
// dimmed husks.
func (g *Game) drawEnemies() {
	g.eng.VisitEnemies(func(e components.Enemy) {
		half := e.Size / 2
		x := int32(e.Pos.X - half)
		y := int32(e.Pos.Y - half)
		size := int32(e.Size)

		if e.Dead {
			rl.DrawRectangle(x, y, size, size, rl.NewColor(80, 40, 40, 120))
			return
		}

		rl.DrawRectangle(x, y, size, size, rl.NewColor(200, 60, 60, 255))
		rl.DrawRectangleLines(x, y, size, size, rl.Maroon)

		// Health bar above the box.
		frac := e.Health / e.MaxHealth
		rl.DrawRectangle(x, y-8, int32(float32(size)*frac), 4, rl.Green)
		rl.DrawRectangleLines(x, y-8, size, 4, rl.DarkGray)
	})
}
