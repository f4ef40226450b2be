package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawPanels renders the raygui overlays: the tuning panel (Tab) and the
// game-over screen. Slider changes feed straight into the per-tick params
// record, so they take effect on the next update.
func (g *Game) drawPanels() {
	if g.eng.GameOver() {
		g.drawGameOverPanel()
	}
	if g.showHUD {
		g.drawTuningPanel()
	}
}

func (g *Game) drawGameOverPanel() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, int32(w), int32(h), rl.NewColor(0, 0, 0, 160))
	rl.DrawText("GAME OVER", int32(w/2-110), int32(h/2-60), 40, rl.Red)

	if gui.Button(rl.Rectangle{X: w/2 - 60, Y: h / 2, Width: 120, Height: 30}, "Restart") {
		g.wantReset = true
	}
}

func (g *Game) drawTuningPanel() {
	panelX := float32(rl.GetScreenWidth()) - 260
	panelY := float32(20)

	rl.DrawRectangle(int32(panelX-10), int32(panelY-10), 250, 190, rl.NewColor(0, 0, 0, 120))
	rl.DrawText("Physics", int32(panelX), int32(panelY), 16, rl.RayWhite)
	panelY += 24

	slider := func(label string, value, min, max float32) float32 {
		rl.DrawText(label, int32(panelX), int32(panelY), 12, rl.LightGray)
		panelY += 14
		v := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: 180, Height: 16},
			"", "",
			value, min, max,
		)
		rl.DrawText(fmt.Sprintf("%.2f", v), int32(panelX+190), int32(panelY+2), 12, rl.LightGray)
		panelY += 22
		return v
	}

	g.params.Gravity = slider("Gravity", g.params.Gravity, 0, 1200)
	g.params.Repulsion = slider("Repulsion", g.params.Repulsion, 0, 200)
	g.params.Cohesion = slider("Cohesion", g.params.Cohesion, 0, 5)
	g.params.Damping = slider("Damping", g.params.Damping, 0.8, 1.0)
}
