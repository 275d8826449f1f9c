package tower

import (
	"fmt"
	"math"

	"github.com/vovakirdan/star-quest/internal/core"
)

// BlockChar fills platforms.
const BlockChar = '█'

// Render scales the canvas onto dst and draws the tower with the camera
// offset applied.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Empty() || g.width <= 0 || g.height <= 0 {
		return
	}

	sx := float64(dst.Width()) / g.width
	sy := float64(dst.Height()) / g.height

	draw := func(p Platform) {
		x0 := int(math.Floor(p.X * sx))
		x1 := int(math.Ceil((p.X + p.W) * sx))
		y0 := int(math.Floor((p.Y + g.camY) * sy))
		dst.DrawRect(core.NewRect(x0, y0, max(x1-x0, 1), 1), BlockChar, core.HueColor(p.Hue))
	}

	for _, p := range g.stack {
		draw(p)
	}
	if g.phase == core.PhaseActive {
		draw(g.moving)
	}

	if g.phase == core.PhaseLost {
		dst.DrawMessage("MISSED", fmt.Sprintf("Score: %d  Press R to try again", g.score), core.ColorBrightRed)
	}
	g.renderHUD(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	star := "☆"
	if g.award.Has() {
		star = "★"
	}
	left := fmt.Sprintf(" TOWER  Score: %d/%d ", g.score, g.cfg.Goal)
	right := fmt.Sprintf(" Height: %d  Best: %d  %s ", g.Height(), g.best, star)
	dst.DrawHUD(left, core.ColorBrightWhite, right, core.ColorYellow)
	dst.DrawTextColor(2, 1, g.message, core.ColorGray)
	dst.DrawTextCentered(dst.Height()-1, "Space/Click: drop  R: restart  B: back", core.ColorGray)
}
