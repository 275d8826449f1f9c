package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/star-quest/internal/core"
)

// Visual characters for rendering
const (
	BlockChar     = '█'
	FastBlockChar = '▓'
	CoinChar      = '●'
	PlayerChar    = '▲'
	LaneChar      = '┊'
)

// Render draws the track between the HUD row and the help row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()
	if dst.Empty() {
		return
	}

	w, h := dst.Width(), dst.Height()
	worldW := g.worldWidth()
	laneW := worldW / float64(g.cfg.Lanes)
	top := 1
	trackH := max(h-2, 1)

	toCol := func(x float64) int { return int(math.Floor(x / worldW * float64(w))) }
	toRow := func(y float64) int { return top + int(math.Floor(y/g.cfg.WorldHeight*float64(trackH))) }

	for i := 1; i < g.cfg.Lanes; i++ {
		dst.DrawVLine(toCol(float64(i)*laneW), top, trackH, LaneChar, core.ColorGray)
	}

	for _, b := range g.om.Blocks() {
		r := b.Rect(laneW)
		x0, x1 := toCol(r.X), toCol(r.Right())
		y0, y1 := max(toRow(r.Y), top), min(toRow(r.Bottom()), top+trackH)
		ch, c := BlockChar, core.ColorRed
		if b.Fast {
			ch, c = FastBlockChar, core.ColorBrightMagenta
		}
		dst.DrawRect(core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1)), ch, c)
	}

	for _, c := range g.om.Coins() {
		if c.Y < 0 {
			continue
		}
		dst.SetCell(toCol((float64(c.Lane)+0.5)*laneW), toRow(c.Y), CoinChar, core.ColorBrightYellow)
	}

	_, px, py, _ := g.geometry()
	pc := core.ColorBrightCyan
	if g.shields > 0 {
		pc = core.ColorBrightGreen
	}
	dst.SetCell(toCol(px), toRow(py), PlayerChar, pc)

	if g.phase == core.PhaseLost {
		dst.DrawMessage("CRASHED", fmt.Sprintf("Score: %d  Press R to run again", g.score), core.ColorBrightRed)
	}
	g.renderHUD(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	star := "☆"
	if g.award.Has() {
		star = "★"
	}
	left := fmt.Sprintf(" RUNNER  Score: %d/%d  Best: %d ", g.score, g.cfg.Goal, g.best)
	right := fmt.Sprintf(" Coins: %d  Shields: %d  %s ", g.coins, g.shields, star)
	dst.DrawHUD(left, core.ColorBrightWhite, right, core.ColorYellow)

	help := "←/→ or click a side: change lane  R: restart  B: back"
	if g.message != "" && g.phase == core.PhaseActive {
		help = g.message
	}
	dst.DrawTextCentered(dst.Height()-1, help, core.ColorGray)
}
