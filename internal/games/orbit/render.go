package orbit

import (
	"fmt"
	"math"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
)

// Visual characters for rendering
const (
	RingChar   = '·'
	ArcChar    = '█'
	MarkerChar = '●'
)

// Render draws the ring, the target arc and the marker.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Empty() {
		return
	}

	px := config.Active().Render
	w, h := dst.Width(), dst.Height()
	cx, cy := float64(w)/2, float64(h)/2+0.5

	// Radius in virtual pixels, then per-axis in cells.
	r := math.Min(float64(w)*px.PxPerCol, float64(h)*px.PxPerRow) * 0.33
	rx, ry := r/px.PxPerCol, r/px.PxPerRow

	plot := func(a float64, ch rune, c core.Color) {
		x := int(math.Round(cx + math.Cos(a)*rx))
		y := int(math.Round(cy + math.Sin(a)*ry))
		dst.SetCell(x, y, ch, c)
	}

	steps := int(twoPi*math.Max(rx, ry)) * 2
	steps = max(steps, 24)
	for i := 0; i < steps; i++ {
		plot(float64(i)/float64(steps)*twoPi, RingChar, core.ColorGray)
	}

	arcSteps := max(int(float64(steps)*g.window/twoPi), 2)
	start := g.target - g.window/2
	for i := 0; i <= arcSteps; i++ {
		plot(start+g.window*float64(i)/float64(arcSteps), ArcChar, core.ColorBrightCyan)
	}

	plot(normalizeAngle(g.angle), MarkerChar, core.ColorBrightYellow)

	dst.DrawTextCentered(int(cy), fmt.Sprintf("%d", g.score), core.ColorBrightWhite)
	dst.DrawTextCentered(int(cy)+1, g.message, core.ColorGray)

	g.drawHUD(dst)
}

func (g *Game) drawHUD(dst *core.Screen) {
	star := "☆"
	if g.award.Has() {
		star = "★"
	}
	left := fmt.Sprintf(" ORBIT  Score: %d/%d ", g.score, g.cfg.Goal)
	right := fmt.Sprintf(" Hits: %d  Misses: %d  %s ", g.hits, g.misses, star)
	dst.DrawHUD(left, core.ColorBrightWhite, right, core.ColorYellow)
	dst.DrawTextCentered(dst.Height()-1, "Space/Click: tap  R: restart  B: back", core.ColorGray)
}
