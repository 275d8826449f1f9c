package fireworks

import (
	"math"

	"github.com/vovakirdan/star-quest/internal/core"
)

// glyphs by brightness, dimmest first
var glyphs = []rune{'·', '+', '*', '✦'}

// Render draws every live particle, keeping the brightest one per cell.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Empty() {
		return
	}

	w, h := dst.Width(), dst.Height()
	if cap(g.glow) < w*h {
		g.glow = make([]float64, w*h)
	}
	g.glow = g.glow[:w*h]
	clear(g.glow)

	for _, p := range g.field.Particles() {
		x := int(math.Floor(p.X * float64(w)))
		y := int(math.Floor(p.Y * float64(h)))
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		a := p.Alpha()
		if a <= g.glow[y*w+x] {
			continue
		}
		g.glow[y*w+x] = a

		idx := min(int(a*float64(len(glyphs))), len(glyphs)-1)
		c := core.HueColor(p.Hue)
		if a < 0.25 {
			c = core.ColorGray
		}
		dst.SetCell(x, y, glyphs[idx], c)
	}

	dst.DrawTextCentered(h-1, "Space/Click: launch  R: restart  B: back", core.ColorGray)
}
