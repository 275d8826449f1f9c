package mines

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/star-quest/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// Visual characters for rendering
const (
	ClosedChar = '■'
	EmptyChar  = '·'
)

type layout struct {
	x, y int
	w, h int
}

// boardLayout centers the grid on a w×h screen below the HUD.
func boardLayout(w, h, size int) layout {
	bw := size*cellWidth + 1
	bh := size*cellHeight + 1
	return layout{
		x: (w - bw) / 2,
		y: max(2, (h-bh)/2),
		w: bw,
		h: bh,
	}
}

// Render draws the grid, cursor and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()
	if dst.Empty() {
		return
	}

	l := boardLayout(dst.Width(), dst.Height(), g.grid.Size)
	g.renderGrid(dst, l)
	g.renderCells(dst, l)

	dst.DrawTextCentered(l.y+l.h+1, g.message, core.ColorGray)
	g.renderHUD(dst)
}

// renderGrid draws the border lines.
func (g *Game) renderGrid(dst *core.Screen, l layout) {
	n := g.grid.Size
	for y := 0; y < n+1; y++ {
		for x := 0; x < n+1; x++ {
			px := l.x + x*cellWidth
			py := l.y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, core.ColorGray)

			if x < n {
				dst.DrawHLine(px+1, py, cellWidth-1, '─', core.ColorGray)
			}
			if y < n {
				dst.DrawVLine(px, py+1, cellHeight-1, '│', core.ColorGray)
			}
		}
	}
}

// renderCells draws cell contents. Neighbor counts are computed here on
// every frame.
func (g *Game) renderCells(dst *core.Screen, l layout) {
	for y := 0; y < g.grid.Size; y++ {
		for x := 0; x < g.grid.Size; x++ {
			cx := l.x + x*cellWidth + cellWidth/2
			cy := l.y + y*cellHeight + 1
			cursor := x == g.cursorX && y == g.cursorY

			if cursor {
				dst.SetCell(cx-1, cy, '[', core.ColorBrightYellow)
				dst.SetCell(cx+1, cy, ']', core.ColorBrightYellow)
			}

			cell := g.grid.At(x, y)
			if !cell.Open {
				dst.SetCell(cx, cy, ClosedChar, core.ColorBlue)
				continue
			}

			n := g.grid.Neighbors(x, y)
			if n == 0 {
				dst.SetCell(cx, cy, EmptyChar, core.ColorGray)
				continue
			}
			dst.SetCell(cx, cy, rune(strconv.Itoa(n)[0]), neighborColor(n))
		}
	}
}

func neighborColor(n int) core.Color {
	switch n {
	case 1:
		return core.ColorBrightCyan
	case 2:
		return core.ColorBrightGreen
	case 3:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	star := "☆"
	if g.award.Has() {
		star = "★"
	}
	left := fmt.Sprintf(" MINES  Opened: %d/%d ", g.openSafe, g.cfg.Goal)
	right := fmt.Sprintf(" Best: %d  Hazards: %d  %s ", g.best, g.cfg.Hazards, star)
	dst.DrawHUD(left, core.ColorBrightWhite, right, core.ColorYellow)
	dst.DrawTextCentered(dst.Height()-1, "Arrows: move  Space/Click: open  R: new grid  B: back", core.ColorGray)
}
