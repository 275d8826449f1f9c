package memory

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/star-quest/internal/core"
)

const (
	cardWidth  = 6
	cardHeight = 3
	gap        = 1
)

// HiddenChar fills the back of a card.
const HiddenChar = '░'

type layout struct {
	x, y       int
	cols, rows int
}

// columns returns the board width in cards: 4 for the small board, 5 for
// the large one.
func columns(n int) int {
	switch {
	case n == 0:
		return 0
	case n <= 16:
		return 4
	default:
		return 5
	}
}

func boardLayout(w, h, n int) layout {
	cols := columns(n)
	if cols == 0 {
		return layout{}
	}
	rows := (n + cols - 1) / cols
	bw := cols*(cardWidth+gap) - gap
	bh := rows*(cardHeight+gap) - gap
	return layout{
		x:    (w - bw) / 2,
		y:    max(2, (h-bh)/2),
		cols: cols,
		rows: rows,
	}
}

// Render draws the board and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()
	if dst.Empty() {
		return
	}

	l := boardLayout(dst.Width(), dst.Height(), len(g.cards))
	for i, card := range g.cards {
		x := l.x + (i%l.cols)*(cardWidth+gap)
		y := l.y + (i/l.cols)*(cardHeight+gap)
		g.renderCard(dst, card, core.NewRect(x, y, cardWidth, cardHeight), i == g.cursor)
	}

	msgY := l.y + l.rows*(cardHeight+gap)
	dst.DrawTextCentered(min(msgY, dst.Height()-2), g.message, core.ColorGray)

	if g.phase == core.PhaseWon {
		dst.DrawMessage("ALL LEVELS CLEARED", "Press R to play again", core.ColorBrightGreen)
	}
	g.renderHUD(dst)
}

func (g *Game) renderCard(dst *core.Screen, card Card, r core.Rect, cursor bool) {
	face, _ := utf8.DecodeRuneInString(card.Face)
	fx := r.X + 2 // Faces may be double width
	fy := r.Y + 1

	border := core.ColorBlue
	switch {
	case card.Filler:
		border = core.ColorGray
	case card.State == Matched:
		border = core.ColorGreen
	case card.State == Revealed:
		border = core.ColorBrightYellow
	}
	if cursor {
		border = core.ColorBrightMagenta
	}
	dst.DrawBox(r, border)

	switch {
	case card.Filler:
		dst.SetCell(fx, fy, face, core.ColorGray)
	case card.State == Hidden:
		dst.DrawHLine(r.X+1, fy, r.W-2, HiddenChar, core.ColorBlue)
	default:
		dst.SetCell(fx, fy, face, core.ColorBrightWhite)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	star := "☆"
	if g.award.Has() {
		star = "★"
	}
	left := fmt.Sprintf(" MEMORY  Level %d/%d  Pairs: %d/%d ", g.level, g.Levels(), g.matched, g.Pairs())

	timeColor := core.ColorYellow
	if g.timeLeft < 15 {
		timeColor = core.ColorBrightRed
	}
	right := fmt.Sprintf(" Time: %3.0fs  %s ", max(g.timeLeft, 0), star)
	dst.DrawHUD(left, core.ColorBrightWhite, right, timeColor)
	dst.DrawTextCentered(dst.Height()-1, "Arrows: move  Space/Click: flip  R: restart  B: back", core.ColorGray)
}
