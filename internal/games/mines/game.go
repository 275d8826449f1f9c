// Package mines implements the grid-reveal game: open safe cells on a small
// board without stepping on a hazard.
package mines

import (
	"fmt"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/registry"
)

// Game implements the Mines engine.
type Game struct {
	cfg    config.MinesConfig
	rng    *core.Rand
	notify core.Notifier
	award  core.AwardGate

	grid     Grid
	openSafe int
	best     int
	resets   int // Grids lost to a hazard this session
	cursorX  int
	cursorY  int
	message  string

	// Last known screen size, used to map pointer taps onto cells.
	screenW int
	screenH int
}

// New creates a new Mines game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "mines"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Mines"
}

// Reset initializes the engine from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = config.Active().Mines
	g.rng = core.NewRand(runtime.Seed)
	g.notify = core.NotifierOrNop(runtime.Notifier)
	g.award = core.NewAwardGate(runtime.HasStar, runtime.OnAward)
	g.best = runtime.Best
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.resets = 0
	g.restart()
	g.message = fmt.Sprintf("Open %d safe cells", g.cfg.Goal)
}

// restart generates a fresh grid; the award gate survives it.
func (g *Game) restart() {
	g.grid = NewGrid(g.cfg.Size, g.cfg.Hazards, g.rng)
	g.openSafe = 0
	g.cursorX = 0
	g.cursorY = 0
	g.message = "New grid"
}

// Step applies taps and cursor commands. The board has no timers or physics.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	for _, p := range in.Taps {
		if x, y, ok := g.cellAt(p); ok {
			g.cursorX, g.cursorY = x, y
			g.reveal(x, y)
		}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursorX = core.Clamp(g.cursorX-1, 0, g.grid.Size-1)
	case in.Has(core.ActionRight):
		g.cursorX = core.Clamp(g.cursorX+1, 0, g.grid.Size-1)
	case in.Has(core.ActionUp):
		g.cursorY = core.Clamp(g.cursorY-1, 0, g.grid.Size-1)
	case in.Has(core.ActionDown):
		g.cursorY = core.Clamp(g.cursorY+1, 0, g.grid.Size-1)
	}
	if in.Has(core.ActionTap) || in.Has(core.ActionConfirm) {
		g.reveal(g.cursorX, g.cursorY)
	}

	awarded := false
	if g.openSafe >= g.cfg.Goal && g.award.Fire() {
		g.notify.Notify(core.CueAward, core.Medium)
		g.message = "Star earned!"
		awarded = true
	}

	return core.StepResult{State: g.State(), Awarded: awarded}
}

// reveal opens the cell at (x, y). Hazards regenerate the whole grid;
// already open cells are ignored.
func (g *Game) reveal(x, y int) {
	if !g.grid.InBounds(x, y) {
		return
	}
	idx := y*g.grid.Size + x
	cell := &g.grid.Cells[idx]
	if cell.Open {
		return
	}

	if cell.Hazard {
		g.resets++
		g.notify.Notify(core.CueCrash, core.Heavy)
		g.restart()
		g.cursorX, g.cursorY = x, y
		g.message = "Boom! Fresh grid"
		return
	}

	cell.Open = true
	g.openSafe++
	g.best = max(g.best, g.openSafe)
	g.notify.Notify(core.CueTap, core.Light)
	g.message = fmt.Sprintf("%d hazards nearby", g.grid.Neighbors(x, y))
}

// cellAt maps a normalized pointer onto a grid cell using the same layout
// as Render.
func (g *Game) cellAt(p core.Pointer) (int, int, bool) {
	if g.screenW <= 0 || g.screenH <= 0 {
		return 0, 0, false
	}
	col := min(int(p.X*float64(g.screenW)), g.screenW-1)
	row := min(int(p.Y*float64(g.screenH)), g.screenH-1)

	l := boardLayout(g.screenW, g.screenH, g.grid.Size)
	dx, dy := col-l.x, row-l.y
	if dx <= 0 || dy <= 0 {
		return 0, 0, false
	}
	x, y := dx/cellWidth, dy/cellHeight
	// Border lines do not belong to any cell.
	if dx%cellWidth == 0 || dy%cellHeight == 0 || !g.grid.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// State returns the current game state. The board never ends a round:
// hazards regenerate it in place.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.openSafe,
		Best:  g.best,
		Phase: core.PhaseActive,
		Star:  g.award.Has(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("mines", func() registry.Game {
		return New()
	})
}
