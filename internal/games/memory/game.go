// Package memory implements the tile-matching game: six levels of
// growing boards played against a per-level countdown.
package memory

import (
	"fmt"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/registry"
)

// eventKind enumerates deferred transitions.
type eventKind int

const (
	evResolve eventKind = iota // Settle the two open cards
	evAdvance                  // Deal the next level
)

type event struct {
	kind eventKind
	a, b int // Card indices for evResolve
}

// Game implements the Memory engine.
type Game struct {
	cfg    config.MemoryConfig
	rng    *core.Rand
	notify core.Notifier
	award  core.AwardGate
	events core.Queue[event]

	level     int // 1-based
	cards     []Card
	selection []int
	locked    bool // Waiting on a resolution or a level advance
	timeLeft  float64
	matched   int // Pairs matched on the current board
	score     int // Pairs matched since the last reset
	best      int
	phase     core.Phase
	cursor    int
	message   string

	screenW int
	screenH int
}

// New creates a new Memory game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Memory"
}

// Reset initializes the engine from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = config.Active().Memory
	g.rng = core.NewRand(runtime.Seed)
	g.notify = core.NotifierOrNop(runtime.Notifier)
	g.award = core.NewAwardGate(runtime.HasStar, runtime.OnAward)
	g.best = runtime.Best
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.restart()
}

// restart returns to level 1 and drops every pending transition.
func (g *Game) restart() {
	g.events.Clear()
	g.score = 0
	g.phase = core.PhaseActive
	g.deal(1)
	g.message = "Find all the pairs"
}

// deal lays out a fresh board for level.
func (g *Game) deal(level int) {
	g.level = level
	pairs := g.Pairs()
	size := BoardSize(pairs, g.cfg.SmallBoard, g.cfg.LargeBoard)
	g.cards = NewDeck(level, pairs, size, g.cfg.Symbols, g.cfg.Filler, g.rng)
	g.selection = g.selection[:0]
	g.locked = false
	g.matched = 0
	g.timeLeft = g.cfg.LevelTime
	g.cursor = 0
	g.message = fmt.Sprintf("Level %d", level)
}

// Levels returns the number of configured levels.
func (g *Game) Levels() int {
	return len(g.cfg.Pairs)
}

// Pairs returns the pair count of the current level.
func (g *Game) Pairs() int {
	if len(g.cfg.Pairs) == 0 {
		return 0
	}
	return g.cfg.Pairs[core.Clamp(g.level-1, 0, len(g.cfg.Pairs)-1)]
}

// Step applies taps and cursor commands, runs the level timer, then fires
// due transitions.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	for _, p := range in.Taps {
		if idx, ok := g.cardAt(p); ok {
			g.cursor = idx
			g.flip(idx)
		}
	}
	g.moveCursor(in)
	if in.Has(core.ActionTap) || in.Has(core.ActionConfirm) {
		g.flip(g.cursor)
	}

	awarded := false
	if g.phase == core.PhaseActive {
		if g.tickTimer(dt) {
			return core.StepResult{State: g.State()}
		}
		for _, ev := range g.events.Advance(dt) {
			if g.handle(ev) {
				awarded = true
			}
		}
	}

	return core.StepResult{State: g.State(), Awarded: awarded}
}

// moveCursor walks the keyboard cursor across the board.
func (g *Game) moveCursor(in core.InputFrame) {
	cols := columns(len(g.cards))
	if cols == 0 {
		return
	}
	x, y := g.cursor%cols, g.cursor/cols
	rows := (len(g.cards) + cols - 1) / cols

	switch {
	case in.Has(core.ActionLeft):
		x = core.Clamp(x-1, 0, cols-1)
	case in.Has(core.ActionRight):
		x = core.Clamp(x+1, 0, cols-1)
	case in.Has(core.ActionUp):
		y = core.Clamp(y-1, 0, rows-1)
	case in.Has(core.ActionDown):
		y = core.Clamp(y+1, 0, rows-1)
	}
	g.cursor = core.Clamp(y*cols+x, 0, len(g.cards)-1)
}

// flip reveals a hidden card. Taps while locked, on open or matched cards,
// or after the final level are ignored.
func (g *Game) flip(idx int) {
	if g.phase != core.PhaseActive || g.locked {
		return
	}
	if idx < 0 || idx >= len(g.cards) {
		return
	}
	card := &g.cards[idx]
	if card.Filler || card.State != Hidden {
		return
	}
	for _, s := range g.selection {
		if s == idx {
			return
		}
	}

	card.State = Revealed
	g.selection = append(g.selection, idx)
	g.notify.Notify(core.CueTap, core.Light)

	if len(g.selection) < 2 {
		return
	}

	g.locked = true
	a, b := g.selection[0], g.selection[1]
	delay := g.cfg.MismatchDelay
	if g.cards[a].Face == g.cards[b].Face {
		delay = g.cfg.MatchDelay
	}
	g.events.Schedule(delay, event{kind: evResolve, a: a, b: b})
}

// tickTimer runs the level countdown. It returns true when time ran out and
// the game went back to level 1.
func (g *Game) tickTimer(dt float64) bool {
	if g.matched == g.Pairs() {
		// Board cleared, waiting on the advance.
		return false
	}
	g.timeLeft -= dt
	if g.timeLeft > 0 {
		return false
	}
	g.notify.Notify(core.CueTimeout, core.Heavy)
	g.restart()
	g.message = "Time's up! Back to level 1"
	return true
}

// handle applies one deferred transition. It returns true when it granted
// the star.
func (g *Game) handle(ev event) bool {
	switch ev.kind {
	case evResolve:
		return g.resolve(ev.a, ev.b)
	case evAdvance:
		g.deal(g.level + 1)
	}
	return false
}

// resolve settles the open pair and checks for a cleared board.
func (g *Game) resolve(a, b int) bool {
	g.selection = g.selection[:0]
	g.locked = false

	if g.cards[a].Face != g.cards[b].Face {
		g.cards[a].State = Hidden
		g.cards[b].State = Hidden
		g.notify.Notify(core.CueMismatch, core.Light)
		g.message = "No match"
		return false
	}

	g.cards[a].State = Matched
	g.cards[b].State = Matched
	g.matched++
	g.score++
	g.best = max(g.best, g.score)
	g.notify.Notify(core.CueMatch, core.Light)
	g.message = "Match!"

	if g.matched < g.Pairs() {
		return false
	}

	g.notify.Notify(core.CueLevelClear, core.Medium)
	if g.level < g.Levels() {
		g.locked = true
		g.message = fmt.Sprintf("Level %d cleared!", g.level)
		g.events.Schedule(g.cfg.AdvanceDelay, event{kind: evAdvance})
		return false
	}

	g.phase = core.PhaseWon
	g.message = "All levels cleared!"
	if g.award.Fire() {
		g.notify.Notify(core.CueAward, core.Medium)
		return true
	}
	return false
}

// cardAt maps a normalized pointer onto a card index using the same layout
// as Render.
func (g *Game) cardAt(p core.Pointer) (int, bool) {
	if g.screenW <= 0 || g.screenH <= 0 {
		return 0, false
	}
	col := min(int(p.X*float64(g.screenW)), g.screenW-1)
	row := min(int(p.Y*float64(g.screenH)), g.screenH-1)

	l := boardLayout(g.screenW, g.screenH, len(g.cards))
	dx, dy := col-l.x, row-l.y
	if dx < 0 || dy < 0 {
		return 0, false
	}
	x, y := dx/(cardWidth+gap), dy/(cardHeight+gap)
	if dx%(cardWidth+gap) >= cardWidth || dy%(cardHeight+gap) >= cardHeight {
		return 0, false
	}
	if x >= l.cols {
		return 0, false
	}
	idx := y*l.cols + x
	if idx >= len(g.cards) {
		return 0, false
	}
	return idx, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Best:  g.best,
		Phase: g.phase,
		Star:  g.award.Has(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}
