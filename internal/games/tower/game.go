// Package tower implements the stacking game: drop a sliding platform onto
// the tower, keeping only the part that overlaps the one below.
package tower

import (
	"math"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/registry"
)

// Platform is one slab of the tower in canvas pixels. Y is the top edge and
// grows downward.
type Platform struct {
	X, Y float64
	W, H float64
	Hue  float64
}

// Game implements the Tower engine.
type Game struct {
	cfg    config.TowerConfig
	notify core.Notifier
	award  core.AwardGate

	// Virtual canvas, fixed at Reset.
	width  float64
	height float64

	stack   []Platform
	moving  Platform
	dir     float64 // +1 right, -1 left
	speed   float64 // px/s
	camY    float64 // Downward shift applied to the world when drawing
	hue     float64
	score   int
	best    int
	phase   core.Phase
	message string
}

// New creates a new Tower game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tower"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tower Stack"
}

// Reset initializes the engine from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = config.Active().Tower
	g.notify = core.NotifierOrNop(runtime.Notifier)
	g.award = core.NewAwardGate(runtime.HasStar, runtime.OnAward)
	g.best = runtime.Best

	w, h := runtime.ScreenW, runtime.ScreenH
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.ScreenW, def.ScreenH
	}
	px := config.Active().Render
	g.width = float64(w) * px.PxPerCol
	g.height = float64(h) * px.PxPerRow

	g.restart()
}

// restart lays a fresh base platform and spawns the first mover.
func (g *Game) restart() {
	baseW := math.Floor(g.width * g.cfg.BaseWidth)
	g.hue = g.cfg.BaseHue
	g.stack = []Platform{{
		X:   math.Floor((g.width - baseW) / 2),
		Y:   math.Floor(g.height * g.cfg.BaseY),
		W:   baseW,
		H:   math.Floor(g.height * g.cfg.BlockHeight),
		Hue: g.hue,
	}}
	g.camY = 0
	g.score = 0
	g.phase = core.PhaseActive
	g.message = "Tap to drop the block"
	g.spawn()
}

// spawn places a new mover just above the current top, off the left edge.
func (g *Game) spawn() {
	top := g.top()
	g.hue = math.Mod(g.hue+g.cfg.HueStep, 360)
	g.moving = Platform{
		X:   math.Floor(-g.cfg.SpawnOffset * top.W),
		Y:   top.Y - top.H,
		W:   top.W,
		H:   top.H,
		Hue: g.hue,
	}
	g.dir = 1
	g.speed = g.cfg.Speed.At(float64(len(g.stack) - 1))
}

func (g *Game) top() Platform {
	return g.stack[len(g.stack)-1]
}

// Height returns the number of placed blocks above the base.
func (g *Game) Height() int {
	return len(g.stack) - 1
}

// Step handles drops, then moves the block and the camera.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	awarded := false
	drops := len(in.Taps)
	if in.Has(core.ActionTap) {
		drops++
	}
	for i := 0; i < drops; i++ {
		if g.drop() {
			awarded = true
		}
	}

	if g.phase == core.PhaseActive {
		g.slide(dt)
		g.follow(dt)
	}

	return core.StepResult{State: g.State(), Awarded: awarded}
}

// slide moves the block and bounces it off the travel bounds.
func (g *Game) slide(dt float64) {
	top := g.top()
	g.moving.X += g.dir * g.speed * dt

	minX := -top.W * g.cfg.BounceLeft
	maxX := g.width - top.W*g.cfg.BounceRight
	if g.moving.X < minX {
		g.moving.X = minX
		g.dir = 1
	}
	if g.moving.X > maxX {
		g.moving.X = maxX
		g.dir = -1
	}
}

// follow eases the camera so the top of the tower stays below the margin.
func (g *Game) follow(dt float64) {
	margin := math.Floor(g.height * g.cfg.TopMargin)
	target := math.Max(0, margin-g.top().Y)
	g.camY += (target - g.camY) * core.ClampF(dt*g.cfg.CameraRate, 0, 1)
}

// drop settles the moving block on the tower. It returns true when the
// placement earned the star.
func (g *Game) drop() bool {
	if g.phase != core.PhaseActive {
		return false
	}

	top := g.top()
	m := g.moving
	overlap := core.Overlap(m.X, m.X+m.W, top.X, top.X+top.W)

	if overlap <= g.cfg.MinOverlap {
		g.phase = core.PhaseLost
		g.message = "Missed! Press R to try again"
		g.notify.Notify(core.CueCrash, core.Heavy)
		return false
	}

	perfect := math.Abs(m.X-top.X) <= g.cfg.PerfectTolerance &&
		math.Abs(m.W-top.W) <= g.cfg.PerfectTolerance

	placed := m
	if perfect {
		placed.X = top.X
		placed.W = top.W
		g.score += g.cfg.PerfectBonus
		g.message = "Perfect!"
		g.notify.Notify(core.CuePerfect, core.Medium)
	} else {
		placed.X = math.Max(m.X, top.X)
		placed.W = overlap
		g.score++
		g.message = "Nice!"
		g.notify.Notify(core.CuePlace, core.Light)
	}
	g.stack = append(g.stack, placed)
	g.best = max(g.best, g.score)

	awarded := false
	if g.score >= g.cfg.Goal && g.award.Fire() {
		g.notify.Notify(core.CueAward, core.Medium)
		awarded = true
	}

	g.spawn()
	return awarded
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
	registry.Register("tower", func() registry.Game {
		return New()
	})
}
