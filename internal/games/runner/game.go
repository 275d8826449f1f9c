// Package runner implements the three-lane runner: dodge falling blocks,
// collect coins and bank shields while the track speeds up.
package runner

import (
	"math"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/registry"
)

// Game implements the Runner engine.
type Game struct {
	cfg    config.RunnerConfig
	rng    *core.Rand
	notify core.Notifier
	award  core.AwardGate
	om     *ObstacleManager

	lane    int
	t       float64 // Seconds alive this run
	speed   float64
	score   int
	best    int
	coins   int
	bank    int // Coins toward the next shield
	shields int
	phase   core.Phase
	message string

	screenW int
	screenH int
}

// New creates a new Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Runner"
}

// Reset initializes the engine from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = config.Active().Runner
	g.rng = core.NewRand(runtime.Seed)
	g.notify = core.NotifierOrNop(runtime.Notifier)
	g.award = core.NewAwardGate(runtime.HasStar, runtime.OnAward)
	g.best = runtime.Best
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.om = NewObstacleManager(g.rng, &g.cfg)
	g.restart()
}

// restart puts every ramp back to its base value.
func (g *Game) restart() {
	g.om.Reset()
	g.lane = g.cfg.Lanes / 2
	g.t = 0
	g.speed = g.cfg.Speed.At(0)
	g.score = 0
	g.coins = 0
	g.bank = 0
	g.shields = 0
	g.phase = core.PhaseActive
	g.message = ""
}

// Step applies lane commands, advances the track, then resolves pickups
// and collisions.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	if g.phase != core.PhaseActive {
		return core.StepResult{State: g.State()}
	}

	for _, p := range in.Taps {
		if p.X < 0.5 {
			g.move(-1)
		} else {
			g.move(1)
		}
	}
	if in.Has(core.ActionLeft) {
		g.move(-1)
	}
	if in.Has(core.ActionRight) {
		g.move(1)
	}

	g.t += dt
	g.speed = g.cfg.Speed.At(g.t)
	g.om.Update(g.t, g.speed, dt)
	g.score += int(math.Floor(g.speed * dt * g.cfg.ScoreRate))

	g.collectCoins()
	awarded := g.checkCollision()

	return core.StepResult{State: g.State(), Awarded: awarded}
}

// move shifts the player by dir lanes, clamped to the track.
func (g *Game) move(dir int) {
	g.lane = core.Clamp(g.lane+dir, 0, g.cfg.Lanes-1)
}

// geometry returns the world width, lane width and player probe.
func (g *Game) geometry() (laneW, px, py, pr float64) {
	worldW := g.worldWidth()
	laneW = worldW / float64(g.cfg.Lanes)
	px = (float64(g.lane) + 0.5) * laneW
	py = g.cfg.PlayerY * g.cfg.WorldHeight
	pr = math.Min(laneW, g.cfg.WorldHeight) * g.cfg.PlayerRadius
	return laneW, px, py, pr
}

// worldWidth scales the track to the screen aspect ratio.
func (g *Game) worldWidth() float64 {
	w, h := g.screenW, g.screenH
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.ScreenW, def.ScreenH
	}
	px := config.Active().Render
	return g.cfg.WorldHeight * (float64(w) * px.PxPerCol) / (float64(h) * px.PxPerRow)
}

func (g *Game) collectCoins() {
	laneW, px, py, pr := g.geometry()
	n := g.om.Collect(px, py, pr*g.cfg.PickupRadius, laneW)
	for i := 0; i < n; i++ {
		g.coins++
		g.bank++
		g.notify.Notify(core.CueCoin, core.Light)
		if g.bank >= g.cfg.CoinsPerShield {
			g.bank -= g.cfg.CoinsPerShield
			g.shields++
			g.message = "Shield ready"
			g.notify.Notify(core.CueShield, core.Medium)
		}
	}
}

// checkCollision resolves at most one hit per step. It returns true when
// the star was granted.
func (g *Game) checkCollision() bool {
	laneW, px, py, pr := g.geometry()
	probe := core.RectF{X: px, Y: py - pr, W: 0, H: 2 * pr}

	hit := g.om.FirstHit(probe, laneW)
	if hit < 0 {
		return false
	}

	if g.shields > 0 {
		g.shields--
		g.om.RemoveBlock(hit)
		g.message = "Shield used"
		g.notify.Notify(core.CueShieldUsed, core.Medium)
		return false
	}

	g.phase = core.PhaseLost
	g.best = max(g.best, g.score)
	g.message = "Crashed!"
	g.notify.Notify(core.CueCrash, core.Heavy)

	if g.score >= g.cfg.Goal && g.award.Fire() {
		g.notify.Notify(core.CueAward, core.Medium)
		return true
	}
	return false
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
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
