// Package orbit implements the target-tracking game: a marker circles a
// ring and the player taps while it is inside the highlighted arc.
package orbit

import (
	"fmt"
	"math"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/registry"
)

const twoPi = 2 * math.Pi

// Game implements the Orbit engine.
type Game struct {
	cfg     config.OrbitConfig
	rng     *core.Rand
	notify  core.Notifier
	award   core.AwardGate
	angle   float64 // Marker angle, unbounded; normalized when compared
	speed   float64 // rad/s
	window  float64 // Full width of the target arc, rad
	target  float64 // Center of the target arc, rad in [0, 2π)
	score   int
	best    int
	hits    int
	misses  int
	message string
}

// New creates a new Orbit game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "orbit"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Orbit"
}

// Reset initializes the engine from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = config.Active().Orbit
	g.rng = core.NewRand(runtime.Seed)
	g.notify = core.NotifierOrNop(runtime.Notifier)
	g.award = core.NewAwardGate(runtime.HasStar, runtime.OnAward)
	g.best = runtime.Best
	g.restart()
}

// restart begins a new round; the award gate survives it.
func (g *Game) restart() {
	g.angle = 0
	g.speed = g.cfg.StartSpeed
	g.window = g.cfg.StartWindow
	g.target = g.rng.Float64() * twoPi
	g.score = 0
	g.hits = 0
	g.misses = 0
	g.message = "Tap when the dot is inside the arc"
}

// Step handles taps, then advances the marker by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	taps := len(in.Taps)
	if in.Has(core.ActionTap) {
		taps++
	}
	for i := 0; i < taps; i++ {
		g.tap()
	}

	g.angle += dt * g.speed

	awarded := false
	if g.score >= g.cfg.Goal && g.award.Fire() {
		g.notify.Notify(core.CueAward, core.Medium)
		awarded = true
	}

	return core.StepResult{State: g.State(), Awarded: awarded}
}

// tap judges the marker against the target arc.
func (g *Game) tap() {
	diff := smallestAngleDiff(normalizeAngle(g.angle), normalizeAngle(g.target))

	if diff <= g.window/2 {
		g.score++
		g.hits++
		g.speed = math.Min(g.cfg.MaxSpeed, g.speed+g.cfg.SpeedStep)
		g.window = math.Max(g.cfg.HitMinWindow, g.window-g.cfg.HitShrink)
		g.message = "Hit!"
		g.notify.Notify(core.CueHit, core.Light)
	} else {
		g.misses++
		g.score = max(0, g.score-g.cfg.MissPenalty)
		g.window = math.Max(g.cfg.MissMinWindow, g.window-g.cfg.MissShrink)
		g.message = fmt.Sprintf("Miss: -%d", g.cfg.MissPenalty)
		g.notify.Notify(core.CueMiss, core.Light)
	}
	g.best = max(g.best, g.score)

	g.target = g.rng.Float64() * twoPi
}

// normalizeAngle wraps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// smallestAngleDiff returns the absolute angular distance between two
// normalized angles, in [0, π].
func smallestAngleDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, twoPi-d)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Best:  g.best,
		Phase: core.PhaseActive,
		Star:  g.award.Has(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("orbit", func() registry.Game {
		return New()
	})
}
