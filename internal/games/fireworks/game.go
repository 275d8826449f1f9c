// Package fireworks implements the finale show: bursts launched by taps and
// by an autonomous timer, with an optional three-note fanfare.
package fireworks

import (
	"math"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/registry"
)

// Fanfare timing, seconds after the show starts.
var fanfare = []struct {
	at  float64
	cue core.Cue
}{
	{0, core.CueFanfareLow},
	{0.12, core.CueFanfareMid},
	{0.26, core.CueFanfareHigh},
}

// Game implements the Fireworks engine.
type Game struct {
	cfg    config.FireworksConfig
	rng    *core.Rand
	notify core.Notifier
	field  *Field
	cues   core.Queue[core.Cue]

	t        float64
	autoAcc  float64
	launched int // Bursts launched by the player

	// Per-frame brightness buffer used to keep the strongest spark per cell.
	glow []float64
}

// New creates a new Fireworks instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fireworks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fireworks"
}

// Reset initializes the engine and opens the show with a few ring bursts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = config.Active().Fireworks
	g.rng = core.NewRand(runtime.Seed)
	g.notify = core.NotifierOrNop(runtime.Notifier)
	g.field = NewField(g.rng, &g.cfg)
	g.restart()
}

func (g *Game) restart() {
	g.field.Reset()
	g.cues.Clear()
	g.t = 0
	g.autoAcc = 0
	g.launched = 0
	for i := 0; i < g.cfg.InitialBursts; i++ {
		g.field.LaunchRandom(true)
	}
}

// Fanfare schedules the three fanfare notes from now.
func (g *Game) Fanfare() {
	for _, n := range fanfare {
		g.cues.Schedule(n.at, n.cue)
	}
}

// Step launches tapped bursts, runs the auto timer and the fanfare, then
// integrates the field.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}

	for _, p := range in.Taps {
		g.field.Launch(p.X, core.ClampF(p.Y, 0.15, 0.75), g.rng.Chance(g.cfg.TapRingChance))
		g.launched++
	}
	if in.Has(core.ActionTap) {
		g.field.LaunchRandom(g.rng.Chance(g.cfg.TapRingChance))
		g.launched++
	}

	g.t += dt
	g.autoAcc += dt
	if g.autoAcc >= g.AutoInterval() {
		g.autoAcc = 0
		g.field.LaunchRandom(g.rng.Chance(g.cfg.AutoRingChance))
	}

	for _, cue := range g.cues.Advance(dt) {
		g.notify.Notify(cue, core.Light)
	}

	g.field.Step(dt)

	return core.StepResult{State: g.State()}
}

// AutoInterval returns the current jittered auto-launch period.
func (g *Game) AutoInterval() float64 {
	return g.cfg.AutoBase + g.cfg.AutoAmplitude*math.Sin(g.t*g.cfg.AutoFrequency)
}

// Field exposes the particle field.
func (g *Game) Field() *Field {
	return g.field
}

// State returns the current state. The show never ends.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.launched,
		Phase: core.PhaseActive,
	}
}

// Register the game with the registry
func init() {
	registry.Register("fireworks", func() registry.Game {
		return New()
	})
}
