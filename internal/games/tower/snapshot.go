package tower

import "github.com/vovakirdan/star-quest/internal/core"

// Snapshot captures the engine state for tests.
type Snapshot struct {
	Stack  []Platform
	Moving Platform
	Dir    float64
	Speed  float64
	CamY   float64
	Score  int
	Best   int
	Lost   bool
	Star   bool
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Stack:  append([]Platform(nil), g.stack...),
		Moving: g.moving,
		Dir:    g.dir,
		Speed:  g.speed,
		CamY:   g.camY,
		Score:  g.score,
		Best:   g.best,
		Lost:   g.phase == core.PhaseLost,
		Star:   g.award.Has(),
	}
}
