package orbit

// Snapshot captures the engine state for tests.
type Snapshot struct {
	Angle  float64
	Speed  float64
	Window float64
	Target float64
	Score  int
	Best   int
	Hits   int
	Misses int
	Star   bool
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Angle:  g.angle,
		Speed:  g.speed,
		Window: g.window,
		Target: g.target,
		Score:  g.score,
		Best:   g.best,
		Hits:   g.hits,
		Misses: g.misses,
		Star:   g.award.Has(),
	}
}
