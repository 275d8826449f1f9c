package fireworks

// Snapshot captures the engine state for tests.
type Snapshot struct {
	Time      float64
	Bursts    int
	Particles int
	Launched  int
	Pending   int // Fanfare notes not yet played
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Time:      g.t,
		Bursts:    len(g.field.Bursts()),
		Particles: len(g.field.Particles()),
		Launched:  g.launched,
		Pending:   g.cues.Pending(),
	}
}
