package memory

// Snapshot captures the engine state for tests.
type Snapshot struct {
	Level     int
	Cards     []Card
	Selection []int
	Locked    bool
	TimeLeft  float64
	Matched   int
	Score     int
	Best      int
	Pending   int
	Star      bool
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Level:     g.level,
		Cards:     append([]Card(nil), g.cards...),
		Selection: append([]int(nil), g.selection...),
		Locked:    g.locked,
		TimeLeft:  g.timeLeft,
		Matched:   g.matched,
		Score:     g.score,
		Best:      g.best,
		Pending:   g.events.Pending(),
		Star:      g.award.Has(),
	}
}
