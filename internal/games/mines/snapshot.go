package mines

// Snapshot captures the engine state for tests.
type Snapshot struct {
	Hazards  []int
	Opened   []int
	OpenSafe int
	Best     int
	Resets   int
	CursorX  int
	CursorY  int
	Star     bool
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	var opened []int
	for i, c := range g.grid.Cells {
		if c.Open {
			opened = append(opened, i)
		}
	}
	return Snapshot{
		Hazards:  g.grid.Hazards(),
		Opened:   opened,
		OpenSafe: g.openSafe,
		Best:     g.best,
		Resets:   g.resets,
		CursorX:  g.cursorX,
		CursorY:  g.cursorY,
		Star:     g.award.Has(),
	}
}
