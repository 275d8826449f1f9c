package runner

import "github.com/vovakirdan/star-quest/internal/core"

// Snapshot captures the engine state for tests.
type Snapshot struct {
	Lane    int
	Time    float64
	Speed   float64
	Score   int
	Best    int
	Coins   int
	Bank    int
	Shields int
	Blocks  []Block
	CoinsOn []Coin
	Lost    bool
	Star    bool
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Lane:    g.lane,
		Time:    g.t,
		Speed:   g.speed,
		Score:   g.score,
		Best:    g.best,
		Coins:   g.coins,
		Bank:    g.bank,
		Shields: g.shields,
		Blocks:  append([]Block(nil), g.om.Blocks()...),
		CoinsOn: append([]Coin(nil), g.om.Coins()...),
		Lost:    g.phase == core.PhaseLost,
		Star:    g.award.Has(),
	}
}
