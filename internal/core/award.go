package core

// AwardGate fires the award callback at most once per engine lifetime and
// never when the star was already held.
type AwardGate struct {
	has     bool
	onAward func()
}

// NewAwardGate creates a gate. onAward may be nil.
func NewAwardGate(hasStar bool, onAward func()) AwardGate {
	return AwardGate{has: hasStar, onAward: onAward}
}

// Has reports whether the star is held.
func (g *AwardGate) Has() bool {
	return g.has
}

// Fire grants the star. It returns true only for the call that actually
// granted it.
func (g *AwardGate) Fire() bool {
	if g.has {
		return false
	}
	g.has = true
	if g.onAward != nil {
		g.onAward()
	}
	return true
}
