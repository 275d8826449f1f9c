package storage

// StarGames lists the star slots in hub order.
var StarGames = []string{"runner", "memory", "mines", "tower", "orbit"}

// Stars holds one earned flag per star game.
type Stars struct {
	Runner bool
	Memory bool
	Mines  bool
	Tower  bool
	Orbit  bool
}

// Has reports whether the star for gameID was earned.
// Unknown ids are never earned.
func (s Stars) Has(gameID string) bool {
	switch gameID {
	case "runner":
		return s.Runner
	case "memory":
		return s.Memory
	case "mines":
		return s.Mines
	case "tower":
		return s.Tower
	case "orbit":
		return s.Orbit
	}
	return false
}

// With returns a copy of s with the star for gameID set to v.
func (s Stars) With(gameID string, v bool) Stars {
	s.Set(gameID, v)
	return s
}

// Set updates the star for gameID. Unknown ids are ignored.
func (s *Stars) Set(gameID string, v bool) {
	switch gameID {
	case "runner":
		s.Runner = v
	case "memory":
		s.Memory = v
	case "mines":
		s.Mines = v
	case "tower":
		s.Tower = v
	case "orbit":
		s.Orbit = v
	}
}

// Count returns the number of earned stars.
func (s Stars) Count() int {
	n := 0
	for _, id := range StarGames {
		if s.Has(id) {
			n++
		}
	}
	return n
}

// Unlocked reports whether every star was earned.
func (s Stars) Unlocked() bool {
	return s.Count() == len(StarGames)
}

// IsStarGame reports whether gameID owns a star slot.
func IsStarGame(gameID string) bool {
	for _, id := range StarGames {
		if id == gameID {
			return true
		}
	}
	return false
}
