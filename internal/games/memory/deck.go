package memory

import (
	"fmt"

	"github.com/vovakirdan/star-quest/internal/core"
)

// CardState is the visibility of a card.
type CardState int

const (
	Hidden CardState = iota
	Revealed
	Matched
)

// String returns a human-readable state name.
func (s CardState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card is one tile on the board.
type Card struct {
	ID     string
	Face   string
	State  CardState
	Filler bool // Padding tile, starts matched and never flips
}

// NewDeck deals a shuffled board for level (1-based): pairs faces drawn
// without replacement from symbols, padded with pre-matched filler cards up
// to boardSize.
func NewDeck(level, pairs, boardSize int, symbols []string, filler string, rng *core.Rand) []Card {
	pairs = min(pairs, len(symbols), boardSize/2)

	cards := make([]Card, 0, max(boardSize, pairs*2))
	for i, idx := range rng.Perm(len(symbols))[:pairs] {
		face := symbols[idx]
		cards = append(cards,
			Card{ID: fmt.Sprintf("l%d_%d_a", level, i), Face: face},
			Card{ID: fmt.Sprintf("l%d_%d_b", level, i), Face: face},
		)
	}
	for n := 0; len(cards) < boardSize; n++ {
		cards = append(cards, Card{
			ID:     fmt.Sprintf("f%d_%d", level, n),
			Face:   filler,
			State:  Matched,
			Filler: true,
		})
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// BoardSize returns the number of cells for a level with the given pairs.
func BoardSize(pairs, small, large int) int {
	if pairs*2 <= small {
		return small
	}
	return large
}
