package memory

import (
	"strings"
	"testing"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
)

func newTestGame(cfg core.RuntimeConfig) *Game {
	g := New()
	g.Reset(cfg)
	return g
}

// pairs groups the indices of playable cards by face.
func pairs(cards []Card) map[string][]int {
	out := make(map[string][]int)
	for i, c := range cards {
		if !c.Filler {
			out[c.Face] = append(out[c.Face], i)
		}
	}
	return out
}

// mismatch returns two playable cards with different faces.
func mismatch(cards []Card) (int, int) {
	first := -1
	for i, c := range cards {
		if c.Filler {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		if c.Face != cards[first].Face {
			return first, i
		}
	}
	panic("no mismatched pair")
}

func idle(g *Game, dt float64) core.StepResult {
	return g.Step(core.NewInputFrame(), dt)
}

// clearBoard matches every pair on the current board.
func clearBoard(g *Game) {
	for _, idx := range pairs(g.cards) {
		g.flip(idx[0])
		g.flip(idx[1])
		idle(g, 0.3)
	}
}

func TestDeckFacesAppearTwice(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 1})
	symbols := g.cfg.Symbols

	for seed := int64(1); seed <= 50; seed++ {
		for _, p := range []int{4, 5, 6, 7, 8, 10} {
			size := BoardSize(p, 16, 20)
			cards := NewDeck(1, p, size, symbols, "✖", core.NewRand(seed))
			if len(cards) != size {
				t.Fatalf("deck has %d cards, expected %d", len(cards), size)
			}

			groups := pairs(cards)
			if len(groups) != p {
				t.Fatalf("seed %d pairs %d: %d distinct faces, expected %d", seed, p, len(groups), p)
			}
			for face, idx := range groups {
				if len(idx) != 2 {
					t.Errorf("face %s appears %d times, expected 2", face, len(idx))
				}
			}

			fillers := 0
			for _, c := range cards {
				if c.Filler {
					fillers++
					if c.State != Matched {
						t.Errorf("filler %s starts %v, expected matched", c.ID, c.State)
					}
				}
			}
			if fillers != size-2*p {
				t.Errorf("%d fillers, expected %d", fillers, size-2*p)
			}
		}
	}
}

func TestBoardSize(t *testing.T) {
	tests := []struct {
		pairs    int
		expected int
	}{
		{4, 16},
		{8, 16},
		{10, 20},
	}

	for _, tc := range tests {
		if got := BoardSize(tc.pairs, 16, 20); got != tc.expected {
			t.Errorf("BoardSize(%d) = %d, expected %d", tc.pairs, got, tc.expected)
		}
	}
}

func TestMatchingPair(t *testing.T) {
	rec := &core.Recorder{}
	g := newTestGame(core.RuntimeConfig{Seed: 42, Notifier: rec})

	for _, idx := range pairs(g.cards) {
		g.flip(idx[0])
		g.flip(idx[1])
		if !g.locked {
			t.Fatal("board should lock with two cards open")
		}

		idle(g, 0.25)
		if g.cards[idx[0]].State != Revealed {
			t.Fatalf("pair resolved before the match delay")
		}
		idle(g, 0.02)

		if g.cards[idx[0]].State != Matched || g.cards[idx[1]].State != Matched {
			t.Errorf("states = %v/%v, expected matched", g.cards[idx[0]].State, g.cards[idx[1]].State)
		}
		if g.locked || len(g.selection) != 0 {
			t.Error("board should unlock with an empty selection")
		}
		break
	}

	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
	if rec.Count(core.CueMatch) != 1 {
		t.Errorf("match cue played %d times, expected 1", rec.Count(core.CueMatch))
	}
}

func TestMismatchedPair(t *testing.T) {
	rec := &core.Recorder{}
	g := newTestGame(core.RuntimeConfig{Seed: 42, Notifier: rec})

	a, b := mismatch(g.cards)
	g.flip(a)
	g.flip(b)

	idle(g, 0.5)
	if g.cards[a].State != Revealed {
		t.Fatal("mismatch resolved before its delay")
	}
	idle(g, 0.03)

	if g.cards[a].State != Hidden || g.cards[b].State != Hidden {
		t.Errorf("states = %v/%v, expected hidden", g.cards[a].State, g.cards[b].State)
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
	if rec.Count(core.CueMismatch) != 1 {
		t.Errorf("mismatch cue played %d times, expected 1", rec.Count(core.CueMismatch))
	}
}

func TestTapsIgnoredWhileLocked(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 3})

	a, b := mismatch(g.cards)
	g.flip(a)
	g.flip(b)

	for i, c := range g.cards {
		if i == a || i == b || c.Filler {
			continue
		}
		g.flip(i)
		if g.cards[i].State != Hidden {
			t.Errorf("card %d flipped while locked", i)
		}
		break
	}
	if len(g.selection) != 2 {
		t.Errorf("selection = %v, expected 2 entries", g.selection)
	}
}

func TestInvalidFlipsIgnored(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 3})

	for i, c := range g.cards {
		if c.Filler {
			g.flip(i)
			if g.cards[i].State != Matched || len(g.selection) != 0 {
				t.Error("filler card should never flip")
			}
			break
		}
	}

	a, _ := mismatch(g.cards)
	g.flip(a)
	g.flip(a)
	if len(g.selection) != 1 {
		t.Errorf("duplicate tap changed selection to %v", g.selection)
	}

	g.flip(-1)
	g.flip(len(g.cards))
	if len(g.selection) != 1 {
		t.Errorf("out of range tap changed selection to %v", g.selection)
	}
}

func TestLevelAdvance(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 42})

	if g.Pairs() != 4 || len(g.cards) != 16 {
		t.Fatalf("level 1 = %d pairs on %d cells, expected 4 on 16", g.Pairs(), len(g.cards))
	}
	firstIDs := make([]string, len(g.cards))
	for i, c := range g.cards {
		firstIDs[i] = c.ID
	}

	clearBoard(g)
	if g.level != 1 || !g.locked {
		t.Fatalf("level = %d locked = %v right after clearing, expected 1/true", g.level, g.locked)
	}

	// The advance is due 0.45s after the step that resolved the last pair.
	idle(g, 0.40)
	if g.level != 1 {
		t.Fatalf("advanced before the delay elapsed")
	}
	idle(g, 0.06)

	if g.level != 2 {
		t.Fatalf("level = %d, expected 2", g.level)
	}
	if g.Pairs() != 5 || len(g.cards) != 16 {
		t.Errorf("level 2 = %d pairs on %d cells, expected 5 on 16", g.Pairs(), len(g.cards))
	}
	if g.locked || g.matched != 0 || g.timeLeft != g.cfg.LevelTime {
		t.Errorf("level 2 not fresh: locked=%v matched=%d time=%v", g.locked, g.matched, g.timeLeft)
	}
	for _, c := range g.cards {
		if c.State == Revealed || (!c.Filler && c.State == Matched) {
			t.Errorf("card %s carried state %v into the new level", c.ID, c.State)
		}
		if !strings.HasPrefix(c.ID, "l2_") && !strings.HasPrefix(c.ID, "f2_") {
			t.Errorf("card id %s not from level 2", c.ID)
		}
	}
	if g.score != 4 {
		t.Errorf("score = %d, expected 4", g.score)
	}
}

func TestTimeoutReturnsToLevelOne(t *testing.T) {
	rec := &core.Recorder{}
	g := newTestGame(core.RuntimeConfig{Seed: 42, Notifier: rec})

	g.deal(3)
	idle(g, 60)
	if g.level != 3 {
		t.Fatalf("level = %d before the timer ran out, expected 3", g.level)
	}

	// A pending resolution is dropped with the board
	a, b := mismatch(g.cards)
	g.flip(a)
	g.flip(b)
	idle(g, 61)

	if g.level != 1 {
		t.Errorf("level = %d after timeout, expected 1", g.level)
	}
	if g.events.Pending() != 0 {
		t.Errorf("%d events survived the timeout", g.events.Pending())
	}
	if g.locked || len(g.selection) != 0 {
		t.Error("timeout should clear the selection and unlock")
	}
	if rec.Count(core.CueTimeout) != 1 {
		t.Errorf("timeout cue played %d times, expected 1", rec.Count(core.CueTimeout))
	}
}

func TestFinalLevelAwardsOnce(t *testing.T) {
	calls := 0
	g := newTestGame(core.RuntimeConfig{Seed: 8, OnAward: func() { calls++ }})

	g.deal(g.Levels())
	if g.Pairs() != 10 || len(g.cards) != 20 {
		t.Fatalf("final level = %d pairs on %d cells, expected 10 on 20", g.Pairs(), len(g.cards))
	}

	clearBoard(g)
	if g.State().Phase != core.PhaseWon {
		t.Errorf("phase = %v, expected won", g.State().Phase)
	}
	if calls != 1 {
		t.Errorf("onAward called %d times, expected 1", calls)
	}

	// Taps after the final level are ignored
	g.flip(0)
	if len(g.selection) != 0 {
		t.Error("flip accepted after the final level")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in, 0)
	if g.level != 1 || g.State().Phase != core.PhaseActive {
		t.Errorf("restart = level %d phase %v, expected 1/active", g.level, g.State().Phase)
	}

	g.deal(g.Levels())
	clearBoard(g)
	if calls != 1 {
		t.Errorf("onAward called %d times after replay, expected 1", calls)
	}
}

func TestOversizedLevelStillClears(t *testing.T) {
	cfg, err := config.Parse([]byte("memory:\n  pairs: [12]\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	config.Use(cfg)
	t.Cleanup(func() { config.Use(config.Default()) })

	calls := 0
	g := newTestGame(core.RuntimeConfig{Seed: 3, OnAward: func() { calls++ }})
	if got := len(pairs(g.cards)); got != g.Pairs() {
		t.Fatalf("board holds %d pairs, level needs %d", got, g.Pairs())
	}

	clearBoard(g)
	if g.State().Phase != core.PhaseWon {
		t.Errorf("phase = %v, expected won", g.State().Phase)
	}
	if calls != 1 {
		t.Errorf("onAward called %d times, expected 1", calls)
	}
}

func TestNoAwardWhenAlreadyStarred(t *testing.T) {
	calls := 0
	g := newTestGame(core.RuntimeConfig{Seed: 8, HasStar: true, OnAward: func() { calls++ }})

	g.deal(g.Levels())
	clearBoard(g)
	if calls != 0 {
		t.Errorf("onAward called %d times, expected 0", calls)
	}
}

func TestPointerTapFlipsCard(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 4, ScreenW: 80, ScreenH: 24})

	// 16 cards on 80x24: board is 27x15 at (26, 4); card 5 is row 1 col 1.
	target := 5
	for g.cards[target].Filler {
		target++
	}
	x := 26 + (target%4)*7 + 2
	y := 4 + (target/4)*4 + 1

	in := core.NewInputFrame()
	in.Tap((float64(x)+0.5)/80, (float64(y)+0.5)/24)
	g.Step(in, 0)

	if g.cursor != target {
		t.Errorf("cursor = %d, expected %d", g.cursor, target)
	}
	if g.cards[target].State != Revealed {
		t.Errorf("card %d state = %v, expected revealed", target, g.cards[target].State)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 9})

	for _, size := range [][2]int{{80, 24}, {30, 10}, {0, 0}} {
		s := core.NewScreen(size[0], size[1])
		g.Render(s)
		if size[0] >= 80 && !strings.Contains(s.String(), "MEMORY") {
			t.Errorf("render at %dx%d is missing the HUD", size[0], size[1])
		}
	}
}

func TestRenderSurvivesResize(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 2})

	for _, size := range [][2]int{{80, 24}, {30, 10}, {0, 0}, {200, 60}} {
		s := core.NewScreen(size[0], size[1])
		g.Render(s)
		if !s.Empty() && !strings.Contains(s.Row(0), "MEMORY") {
			t.Errorf("render at %dx%d is missing the HUD: %q", size[0], size[1], s.Row(0))
		}
	}
}
