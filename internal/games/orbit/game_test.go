package orbit

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/star-quest/internal/core"
)

const eps = 1e-9

func newTestGame(t *testing.T, cfg core.RuntimeConfig) *Game {
	t.Helper()
	g := New()
	g.Reset(cfg)
	return g
}

func tapFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionTap)
	return in
}

func TestSmallestAngleDiff(t *testing.T) {
	tests := []struct {
		a, b     float64
		expected float64
	}{
		{0, 0, 0},
		{0, math.Pi, math.Pi},
		{0.1, twoPi - 0.1, 0.2},
		{1, 2, 1},
		{5, 1, twoPi - 4},
	}

	for _, tc := range tests {
		got := smallestAngleDiff(tc.a, tc.b)
		if math.Abs(got-tc.expected) > eps {
			t.Errorf("smallestAngleDiff(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
		rev := smallestAngleDiff(tc.b, tc.a)
		if math.Abs(got-rev) > eps {
			t.Errorf("smallestAngleDiff not symmetric: %v vs %v", got, rev)
		}
	}
}

func TestSmallestAngleDiffRange(t *testing.T) {
	rng := core.NewRand(7)
	for i := 0; i < 1000; i++ {
		a := rng.Range(-20, 20)
		b := rng.Range(-20, 20)
		d := smallestAngleDiff(normalizeAngle(a), normalizeAngle(b))
		if d < 0 || d > math.Pi+eps {
			t.Fatalf("diff(%v, %v) = %v, outside [0, π]", a, b, d)
		}

		// Equivalent angles have zero distance
		same := smallestAngleDiff(normalizeAngle(a), normalizeAngle(a+twoPi*3))
		if same > 1e-6 {
			t.Fatalf("diff(%v, %v+6π) = %v, expected 0", a, a, same)
		}
	}
}

func TestTapScenario(t *testing.T) {
	g := newTestGame(t, core.RuntimeConfig{Seed: 42})

	snap := g.Snapshot()
	if snap.Speed != 1.10 || snap.Window != 1.05 || snap.Score != 0 {
		t.Fatalf("initial state = %+v, expected speed 1.10 window 1.05 score 0", snap)
	}

	// Put the target right under the marker: guaranteed hit
	g.target = normalizeAngle(g.angle)
	g.Step(tapFrame(), 0)

	snap = g.Snapshot()
	if snap.Score != 1 {
		t.Errorf("score after hit = %d, expected 1", snap.Score)
	}
	if math.Abs(snap.Speed-1.115) > eps {
		t.Errorf("speed after hit = %v, expected 1.115", snap.Speed)
	}
	if math.Abs(snap.Window-1.03) > eps {
		t.Errorf("window after hit = %v, expected 1.03", snap.Window)
	}

	// Opposite side of the ring: guaranteed miss
	g.target = normalizeAngle(g.angle + math.Pi)
	g.Step(tapFrame(), 0)

	snap = g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("score after miss = %d, expected 0 (floored)", snap.Score)
	}
	if math.Abs(snap.Window-1.02) > eps {
		t.Errorf("window after miss = %v, expected 1.02", snap.Window)
	}
	if snap.Hits != 1 || snap.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, expected 1/1", snap.Hits, snap.Misses)
	}
}

func TestSpeedAndWindowBounds(t *testing.T) {
	g := newTestGame(t, core.RuntimeConfig{Seed: 1})

	for i := 0; i < 100; i++ {
		g.target = normalizeAngle(g.angle)
		g.Step(tapFrame(), 0)
	}
	if g.speed != 1.55 {
		t.Errorf("speed after many hits = %v, expected cap 1.55", g.speed)
	}
	if g.window != 0.55 {
		t.Errorf("window after many hits = %v, expected floor 0.55", g.window)
	}

	for i := 0; i < 100; i++ {
		g.target = normalizeAngle(g.angle + math.Pi)
		g.Step(tapFrame(), 0)
	}
	if g.window != 0.50 {
		t.Errorf("window after many misses = %v, expected floor 0.50", g.window)
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected floor 0", g.score)
	}
}

func TestTargetRerandomizedOnEveryTap(t *testing.T) {
	g := newTestGame(t, core.RuntimeConfig{Seed: 3})

	changed := 0
	for i := 0; i < 20; i++ {
		before := g.target
		g.Step(tapFrame(), 0)
		if g.target != before {
			changed++
		}
	}
	if changed < 19 {
		t.Errorf("target changed on %d of 20 taps, expected every tap", changed)
	}
}

func TestAngleAdvancesWithDt(t *testing.T) {
	g := newTestGame(t, core.RuntimeConfig{Seed: 5})

	g.Step(core.NewInputFrame(), 0.02)
	if math.Abs(g.angle-0.022) > eps {
		t.Errorf("angle after 0.02s = %v, expected 0.022", g.angle)
	}
}

func TestAwardOnceAtGoal(t *testing.T) {
	calls := 0
	rec := &core.Recorder{}
	g := newTestGame(t, core.RuntimeConfig{Seed: 9, OnAward: func() { calls++ }, Notifier: rec})

	for i := 0; i < 45; i++ {
		g.target = normalizeAngle(g.angle)
		g.Step(tapFrame(), 0.016)
	}

	if g.score != 45 {
		t.Fatalf("score = %d, expected 45 (no cap after the goal)", g.score)
	}
	if calls != 1 {
		t.Errorf("onAward called %d times, expected 1", calls)
	}
	if rec.Count(core.CueAward) != 1 {
		t.Errorf("award cue played %d times, expected 1", rec.Count(core.CueAward))
	}

	// Restarting and reaching the goal again does not re-award
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in, 0)
	for i := 0; i < 35; i++ {
		g.target = normalizeAngle(g.angle)
		g.Step(tapFrame(), 0.016)
	}
	if calls != 1 {
		t.Errorf("onAward called %d times after restart, expected 1", calls)
	}
}

func TestNoAwardWhenAlreadyStarred(t *testing.T) {
	calls := 0
	g := newTestGame(t, core.RuntimeConfig{Seed: 9, HasStar: true, OnAward: func() { calls++ }})

	for i := 0; i < 40; i++ {
		g.target = normalizeAngle(g.angle)
		g.Step(tapFrame(), 0)
	}
	if calls != 0 {
		t.Errorf("onAward called %d times, expected 0", calls)
	}
}

func TestPointerTapsCount(t *testing.T) {
	g := newTestGame(t, core.RuntimeConfig{Seed: 11})

	in := core.NewInputFrame()
	in.Tap(0.2, 0.9)
	in.Tap(0.8, 0.1)
	g.Step(in, 0)

	if g.hits+g.misses != 2 {
		t.Errorf("judged %d taps, expected 2", g.hits+g.misses)
	}
}

func TestRenderSurvivesResize(t *testing.T) {
	g := newTestGame(t, core.RuntimeConfig{Seed: 2})

	for _, size := range [][2]int{{80, 24}, {30, 10}, {0, 0}, {200, 60}} {
		s := core.NewScreen(size[0], size[1])
		g.Render(s)
		if !s.Empty() && !strings.Contains(s.String(), "ORBIT") {
			t.Errorf("render at %dx%d is missing the HUD", size[0], size[1])
		}
	}
}
