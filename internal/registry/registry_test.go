package registry

import (
	"testing"

	"github.com/vovakirdan/star-quest/internal/core"
)

type fakeGame struct {
	id    string
	state core.GameState
}

func (g *fakeGame) ID() string               { return g.id }
func (g *fakeGame) Title() string            { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *fakeGame) Render(*core.Screen)      {}
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Step(core.InputFrame, float64) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_fake", func() Game { return &fakeGame{id: "zz_fake"} })

	if !Exists("zz_fake") {
		t.Fatal("Exists(zz_fake) = false, expected true")
	}

	g, err := Create("zz_fake")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	g.Reset(core.DefaultConfig())
	if res := g.Step(core.NewInputFrame(), 0.016); res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}

	// Every Create returns a fresh instance
	g2, _ := Create("zz_fake")
	if g2.State().Score != 0 {
		t.Errorf("second instance Score = %d, expected 0", g2.State().Score)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_fake" {
			found = true
			if info.Title != "Fake zz_fake" {
				t.Errorf("Title = %q, expected %q", info.Title, "Fake zz_fake")
			}
		}
	}
	if !found {
		t.Error("List() is missing zz_fake")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &fakeGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &fakeGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
