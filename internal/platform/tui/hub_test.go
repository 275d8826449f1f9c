package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-quest/internal/storage"
)

func pressHub(t *testing.T, m HubModel, msgs ...tea.KeyMsg) HubModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(HubModel)
	}
	return m
}

func allStars() storage.Stars {
	var s storage.Stars
	for _, id := range storage.StarGames {
		s.Set(id, true)
	}
	return s
}

func TestHubEntriesOrder(t *testing.T) {
	entries := HubEntries()
	if len(entries) != len(storage.StarGames) {
		t.Fatalf("HubEntries() has %d entries, expected %d", len(entries), len(storage.StarGames))
	}
	for i, e := range entries {
		if e.GameID != storage.StarGames[i] {
			t.Errorf("entry %d = %q, expected %q", i, e.GameID, storage.StarGames[i])
		}
		if e.Title == "" || e.Goal == "" || e.About == "" {
			t.Errorf("entry %q is missing text: %+v", e.GameID, e)
		}
	}
}

func TestHubSelectGame(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected string
	}{
		{"first", []tea.KeyMsg{enter}, "runner"},
		{"third", []tea.KeyMsg{down, down, enter}, "mines"},
		{"up clamps", []tea.KeyMsg{{Type: tea.KeyUp}, enter}, "runner"},
		{"vim keys", []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('k'), enter}, "memory"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := pressHub(t, NewHubModel(storage.Stars{}, 80, 24), tc.keys...)
			if m.Choice() != HubChoiceGame {
				t.Fatalf("Choice() = %v, expected HubChoiceGame", m.Choice())
			}
			if m.GameID() != tc.expected {
				t.Errorf("GameID() = %q, expected %q", m.GameID(), tc.expected)
			}
		})
	}
}

func TestHubCongratsLocked(t *testing.T) {
	m := pressHub(t, NewHubModel(storage.Stars{Orbit: true}, 80, 24), runeKey('c'))

	if m.Choice() != HubChoiceNone {
		t.Errorf("Choice() = %v, expected HubChoiceNone while locked", m.Choice())
	}
	if !strings.Contains(m.Notice(), "1 so far") {
		t.Errorf("Notice() = %q, expected the star count", m.Notice())
	}
	if !strings.Contains(m.View(), "(locked)") {
		t.Error("View() should mark the congratulations as locked")
	}

	// Any other key clears the hint
	m = pressHub(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Notice() != "" {
		t.Errorf("Notice() = %q, expected it cleared", m.Notice())
	}
}

func TestHubCongratsUnlocked(t *testing.T) {
	m := pressHub(t, NewHubModel(allStars(), 80, 24), runeKey('c'))
	if m.Choice() != HubChoiceCongrats {
		t.Errorf("Choice() = %v, expected HubChoiceCongrats", m.Choice())
	}

	// The row below the games opens it too
	keys := make([]tea.KeyMsg, 0, 8)
	for range storage.StarGames {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyDown})
	}
	keys = append(keys, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressHub(t, NewHubModel(allStars(), 80, 24), keys...)
	if m.Choice() != HubChoiceCongrats {
		t.Errorf("Choice() from the last row = %v, expected HubChoiceCongrats", m.Choice())
	}
}

func TestHubScoresAndQuit(t *testing.T) {
	m := pressHub(t, NewHubModel(storage.Stars{}, 80, 24), tea.KeyMsg{Type: tea.KeyTab})
	if m.Choice() != HubChoiceScores {
		t.Errorf("Choice() = %v, expected HubChoiceScores", m.Choice())
	}

	next, cmd := NewHubModel(storage.Stars{}, 80, 24).Update(runeKey('q'))
	if next.(HubModel).Choice() != HubChoiceQuit || cmd == nil {
		t.Error("q should quit the hub")
	}
}

func TestHubStarRow(t *testing.T) {
	m := NewHubModel(storage.Stars{Runner: true, Tower: true}, 80, 24)

	row := m.starRow()
	if row != "★ ☆ ☆ ★ ☆  2/5" {
		t.Errorf("starRow() = %q, expected %q", row, "★ ☆ ☆ ★ ☆  2/5")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"★", 3, " ★"},
		{"toolong", 4, "toolong"},
	}

	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}
