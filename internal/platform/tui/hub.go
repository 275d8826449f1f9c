package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/registry"
	"github.com/vovakirdan/star-quest/internal/storage"
)

// HubEntry describes one star game on the hub.
type HubEntry struct {
	GameID string
	Title  string
	Goal   string
	About  string
}

// HubEntries returns the star games in hub order with goals taken from the
// active tuning.
func HubEntries() []HubEntry {
	cfg := config.Active()
	entries := []HubEntry{
		{
			GameID: "runner",
			Goal:   fmt.Sprintf("Star at %d points", cfg.Runner.Goal),
			About:  "Switch lanes, dodge blocks, collect coins: 5 coins = shield",
		},
		{
			GameID: "memory",
			Goal:   fmt.Sprintf("Star for clearing %d levels", len(cfg.Memory.Pairs)),
			About:  "Flip two cards: matches stay open, misses flip back",
		},
		{
			GameID: "mines",
			Goal:   fmt.Sprintf("Star for %d safe cells", cfg.Mines.Goal),
			About:  "Open cells, avoid mines. Numbers count adjacent mines",
		},
		{
			GameID: "tower",
			Goal:   fmt.Sprintf("Star at score %d", cfg.Tower.Goal),
			About:  "Tap to drop the block. Perfect drops earn a bonus",
		},
		{
			GameID: "orbit",
			Goal:   fmt.Sprintf("Star at score %d", cfg.Orbit.Goal),
			About:  fmt.Sprintf("Hit +1, miss -%d, the zone keeps shrinking", cfg.Orbit.MissPenalty),
		},
	}

	titles := make(map[string]string)
	for _, g := range registry.List() {
		titles[g.ID] = g.Title
	}
	for i := range entries {
		entries[i].Title = titles[entries[i].GameID]
		if entries[i].Title == "" {
			entries[i].Title = entries[i].GameID
		}
	}
	return entries
}

// HubKeyMap defines the key bindings for the hub.
type HubKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Congrats key.Binding
	Scores   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HubKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Congrats, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HubKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Congrats, k.Scores, k.Quit},
	}
}

// DefaultHubKeyMap returns default key bindings.
func DefaultHubKeyMap() HubKeyMap {
	return HubKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Congrats: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "congratulations"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HubChoice is what the user picked on the hub.
type HubChoice int

const (
	HubChoiceNone HubChoice = iota
	HubChoiceGame
	HubChoiceCongrats
	HubChoiceScores
	HubChoiceQuit
)

// HubModel is the Bubble Tea model for the star hub.
type HubModel struct {
	entries []HubEntry
	stars   storage.Stars
	cursor  int // len(entries) is the congratulations row
	width   int
	height  int
	keys    HubKeyMap
	help    help.Model
	notice  string
	choice  HubChoice
	gameID  string
}

// NewHubModel creates a hub showing stars.
func NewHubModel(stars storage.Stars, width, height int) HubModel {
	h := help.New()
	h.Width = width
	return HubModel{
		entries: HubEntries(),
		stars:   stars,
		width:   width,
		height:  height,
		keys:    DefaultHubKeyMap(),
		help:    h,
	}
}

// Init initializes the hub model.
func (m HubModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the hub.
func (m HubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for hub navigation.
func (m HubModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = HubChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries) {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Scores):
		m.choice = HubChoiceScores

	case key.Matches(msg, m.keys.Congrats):
		m.openCongrats()

	case key.Matches(msg, m.keys.Select):
		if m.cursor == len(m.entries) {
			m.openCongrats()
		} else {
			m.choice = HubChoiceGame
			m.gameID = m.entries[m.cursor].GameID
		}
	}

	return m, nil
}

// openCongrats selects the finale once every star is collected.
func (m *HubModel) openCongrats() {
	if !m.stars.Unlocked() {
		m.notice = fmt.Sprintf("Collect all %d stars first (%d so far)", len(storage.StarGames), m.stars.Count())
		return
	}
	m.choice = HubChoiceCongrats
}

// View renders the hub.
func (m HubModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S T A R   Q U E S T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(starStyle.Render(m.starRow()), m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		star := "☆"
		if m.stars.Has(e.GameID) {
			star = "★"
		}

		line := fmt.Sprintf("%s%d) %-14s %s", cursor, i+1, e.Title, star)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(centerText(dimStyle.Render(e.About), m.width))
			b.WriteString("\n")
			b.WriteString(centerText(dimStyle.Render("Goal: "+e.Goal), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	congrats := "Open the congratulations"
	if !m.stars.Unlocked() {
		congrats += " (locked)"
	}
	cursor := "  "
	style := dimStyle
	if m.cursor == len(m.entries) {
		cursor = "> "
		style = activeStyle
	}
	if m.stars.Unlocked() && m.cursor != len(m.entries) {
		style = lipgloss.NewStyle()
	}
	b.WriteString(centerText(style.Render(cursor+congrats), m.width))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(starStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// starRow renders the collected stars, e.g. "★ ★ ☆ ☆ ☆  2/5".
func (m HubModel) starRow() string {
	parts := make([]string, 0, len(storage.StarGames))
	for _, id := range storage.StarGames {
		if m.stars.Has(id) {
			parts = append(parts, "★")
		} else {
			parts = append(parts, "☆")
		}
	}
	return fmt.Sprintf("%s  %d/%d", strings.Join(parts, " "), m.stars.Count(), len(storage.StarGames))
}

// Choice returns what the user picked, HubChoiceNone while browsing.
func (m HubModel) Choice() HubChoice {
	return m.choice
}

// GameID returns the picked game when Choice is HubChoiceGame.
func (m HubModel) GameID() string {
	return m.gameID
}

// Notice returns the last hint shown to the user.
func (m HubModel) Notice() string {
	return m.notice
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
