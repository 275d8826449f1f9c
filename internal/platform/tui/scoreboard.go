package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-quest/internal/storage"
)

// boardLimit is how many rounds one game's board lists.
const boardLimit = 50

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Prev key.Binding
	Next key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev game"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "hub"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// board is everything shown for one star game.
type board struct {
	rounds  []storage.ScoreEntry
	stats   *storage.GameStats
	starred map[string]bool // Profiles holding this game's star
}

// loadBoard reads a game's rounds, totals and star holders. A nil store
// gives an empty board.
func loadBoard(store *storage.Store, gameID string) board {
	b := board{starred: make(map[string]bool)}
	if store == nil {
		return b
	}

	if rounds, err := store.TopScores(gameID, boardLimit); err == nil {
		b.rounds = rounds
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		b.stats = stats
	}
	for _, r := range b.rounds {
		if _, seen := b.starred[r.Profile]; seen {
			continue
		}
		stars, err := store.LoadStars(r.Profile)
		b.starred[r.Profile] = err == nil && stars.Has(gameID)
	}
	return b
}

// ScoreboardModel shows the best rounds of each star game, with the star
// holders marked and the viewing player's rounds highlighted.
type ScoreboardModel struct {
	games     []HubEntry
	current   int
	store     *storage.Store
	session   *Session
	board     board
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for session's player.
func NewScoreboardModel(store *storage.Store, session *Session, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:   HubEntries(),
		store:   store,
		session: session,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

// newTable sizes the rounds table to the terminal.
func (m ScoreboardModel) newTable() table.Model {
	player := max(m.width-48, 10)
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: min(player, 20)},
		{Title: "Score", Width: 7},
		{Title: "★", Width: 2},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches the current game's board and fills the table.
func (m *ScoreboardModel) load() {
	if len(m.games) == 0 {
		return
	}
	m.board = loadBoard(m.store, m.games[m.current].GameID)

	viewer := m.viewer()
	rows := make([]table.Row, len(m.board.rounds))
	for i, r := range m.board.rounds {
		star := ""
		if m.board.starred[r.Profile] {
			star = "★"
		}
		name := r.Profile
		if r.Profile == viewer {
			name = "> " + name
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			name,
			fmt.Sprint(r.Score),
			star,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// viewer returns the player's profile, empty without a session.
func (m ScoreboardModel) viewer() string {
	if m.session == nil {
		return ""
	}
	return m.session.Profile
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.switchGame(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.switchGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// switchGame moves to the next or previous star game, wrapping around.
func (m *ScoreboardModel) switchGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.load()
}

// GameID returns the game whose board is shown.
func (m ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].GameID
}

// Rounds returns the rounds on the current board.
func (m ScoreboardModel) Rounds() []storage.ScoreEntry {
	return m.board.rounds
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack || len(m.games) == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frameStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("BEST ROUNDS"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.gameStrip(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.board.rounds) == 0 {
		body = dimStyle.Italic(true).Padding(1, 2).Render(
			"No rounds yet.\nPlay " + m.games[m.current].Title + " to get on the board!")
	}
	for _, line := range strings.Split(frameStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// gameStrip lists the star games with the player's own stars, the current
// one highlighted, e.g. "Neon Runner ★ | [Memory ☆] | ...".
func (m ScoreboardModel) gameStrip() string {
	var stars storage.Stars
	if m.session != nil {
		stars = m.session.Stars()
	}

	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	idleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	parts := make([]string, len(m.games))
	for i, g := range m.games {
		star := "☆"
		if stars.Has(g.GameID) {
			star = "★"
		}
		label := g.Title + " " + star
		if i == m.current {
			parts[i] = activeStyle.Render(" " + label + " ")
		} else {
			parts[i] = idleStyle.Render(label)
		}
	}

	strip := strings.Join(parts, " | ")
	if lipgloss.Width(strip) > m.width-2 {
		// Too narrow for every tab
		g := m.games[m.current]
		return activeStyle.Render(fmt.Sprintf(" < %s %d/%d > ", g.Title, m.current+1, len(m.games)))
	}
	return strip
}

// summary describes the current game's totals and the player's best.
func (m ScoreboardModel) summary() string {
	var parts []string
	if st := m.board.stats; st != nil && st.GamesCount > 0 {
		parts = append(parts,
			fmt.Sprintf("%d rounds", st.GamesCount),
			fmt.Sprintf("top %d", st.HighScore),
			fmt.Sprintf("avg %.1f", st.AvgScore),
			fmt.Sprintf("%d ★ earned", st.Stars),
		)
	}
	if m.session != nil {
		if best := m.session.Best(m.GameID()); best > 0 {
			parts = append(parts, fmt.Sprintf("your best %d", best))
		}
	}
	if len(parts) == 0 {
		return m.games[m.current].Goal
	}
	return strings.Join(parts, "  ·  ")
}

// IsGoingBack returns true if user wants to go back to the hub.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
