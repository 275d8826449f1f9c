package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/registry"
	"github.com/vovakirdan/star-quest/internal/storage"
)

// screenMode is the screen an AppModel is showing.
type screenMode int

const (
	modeHub screenMode = iota
	modeGame
	modeFinale
	modeScores
)

// AppModel manages the full quest flow: hub -> game/finale/scores -> hub.
// It is the top-level model for both local and SSH sessions.
type AppModel struct {
	session  *Session
	store    *storage.Store
	greeting Greeting
	config   core.RuntimeConfig
	mode     screenMode
	hub      HubModel
	game     *GameModel
	finale   *FinaleModel
	scores   *ScoreboardModel
	quitting bool
}

// NewAppModel creates the quest flow for session.
func NewAppModel(session *Session, store *storage.Store, greeting Greeting, cfg core.RuntimeConfig) AppModel {
	return AppModel{
		session:  session,
		store:    store,
		greeting: greeting,
		config:   cfg,
		hub:      NewHubModel(session.Stars(), cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.hub.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeFinale:
		return m.updateFinale(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateHub(msg)
	}
}

// updateHub handles updates when on the hub.
func (m AppModel) updateHub(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHub, cmd := m.hub.Update(msg)
	if hub, ok := newHub.(HubModel); ok {
		m.hub = hub
	}

	switch m.hub.Choice() {
	case HubChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case HubChoiceGame:
		game, err := registry.Create(m.hub.GameID())
		if err != nil {
			// Shouldn't happen since the hub only lists registered games
			m.session.Logger().Error("cannot create game", "error", err)
			m.returnToHub()
			return m, nil
		}
		gm := NewGameModel(game, m.session, m.config)
		m.game = &gm
		m.mode = modeGame
		return m, m.game.Init()

	case HubChoiceCongrats:
		fm := NewFinaleModel(m.session, m.greeting, m.config)
		m.finale = &fm
		m.mode = modeFinale
		return m, m.finale.Init()

	case HubChoiceScores:
		sm := NewScoreboardModel(m.store, m.session, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sm
		m.mode = modeScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when a game is running.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToHub() {
		// The game's loop id dies with it; its pending tick is dropped.
		m.game = nil
		m.returnToHub()
		return m, nil
	}

	return m, cmd
}

// updateFinale handles updates when the finale is showing.
func (m AppModel) updateFinale(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.finale.Update(msg)
	if fm, ok := newModel.(FinaleModel); ok {
		m.finale = &fm
	}

	if m.finale.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.finale.BackToHub() {
		m.finale = nil
		m.returnToHub()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is showing.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		m.returnToHub()
		return m, nil
	}

	return m, cmd
}

// returnToHub rebuilds the hub with fresh stars.
func (m *AppModel) returnToHub() {
	m.mode = modeHub
	m.hub = NewHubModel(m.session.Stars(), m.config.ScreenW, m.config.ScreenH)
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeFinale:
		return m.finale.View()
	case modeScores:
		return m.scores.View()
	default:
		return m.hub.View()
	}
}

// RunApp runs the hub flow until the user quits.
func RunApp(session *Session, store *storage.Store, greeting Greeting, cfg core.RuntimeConfig) error {
	model := NewAppModel(session, store, greeting, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
