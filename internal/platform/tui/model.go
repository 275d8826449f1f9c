package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/registry"
)

// GameModel runs one engine inside Bubble Tea: it owns the frame clock, the
// loop id and the per-frame input, and reports scores to the session.
type GameModel struct {
	game       registry.Game
	session    *Session
	screen     *core.Screen
	config     core.RuntimeConfig
	clock      *core.Clock
	loop       uint64
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	paused     bool
	standalone bool // Quit the program instead of returning to the hub
	quitting   bool
	backToHub  bool
	scoreSaved bool // Score recorded for the current lost round
}

// NewGameModel creates a game model. The engine is reset in Init.
func NewGameModel(game registry.Game, session *Session, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:       game,
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     session.RuntimeConfig(game.ID(), cfg),
		clock:      core.NewClock(config.Active().Clock.MaxStep),
		loop:       nextLoop(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the engine and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.screen.Width(), m.screen.Height(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// Engines derive their layout from the screen on every render.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.leave()
		m.backToHub = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case action == core.ActionPause:
		m.paused = !m.paused
		if m.paused {
			// Restart the clock on resume so the pause is not replayed as one step.
			m.clock.Stop()
		}
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToHub {
		return m, nil
	}
	if m.paused {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	dt := m.clock.Step(now)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver() && !m.scoreSaved:
		m.session.RecordScore(m.game.ID(), m.gameState.Score)
		m.scoreSaved = true
	case !m.gameState.GameOver():
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.loop)
}

// leave records an unfinished round with a positive score.
func (m *GameModel) leave() {
	if m.scoreSaved {
		return
	}
	m.session.RecordScore(m.game.ID(), m.game.State().Score)
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".starquest", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.Logger().Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Logger().Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused && !m.screen.Empty() {
		m.screen.DrawMessage("PAUSED", "P: resume  B: back", core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToHub returns true if user requested to go back to the hub.
func (m GameModel) BackToHub() bool {
	return m.backToHub
}

// Paused reports whether stepping is suspended.
func (m GameModel) Paused() bool {
	return m.paused
}

// State returns the engine state after the last step.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// RunGame plays a single game until the user quits or goes back.
func RunGame(game registry.Game, session *Session, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, session, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
