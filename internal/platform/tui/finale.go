package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-quest/internal/config"
	"github.com/vovakirdan/star-quest/internal/core"
	"github.com/vovakirdan/star-quest/internal/games/fireworks"
)

// Greeting is the message shown over the fireworks.
type Greeting struct {
	Title string
	Lines []string
}

// DefaultGreeting returns the stock birthday card.
func DefaultGreeting() Greeting {
	return Greeting{
		Title: "Happy birthday!",
		Lines: []string{
			"All five stars collected.",
			"Wishing you happiness, health and everything you wish for!",
		},
	}
}

// lockedGreeting is shown when the finale is opened too early.
var lockedGreeting = Greeting{
	Title: "Not yet",
	Lines: []string{
		"The big show and the congratulations live here.",
		"Collect all five stars in the mini-games to open them.",
	},
}

// FinaleModel plays the fireworks show under the greeting card.
type FinaleModel struct {
	show       *fireworks.Game
	session    *Session
	greeting   Greeting
	unlocked   bool
	screen     *core.Screen
	config     core.RuntimeConfig
	clock      *core.Clock
	loop       uint64
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	standalone bool
	quitting   bool
	backToHub  bool
}

// NewFinaleModel creates the finale. It only runs the show when the
// session holds every star.
func NewFinaleModel(session *Session, greeting Greeting, cfg core.RuntimeConfig) FinaleModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.Notifier = session.Notifier()

	return FinaleModel{
		show:       fireworks.New(),
		session:    session,
		greeting:   greeting,
		unlocked:   session.Unlocked(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		clock:      core.NewClock(config.Active().Clock.MaxStep),
		loop:       nextLoop(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the show with the fanfare.
func (m FinaleModel) Init() tea.Cmd {
	if !m.unlocked {
		return nil
	}
	m.show.Reset(m.config)
	m.show.Fanfare()
	m.session.Logger().Info("finale opened")
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages for the finale.
func (m FinaleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.unlocked {
			m.keyMapper.MapMouseToFrame(msg, m.screen.Width(), m.screen.Height(), &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop || !m.unlocked || m.backToHub || m.quitting {
			return m, nil
		}
		dt := m.clock.Step(msg.Time)
		m.show.Step(m.inputFrame, dt)
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m FinaleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.backToHub = true
		if m.standalone {
			return m, tea.Quit
		}

	case !m.unlocked:
		// Nothing to launch

	case action == core.ActionRestart:
		// One more show, fanfare included
		m.config.Seed++
		m.show.Reset(m.config)
		m.show.Fanfare()

	case action == core.ActionTap || action == core.ActionConfirm:
		m.inputFrame.Set(core.ActionTap)
	}

	return m, nil
}

// View renders the show and the card.
func (m FinaleModel) View() string {
	if m.quitting {
		return ""
	}

	if m.unlocked {
		m.show.Render(m.screen)
		drawCard(m.screen, m.greeting, core.ColorBrightYellow)
		m.screen.DrawTextCentered(m.screen.Height()-1, "Space/Click: launch  R: again  B: back", core.ColorGray)
	} else {
		m.screen.Clear()
		drawCard(m.screen, lockedGreeting, core.ColorGray)
		m.screen.DrawTextCentered(m.screen.Height()-1, "B: back", core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// Unlocked reports whether the show is running.
func (m FinaleModel) Unlocked() bool {
	return m.unlocked
}

// IsQuitting returns true if user requested to quit entirely.
func (m FinaleModel) IsQuitting() bool {
	return m.quitting
}

// BackToHub returns true if user requested to go back to the hub.
func (m FinaleModel) BackToHub() bool {
	return m.backToHub
}

// drawCard draws the greeting in a box near the top of the screen.
func drawCard(s *core.Screen, g Greeting, c core.Color) {
	if s.Empty() {
		return
	}

	lines := append([]string{g.Title, ""}, g.Lines...)
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	boxW := min(w+4, s.Width())
	boxH := min(len(lines)+2, s.Height())
	box := core.NewRect((s.Width()-boxW)/2, 1, boxW, boxH)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		s.DrawTextCentered(box.Y+1+i, l, color)
	}
}

// RunFinale shows the finale on its own.
func RunFinale(session *Session, greeting Greeting, cfg core.RuntimeConfig) error {
	model := NewFinaleModel(session, greeting, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
