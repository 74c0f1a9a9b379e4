package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/alexchandel/gravity-worm/internal/config"
	"github.com/alexchandel/gravity-worm/internal/core"
	"github.com/alexchandel/gravity-worm/internal/worm"
)

// session tracks per-process statistics across runs.
type session struct {
	logger *log.Logger
	runs   int
	best   int
}

func (s *session) started() {
	s.runs++
	s.logger.Info("game started", "run", s.runs)
}

func (s *session) gameOver(score int) {
	if score > s.best {
		s.best = score
	}
	s.logger.Info("game over", "run", s.runs, "score", score, "best", s.best)
}

// Model is the Bubble Tea model running a gravity worm game.
type Model struct {
	game     *worm.Game
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	fps      *FPSCounter
	session  *session
	config   core.RuntimeConfig
	now      func() time.Time
	lastTick time.Time
	title    string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards session events.
func NewModel(game *worm.Game, cfg core.RuntimeConfig, input config.InputConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &session{logger: logger}
	game.SetGameOverHandler(s.gameOver)

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		hold:     NewHoldTracker(time.Duration(input.ReleaseAfterMs) * time.Millisecond),
		fps:      &FPSCounter{},
		session:  s,
		config:   cfg,
		now:      time.Now,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), tea.SetWindowTitle(m.windowTitle()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.session.logger.Info("quit", "runs", m.session.runs, "best", m.session.best)
		return m, tea.Quit
	case core.ActionThrust:
		if m.hold.Press(m.now()) {
			m.game.Press(action)
		}
	}
	return m, nil
}

// handleResize adjusts the drawing area. The simulation is resolution independent.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-1) // Leave a row for help
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases timed-out holds and advances the simulation by the
// wall-clock time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.hold.Expired(now) {
		before := m.game.Status()
		m.game.Release(core.ActionThrust)
		if before == worm.StatusBefore && m.game.Status() == worm.StatusDuring {
			m.session.started()
		}
	}

	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	m.game.Advance(dt)

	m.fps.Frame(now)
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if title := m.windowTitle(); title != m.title {
		m.title = title
		cmds = append(cmds, tea.SetWindowTitle(title))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) windowTitle() string {
	return fmt.Sprintf("Gravity worm FPS %d score %d", m.fps.FPS(), m.game.Score())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Best returns the best score of the session.
func (m Model) Best() int {
	return m.session.best
}

// Run starts the Bubble Tea program with the given game.
func Run(game *worm.Game, cfg core.RuntimeConfig, input config.InputConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, input, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
