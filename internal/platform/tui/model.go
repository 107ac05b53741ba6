package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Game is what the model drives: a fixed-step simulation that renders into
// a Screen.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	HoldTicks() int
}

// ScoreRecorder stores finished sessions.
type ScoreRecorder interface {
	SaveScore(gameID, player string, score int) (int64, error)
}

// SoundPlayer plays the sounds for a tick's events.
type SoundPlayer interface {
	PlayEvents(events []core.Event)
}

// Options holds the model's optional collaborators.
type Options struct {
	Scores        ScoreRecorder // Nil disables score history
	Sound         SoundPlayer   // Nil is silent
	Player        string        // Name recorded with each score
	Logger        *log.Logger   // Nil uses the default logger
	ScreenshotDir string        // Empty uses ~/.skyhop/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	hold       *Hold
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets
// the game to its start screen.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       NewKeyMapper(),
		hold:       NewHold(game.HoldTicks()),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame, m.hold) {
		// Quit right away instead of waiting for the next tick
		quit := core.NewInputFrame()
		quit.Set(core.ActionQuit)
		m.gameState = m.game.Step(quit).State
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize keeps the run going at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.opts.Sound != nil {
		m.opts.Sound.PlayEvents(result.Events)
	}
	if result.Has(core.EventGameOver) {
		m.recordScore(m.gameState.Score)
	}
	if !m.gameState.Playing {
		m.hold.Release()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// recordScore adds a finished session to the history. Empty sessions are
// not recorded.
func (m Model) recordScore(score int) {
	if m.opts.Scores == nil || score <= 0 {
		return
	}
	if _, err := m.opts.Scores.SaveScore(m.game.ID(), m.opts.Player, score); err != nil {
		m.logger.Warn("could not record score", "player", m.opts.Player, "score", score, "error", err)
		return
	}
	m.logger.Debug("score recorded", "player", m.opts.Player, "score", score)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot locate screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".skyhop", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
