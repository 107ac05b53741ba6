// Package game implements SkyHop, a vertically scrolling platformer.
// The player bounces between random platforms, the camera scrolls up as the
// player climbs, and every platform that scrolls off the bottom scores points.
package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// ID is the identifier used for score storage.
const ID = "skyhop"

// Options configures a Game.
type Options struct {
	Config     *config.SkyHopConfig    // Resolved tuning; nil loads ConfigPath
	ConfigPath string                  // Custom tuning file; empty uses the search order
	Preset     config.DifficultyPreset // Empty keeps the config's difficulty
	Store      HighScoreStore          // Nil keeps the high score in memory
}

// Game adapts a Session to the platform: Reset, Step, Render and State.
type Game struct {
	opts     Options
	cfg      config.SkyHopConfig
	runtime  core.RuntimeConfig
	session  *Session
	tooSmall bool
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "SkyHop"
}

// Reset loads the tuning and starts a new session on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := g.loadConfig()
	config.ApplyPreset(&cfg, g.opts.Preset)
	g.cfg = cfg

	g.session = NewSession(cfg, runtime, g.opts.Store)
	g.checkSize()
}

// loadConfig returns a copy of the resolved tuning, or loads it from the
// options' path and falls back to the defaults if that fails.
func (g *Game) loadConfig() config.SkyHopConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}
	cfg, err := config.LoadSkyHop(g.opts.ConfigPath)
	if err != nil {
		log.Warn("could not load game config, using defaults", "path", g.opts.ConfigPath, "error", err)
		return config.DefaultSkyHopConfig()
	}
	return cfg
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.session.Resize(w, h)
	g.checkSize()
}

func (g *Game) checkSize() {
	g.tooSmall = g.runtime.ScreenW < g.cfg.Session.MinScreenW || g.runtime.ScreenH < g.cfg.Session.MinScreenH
}

// Step advances the game by one tick. While the screen is too small only
// quitting is possible.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		if !in.Has(core.ActionQuit) {
			return core.StepResult{State: g.session.State()}
		}
		quit := core.NewInputFrame()
		quit.Set(core.ActionQuit)
		in = quit
	}
	return g.session.Step(in)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// HoldTicks returns how many ticks a direction key press keeps the
// direction held.
func (g *Game) HoldTicks() int {
	return g.cfg.Session.HoldTicks
}
