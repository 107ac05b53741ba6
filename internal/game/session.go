package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Phase is a stage of the session lifecycle.
type Phase int

const (
	PhaseStart      Phase = iota // Title screen, waiting for a key
	PhasePlaying                 // A run is in progress
	PhaseGameOver                // Final score screen, waiting for a key
	PhaseTerminated              // The player quit
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// trigger is an input or condition that may move the session between phases.
type trigger int

const (
	triggerContinue trigger = iota
	triggerRunEnded
	triggerQuit
)

// transitions is the lifecycle table. Pairs that are absent leave the phase
// unchanged; PhaseTerminated has no way out.
var transitions = map[Phase]map[trigger]Phase{
	PhaseStart: {
		triggerContinue: PhasePlaying,
		triggerQuit:     PhaseTerminated,
	},
	PhasePlaying: {
		triggerRunEnded: PhaseGameOver,
		triggerQuit:     PhaseTerminated,
	},
	PhaseGameOver: {
		triggerContinue: PhasePlaying,
		triggerQuit:     PhaseTerminated,
	},
}

// next looks up the phase reached from p by t.
func next(p Phase, t trigger) (Phase, bool) {
	to, ok := transitions[p][t]
	return to, ok
}

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	// Load returns the stored high score, or 0 if there is none.
	Load() int
	// SaveIfHigher stores score only if it beats the stored value and
	// returns the best score after the call.
	SaveIfHigher(score int) (best int, saved bool, err error)
}

// Session runs the lifecycle: start screen, runs, game-over screens.
// It owns the current World and the high score.
type Session struct {
	cfg       config.SkyHopConfig
	runtime   core.RuntimeConfig
	store     HighScoreStore
	phase     Phase
	world     *World
	highScore int
	newHigh   bool
	paused    bool
	grace     int // Ticks left before the game-over screen accepts a key
	runs      int
	lastScore int
}

// NewSession creates a session on its start screen. The high score is read
// once from the store; a nil store keeps it in memory only.
func NewSession(cfg config.SkyHopConfig, runtime core.RuntimeConfig, store HighScoreStore) *Session {
	s := &Session{
		cfg:     cfg,
		runtime: runtime,
		store:   store,
		phase:   PhaseStart,
	}
	if store != nil {
		s.highScore = store.Load()
	}
	return s
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// World returns the current run, or nil before the first run.
func (s *Session) World() *World { return s.world }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// NewHighScore reports whether the last run set a new high score.
func (s *Session) NewHighScore() bool { return s.newHigh }

// Paused reports whether the current run is paused.
func (s *Session) Paused() bool { return s.paused }

// Score returns the score of the current run, or of the last one while the
// game-over screen shows.
func (s *Session) Score() int {
	if s.phase == PhasePlaying && s.world != nil {
		return s.world.Score()
	}
	return s.lastScore
}

// Resize updates the screen dimensions used for this and future runs.
func (s *Session) Resize(w, h int) {
	s.runtime.ScreenW = w
	s.runtime.ScreenH = h
	if s.world != nil {
		s.world.Resize(w, h)
	}
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	// Quit wins in every phase
	if in.Has(core.ActionQuit) {
		s.fire(triggerQuit)
		return core.StepResult{State: s.State()}
	}

	switch s.phase {
	case PhaseStart:
		if in.Has(core.ActionContinue) {
			s.fire(triggerContinue)
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
		}
		if s.paused {
			break
		}
		report := s.world.Update(in)
		if report.Jumped {
			events = append(events, core.EventJump)
		}
		if report.Landed {
			events = append(events, core.EventLand)
		}
		for i := 0; i < report.Recycled; i++ {
			events = append(events, core.EventRecycle)
		}
		if report.Ended {
			s.fire(triggerRunEnded)
			events = append(events, core.EventGameOver)
			if s.newHigh {
				events = append(events, core.EventHighScore)
			}
		}

	case PhaseGameOver:
		if s.grace > 0 {
			s.grace--
			break
		}
		if in.Has(core.ActionContinue) {
			s.fire(triggerContinue)
		}
	}

	return core.StepResult{State: s.State(), Events: events}
}

// fire applies a trigger and runs the entry action of the new phase.
func (s *Session) fire(t trigger) {
	to, ok := next(s.phase, t)
	if !ok {
		return
	}
	s.phase = to

	switch to {
	case PhasePlaying:
		s.startRun()
	case PhaseGameOver:
		s.finishRun()
	}
}

// startRun begins a fresh run. Each run gets its own seed derived from the
// session seed so a session replays identically.
func (s *Session) startRun() {
	s.runs++
	s.paused = false
	s.newHigh = false
	if s.store != nil {
		s.highScore = max(s.highScore, s.store.Load())
	}
	s.world = NewWorld(s.cfg, s.runtime.ScreenW, s.runtime.ScreenH, s.runtime.Seed+int64(s.runs))
}

// finishRun records the run's score and persists a beaten high score. The
// store decides against its own value, which other sessions may have
// raised since this one read it.
func (s *Session) finishRun() {
	s.lastScore = s.world.Score()
	s.grace = s.cfg.Session.GameOverGraceTicks
	s.paused = false

	if s.store != nil {
		best, saved, err := s.store.SaveIfHigher(s.lastScore)
		if err == nil {
			s.highScore = best
			s.newHigh = saved
			return
		}
		log.Warn("could not save high score", "score", s.lastScore, "error", err)
	}

	if s.lastScore > s.highScore {
		s.highScore = s.lastScore
		s.newHigh = true
	}
}

// State returns the session state for the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:      s.Score(),
		HighScore:  s.highScore,
		Playing:    s.phase == PhasePlaying,
		GameOver:   s.phase == PhaseGameOver,
		Paused:     s.paused,
		Terminated: s.phase == PhaseTerminated,
	}
}
