package game

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// supportProbe is how far below the feet the support check looks.
const supportProbe = 1.0

// TickReport summarises what happened during one World.Update.
type TickReport struct {
	Jumped   bool
	Landed   bool
	Recycled int  // Platforms scrolled off the bottom this tick
	Ended    bool // No platforms left: the run is over
}

// World is one run: the player, the platforms and the score. It resolves
// collisions, scrolling, recycling and respawning each tick.
type World struct {
	cfg        config.SkyHopConfig
	screenW    int
	screenH    int
	player     *Player
	platforms  Platforms
	spawner    *Spawner
	difficulty *config.DifficultyManager
	score      int
	ticks      int
	ended      bool
}

// NewWorld sets up the starting layout for a run. Platforms are topped up to
// the minimum count on the first tick.
func NewWorld(cfg config.SkyHopConfig, screenW, screenH int, seed int64) *World {
	diff := config.NewDifficultyManager(cfg.Difficulty)
	w := &World{
		cfg:        cfg,
		screenW:    screenW,
		screenH:    screenH,
		spawner:    NewSpawner(seed, cfg.Platforms, diff),
		difficulty: diff,
	}

	w.player = NewPlayer(
		cfg.Player.StartX*float64(screenW),
		cfg.Player.StartY*float64(screenH),
		cfg.Player.Width,
		cfg.Player.Height,
	)
	for _, p := range Layout(cfg.Platforms.Initial, screenW, screenH) {
		w.platforms.Add(p)
	}
	return w
}

// Player returns the player entity.
func (w *World) Player() *Player { return w.player }

// Platforms returns the live platforms in insertion order.
func (w *World) Platforms() []Platform { return w.platforms.All() }

// Score returns the run's score.
func (w *World) Score() int { return w.score }

// Ticks returns the number of updates applied.
func (w *World) Ticks() int { return w.ticks }

// Ended reports whether the run is over.
func (w *World) Ended() bool { return w.ended }

// Resize changes the visible area. The world keeps its state; platforms
// that no longer fit simply scroll away.
func (w *World) Resize(screenW, screenH int) {
	w.screenW = screenW
	w.screenH = screenH
}

// Update advances the run by one tick.
func (w *World) Update(in core.InputFrame) TickReport {
	var report TickReport
	if w.ended {
		report.Ended = true
		return report
	}
	w.ticks++
	phys := w.cfg.Physics

	if in.Has(core.ActionJump) {
		report.Jumped = w.player.Jump(phys, w.supported())
	}
	w.player.Update(phys, in.Axis(), float64(w.screenW))

	report.Landed = w.land()
	report.Recycled = w.scroll()
	w.fall()

	if w.platforms.Len() == 0 {
		w.ended = true
		report.Ended = true
		return report
	}

	w.replenish()
	return report
}

// supported reports whether a platform is directly under the player's feet.
func (w *World) supported() bool {
	if w.player.Vel.Y < 0 {
		return false
	}
	probe := w.player.Rect()
	probe.Y += supportProbe
	_, ok := w.platforms.FirstHit(probe)
	return ok
}

// land snaps a falling player onto the first platform it overlaps.
// Rising players pass through platforms from below.
func (w *World) land() bool {
	if w.player.Vel.Y <= 0 {
		return false
	}
	hit, ok := w.platforms.FirstHit(w.player.Rect())
	if !ok {
		return false
	}
	w.player.Pos.Y = hit.Rect.Top()
	w.player.Vel.Y = 0
	return true
}

// scroll moves the world down instead of letting the player climb past the
// scroll line, and recycles platforms pushed below the screen.
func (w *World) scroll() int {
	line := float64(w.screenH) * w.cfg.Scroll.Fraction
	if w.player.Rect().Top() > line {
		return 0
	}

	d := math.Abs(w.player.Vel.Y)
	w.player.Pos.Y += d
	w.platforms.Shift(d)

	bottom := float64(w.screenH)
	recycled := w.platforms.RemoveIf(func(p Platform) bool {
		return p.Rect.Top() >= bottom
	})
	w.score += recycled * w.cfg.Platforms.RecyclePoints
	return recycled
}

// fall scrolls everything up while the player drops out of the bottom, so
// the platforms leave through the top and the run ends.
func (w *World) fall() {
	if w.player.Rect().Bottom() <= float64(w.screenH) {
		return
	}

	d := math.Max(w.player.Vel.Y, w.cfg.Scroll.DeathMin)
	w.player.Pos.Y -= d
	if w.player.Rect().Bottom() < 0 {
		w.player.Gone = true
	}

	w.platforms.Shift(-d)
	w.platforms.RemoveIf(func(p Platform) bool {
		return p.Rect.Bottom() < 0
	})
}

// replenish spawns platforms above the screen until the minimum is met.
func (w *World) replenish() {
	for w.platforms.Len() < w.cfg.Platforms.MinCount {
		w.platforms.Add(w.spawner.Spawn(w.screenW, w.score, w.ticks))
	}
}

// Level returns the current difficulty level for display.
func (w *World) Level() float64 {
	return w.difficulty.Level(w.score, w.ticks)
}
