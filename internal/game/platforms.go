package game

import (
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Platform is a ledge the player can land on. Its size is fixed at creation.
type Platform struct {
	Rect   core.RectF
	Ground bool // Part of the starting floor
}

// Platforms holds the live platforms in insertion order. Iteration order is
// the landing tie-break: the first intersecting platform wins.
type Platforms struct {
	items []Platform
}

// Add appends a platform.
func (ps *Platforms) Add(p Platform) {
	ps.items = append(ps.items, p)
}

// Len returns the number of live platforms.
func (ps *Platforms) Len() int {
	return len(ps.items)
}

// All returns the live platforms. Callers must not modify the slice.
func (ps *Platforms) All() []Platform {
	return ps.items
}

// Shift moves every platform vertically by dy.
func (ps *Platforms) Shift(dy float64) {
	for i := range ps.items {
		ps.items[i].Rect.Y += dy
	}
}

// FirstHit returns the first platform, in insertion order, that overlaps r.
func (ps *Platforms) FirstHit(r core.RectF) (Platform, bool) {
	for _, p := range ps.items {
		if p.Rect.Intersects(r) {
			return p, true
		}
	}
	return Platform{}, false
}

// RemoveIf drops every platform matching the predicate and returns how many
// were removed. The check runs over the whole collection before it is
// rebuilt, so the predicate never sees a half-filtered slice.
func (ps *Platforms) RemoveIf(drop func(Platform) bool) int {
	kept := ps.items[:0]
	removed := 0
	for _, p := range ps.items {
		if drop(p) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	// Zero the tail so dropped platforms are not retained by the backing array
	for i := len(kept); i < len(ps.items); i++ {
		ps.items[i] = Platform{}
	}
	ps.items = kept
	return removed
}

// Layout builds the starting platforms for the given screen size.
func Layout(specs []config.PlatformSpec, screenW, screenH int) []Platform {
	out := make([]Platform, 0, len(specs))
	for _, spec := range specs {
		w := spec.W
		if w <= 0 || w > screenW {
			w = screenW
		}
		h := max(spec.H, 1)

		x := int(spec.X * float64(screenW))
		x = core.Clamp(x, 0, screenW-w)
		y := int(spec.Y * float64(screenH))
		y = core.Clamp(y, 0, screenH-h)

		out = append(out, Platform{
			Rect:   core.NewRectF(float64(x), float64(y), float64(w), float64(h)),
			Ground: w == screenW,
		})
	}
	return out
}

// Spawner generates replacement platforms above the visible screen.
type Spawner struct {
	rng        *rand.Rand
	cfg        config.PlatformsConfig
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner with its own seeded random source.
func NewSpawner(seed int64, cfg config.PlatformsConfig, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
		difficulty: diff,
	}
}

// Spawn creates one platform with a random width, an x that keeps it on
// screen, and a y inside the spawn band above the top edge.
func (s *Spawner) Spawn(screenW, score, ticks int) Platform {
	width := s.cfg.MinWidth + s.rng.Intn(s.cfg.MaxWidth-s.cfg.MinWidth)
	if s.difficulty != nil {
		width = s.difficulty.PlatformWidth(width, score, ticks)
	}
	if width >= screenW {
		width = screenW - 1
	}

	x := 0
	if span := screenW - width; span > 0 {
		x = s.rng.Intn(span)
	}
	y := s.cfg.SpawnMinY + s.rng.Intn(s.cfg.SpawnMaxY-s.cfg.SpawnMinY)

	return Platform{
		Rect: core.NewRectF(float64(x), float64(y), float64(width), float64(s.cfg.Height)),
	}
}
