package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

const (
	testW = 80
	testH = 24
	eps   = 1e-9
)

func testConfig() config.SkyHopConfig {
	cfg := config.DefaultSkyHopConfig()
	cfg.Session.GameOverGraceTicks = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

// worldWith builds a world with an explicit player and platform list.
func worldWith(cfg config.SkyHopConfig, player *Player, rects ...core.RectF) *World {
	w := NewWorld(cfg, testW, testH, 1)
	w.platforms = Platforms{}
	for _, r := range rects {
		w.platforms.Add(Platform{Rect: r})
	}
	if player != nil {
		w.player = player
	}
	return w
}

// parked returns n platforms stacked at the far left, out of the player's way.
func parked(n int) []core.RectF {
	out := make([]core.RectF, n)
	for i := range out {
		out[i] = core.NewRectF(0, float64(8+2*i), 8, 1)
	}
	return out
}

func noInput() core.InputFrame { return core.NewInputFrame() }

func TestWorldInitialLayout(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, testW, testH, 1)

	if got, want := w.platforms.Len(), len(cfg.Platforms.Initial); got != want {
		t.Fatalf("initial platforms = %d, expected %d", got, want)
	}
	ground := w.Platforms()[0]
	if !ground.Ground || ground.Rect.W != testW || ground.Rect.Bottom() != testH {
		t.Errorf("first platform should be a full-width ground strip, got %+v", ground)
	}

	w.Update(noInput())
	if w.platforms.Len() != cfg.Platforms.MinCount {
		t.Errorf("first tick should top up to %d platforms, got %d", cfg.Platforms.MinCount, w.platforms.Len())
	}
}

func TestWorldFallsOntoPlatformBelow(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, testW, testH, 1)

	var landed bool
	for i := 0; i < 200 && !landed; i++ {
		landed = w.Update(noInput()).Landed
	}
	if !landed {
		t.Fatal("player never landed")
	}

	ledge := Layout(cfg.Platforms.Initial, testW, testH)[1].Rect
	p := w.Player()
	if p.Vel.Y != 0 {
		t.Errorf("Vel.Y = %f after landing, expected 0", p.Vel.Y)
	}
	if p.Pos.Y != ledge.Top() {
		t.Errorf("feet at %f, expected ledge top %f", p.Pos.Y, ledge.Top())
	}
	if w.platforms.Len() != 6 {
		t.Errorf("platforms = %d, expected 6", w.platforms.Len())
	}
}

func TestWorldLandingSnapsToTop(t *testing.T) {
	cfg := testConfig()
	player := NewPlayer(40, 15, 3, 2)
	player.Vel.Y = 0.5
	plat := core.NewRectF(30, 15.5, 20, 1)
	w := worldWith(cfg, player, append([]core.RectF{plat}, parked(5)...)...)

	report := w.Update(noInput())

	if !report.Landed {
		t.Fatal("expected a landing")
	}
	if player.Pos.Y != plat.Top() {
		t.Errorf("feet at %f, expected %f", player.Pos.Y, plat.Top())
	}
	if player.Vel.Y != 0 {
		t.Errorf("Vel.Y = %f, expected 0", player.Vel.Y)
	}
}

func TestWorldRisingPlayerPassesThrough(t *testing.T) {
	cfg := testConfig()
	player := NewPlayer(40, 15, 3, 2)
	player.Vel.Y = -0.5
	plat := core.NewRectF(30, 13.5, 20, 1) // overlaps the player's head
	w := worldWith(cfg, player, append([]core.RectF{plat}, parked(5)...)...)

	report := w.Update(noInput())

	if report.Landed {
		t.Error("a rising player must not land")
	}
	if player.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %f, expected the player to still be rising", player.Vel.Y)
	}
	if player.Pos.Y == plat.Top() {
		t.Error("a rising player must not snap to the platform")
	}
}

func TestWorldLandingTieBreak(t *testing.T) {
	cfg := testConfig()
	player := NewPlayer(40, 15, 3, 2)
	player.Vel.Y = 0.5
	first := core.NewRectF(30, 15.5, 20, 1)
	second := core.NewRectF(35, 15.2, 20, 1)
	w := worldWith(cfg, player, append([]core.RectF{first, second}, parked(4)...)...)

	w.Update(noInput())

	if player.Pos.Y != first.Top() {
		t.Errorf("feet at %f, expected the first inserted platform's top %f", player.Pos.Y, first.Top())
	}
}

func TestWorldScrollRecyclesPlatforms(t *testing.T) {
	cfg := testConfig()
	player := NewPlayer(40, 7, 3, 2)
	player.Vel.Y = -0.5

	low1 := core.NewRectF(10, 23.6, 10, 1)
	low2 := core.NewRectF(50, 23.7, 10, 1)
	keep := parked(4)
	w := worldWith(cfg, player, append([]core.RectF{low1, low2}, keep...)...)

	report := w.Update(noInput())

	shift := 0.5 - cfg.Physics.Gravity // |Vel.Y| after this tick's gravity
	if report.Recycled != 2 {
		t.Errorf("Recycled = %d, expected 2", report.Recycled)
	}
	if w.Score() != 2*cfg.Platforms.RecyclePoints {
		t.Errorf("score = %d, expected %d", w.Score(), 2*cfg.Platforms.RecyclePoints)
	}
	for i, r := range keep {
		got := w.Platforms()[i].Rect.Y
		if math.Abs(got-(r.Y+shift)) > eps {
			t.Errorf("platform %d at y=%f, expected %f", i, got, r.Y+shift)
		}
	}
	// Player was pushed back down by the same amount
	wantY := 7 - shift + cfg.Physics.Gravity/2 + shift
	if math.Abs(player.Pos.Y-wantY) > eps {
		t.Errorf("player feet at %f, expected %f", player.Pos.Y, wantY)
	}
	if w.platforms.Len() != cfg.Platforms.MinCount {
		t.Errorf("platforms = %d, expected replenished to %d", w.platforms.Len(), cfg.Platforms.MinCount)
	}
}

func TestWorldNoScrollBelowLine(t *testing.T) {
	cfg := testConfig()
	player := NewPlayer(40, 15, 3, 2)
	player.Vel.Y = -0.5
	w := worldWith(cfg, player, parked(6)...)

	w.Update(noInput())

	if got := w.Platforms()[0].Rect.Y; got != 8 {
		t.Errorf("platforms should not move while the player is below the scroll line, y=%f", got)
	}
}

func TestWorldDeathFallShiftsUp(t *testing.T) {
	cfg := testConfig()
	player := NewPlayer(40, 26, 3, 2)
	player.Vel.Y = cfg.Physics.MaxFallSpeed

	visible := core.NewRectF(10, 0.5, 10, 1)
	leaving := core.NewRectF(50, -0.2, 10, 1)
	w := worldWith(cfg, player, append([]core.RectF{visible, leaving}, parked(4)...)...)

	report := w.Update(noInput())

	if report.Ended {
		t.Fatal("run should not end while platforms remain")
	}
	if w.Score() != 0 {
		t.Errorf("falling out must not score, got %d", w.Score())
	}
	if got := w.Platforms()[0].Rect.Y; math.Abs(got-(0.5-cfg.Physics.MaxFallSpeed)) > eps {
		t.Errorf("visible platform at y=%f, expected shifted up by the fall speed", got)
	}
	// The parked platforms follow the visible one; the leaving one is gone
	for i, want := range parked(4) {
		got := w.Platforms()[i+1].Rect
		if got.X != want.X || math.Abs(got.Y-(want.Y-cfg.Physics.MaxFallSpeed)) > eps {
			t.Errorf("platform %d = %+v, expected parked platform shifted up", i+1, got)
		}
	}
	if w.platforms.Len() != cfg.Platforms.MinCount {
		t.Errorf("platforms = %d, expected replenished to %d", w.platforms.Len(), cfg.Platforms.MinCount)
	}
}

func TestWorldDeathFallMinimumSpeed(t *testing.T) {
	cfg := testConfig()
	player := NewPlayer(40, 30, 3, 2)
	player.Vel.Y = -0.9 // rising, so the minimum applies
	plat := core.NewRectF(10, 10, 10, 1)
	w := worldWith(cfg, player, append([]core.RectF{plat}, parked(5)...)...)

	w.Update(noInput())

	if got := w.Platforms()[0].Rect.Y; math.Abs(got-(10-cfg.Scroll.DeathMin)) > eps {
		t.Errorf("platform at y=%f, expected shift by death_min %f", got, cfg.Scroll.DeathMin)
	}
}

func TestWorldEndsWhenPlatformsRunOut(t *testing.T) {
	cfg := testConfig()
	player := NewPlayer(40, 26, 3, 2)
	player.Vel.Y = cfg.Physics.MaxFallSpeed
	last := core.NewRectF(10, -0.5, 10, 1)
	w := worldWith(cfg, player, last)

	report := w.Update(noInput())

	if !report.Ended || !w.Ended() {
		t.Fatal("run should end when the last platform leaves")
	}
	if w.platforms.Len() != 0 {
		t.Errorf("an ended run must not respawn platforms, have %d", w.platforms.Len())
	}
	if again := w.Update(noInput()); !again.Ended || w.Ticks() != 1 {
		t.Error("an ended world should stay ended and stop ticking")
	}
}

func TestWorldJumpWithSupport(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.RequireSupport = true
	player := NewPlayer(40, 15, 3, 2)
	plat := core.NewRectF(30, 15, 20, 1) // feet exactly on top
	w := worldWith(cfg, player, append([]core.RectF{plat}, parked(5)...)...)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	if !w.Update(jump).Jumped {
		t.Fatal("standing player should be able to jump")
	}
	if player.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %f, expected upward after jump", player.Vel.Y)
	}

	// Mid-air: nothing underfoot
	air := worldWith(cfg, NewPlayer(40, 12, 3, 2), parked(6)...)
	if air.Update(jump).Jumped {
		t.Error("jump without support should be refused when support is required")
	}
}

// Random play must keep the tick-level guarantees on every tick.
func TestWorldInvariantsUnderRandomPlay(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.Enabled = true

	for seed := int64(1); seed <= 5; seed++ {
		w := NewWorld(cfg, testW, testH, seed)
		rng := rand.New(rand.NewSource(seed))
		prevScore := 0

		for tick := 0; tick < 5000; tick++ {
			in := core.NewInputFrame()
			switch rng.Intn(6) {
			case 0:
				in.Set(core.ActionJump)
			case 1:
				in.Set(core.ActionLeft)
			case 2:
				in.Set(core.ActionRight)
			}

			report := w.Update(in)

			if v := w.Player().Vel.Y; v > cfg.Physics.MaxFallSpeed {
				t.Fatalf("seed %d tick %d: Vel.Y %f exceeds max fall speed", seed, tick, v)
			}
			if report.Landed && w.Player().Vel.Y != 0 {
				t.Fatalf("seed %d tick %d: landed with Vel.Y %f", seed, tick, w.Player().Vel.Y)
			}
			if delta := w.Score() - prevScore; delta != report.Recycled*cfg.Platforms.RecyclePoints || delta < 0 {
				t.Fatalf("seed %d tick %d: score moved by %d with %d recycled", seed, tick, delta, report.Recycled)
			}
			prevScore = w.Score()

			if report.Ended != (w.platforms.Len() == 0) {
				t.Fatalf("seed %d tick %d: ended=%v with %d platforms", seed, tick, report.Ended, w.platforms.Len())
			}
			if report.Ended {
				break
			}
			if w.platforms.Len() < cfg.Platforms.MinCount {
				t.Fatalf("seed %d tick %d: only %d platforms after tick", seed, tick, w.platforms.Len())
			}
		}
	}
}

func TestWorldDeterminism(t *testing.T) {
	cfg := testConfig()
	run := func() (int, int, core.Vec2) {
		w := NewWorld(cfg, testW, testH, 42)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			if i%100 < 30 {
				in.Set(core.ActionRight)
			}
			if w.Update(in).Ended {
				break
			}
		}
		return w.Score(), w.Ticks(), w.Player().Pos
	}

	s1, t1, p1 := run()
	s2, t2, p2 := run()
	if s1 != s2 || t1 != t2 || p1 != p2 {
		t.Errorf("runs differ: (%d, %d, %+v) vs (%d, %d, %+v)", s1, t1, p1, s2, t2, p2)
	}
}
