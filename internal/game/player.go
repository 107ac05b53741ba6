package game

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Player is the jumping sprite. Pos is the midbottom anchor: X is the
// horizontal centre and Y is where the feet are.
type Player struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Acc  core.Vec2
	W, H float64
	Gone bool // Scrolled off the top during the death fall
}

// NewPlayer places a resting player with its feet at (x, y).
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Pos: core.Vec2{X: x, Y: y},
		W:   w,
		H:   h,
	}
}

// Rect returns the player's hitbox derived from the current position.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.Pos.X-p.W/2, p.Pos.Y-p.H, p.W, p.H)
}

// Update advances the player one tick. axis is -1 (left), 0 or +1 (right).
func (p *Player) Update(phys config.Physics, axis int, screenW float64) {
	p.Acc = core.Vec2{X: float64(axis) * phys.Accel, Y: phys.Gravity}

	// Friction decays horizontal speed toward zero
	p.Acc.X -= p.Vel.X * phys.Friction

	p.Vel = p.Vel.Add(p.Acc)
	if p.Vel.Y > phys.MaxFallSpeed {
		p.Vel.Y = phys.MaxFallSpeed
	}

	p.Pos = p.Pos.Add(p.Vel).Add(p.Acc.Scale(0.5))

	// Leaving one edge re-enters at the other
	if p.Pos.X > screenW {
		p.Pos.X = 0
	} else if p.Pos.X < 0 {
		p.Pos.X = screenW
	}
}

// CanJump reports whether a jump would be accepted now. A jump is refused
// while the player rises faster than the threshold, and, if the physics
// require it, while nothing is underfoot.
func (p *Player) CanJump(phys config.Physics, supported bool) bool {
	if p.Vel.Y < -phys.JumpThreshold {
		return false
	}
	return supported || !phys.RequireSupport
}

// Jump applies the jump impulse if allowed and reports whether it did.
func (p *Player) Jump(phys config.Physics, supported bool) bool {
	if !p.CanJump(phys, supported) {
		return false
	}
	p.Vel.Y = phys.JumpImpulse
	return true
}
