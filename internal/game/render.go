package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	GroundChar   = '█'
)

// Player sprite rows while rising and while falling or standing.
var (
	spriteRising  = [2]string{`\o/`, `/ \`}
	spriteFalling = [2]string{` o `, `/|\`}
)

// Render draws the current phase to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		drawMessageBox(dst, "TERMINAL TOO SMALL",
			fmt.Sprintf("Need %dx%d, have %dx%d", g.cfg.Session.MinScreenW, g.cfg.Session.MinScreenH, dst.Width(), dst.Height()))
		return
	}

	s := g.session
	switch s.Phase() {
	case PhaseStart:
		g.drawStart(dst)
	case PhasePlaying:
		g.drawWorld(dst)
		if s.Paused() {
			drawMessageBox(dst, "PAUSED", "Press P to resume")
		}
	case PhaseGameOver:
		g.drawGameOver(dst)
	}
}

func (g *Game) drawStart(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/4, g.Title(), core.ColorBrightGreen)
	dst.DrawTextCentered(h/2, "←/→ move, space jump, p pause, q quit", core.ColorDefault)
	dst.DrawTextCentered(h/2+2, fmt.Sprintf("High Score: %d", g.session.HighScore()), core.ColorYellow)
	dst.DrawTextCentered(h*3/4, "Press any key to start", core.ColorGray)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	s := g.session
	h := dst.Height()
	dst.DrawTextCentered(h/4, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Score: %d", s.Score()), core.ColorDefault)
	if s.NewHighScore() {
		dst.DrawTextCentered(h/2+2, "NEW HIGH SCORE!", core.ColorYellow)
	} else {
		dst.DrawTextCentered(h/2+2, fmt.Sprintf("High Score: %d", s.HighScore()), core.ColorDefault)
	}
	dst.DrawTextCentered(h*3/4, "Press a key to play again", core.ColorGray)
}

func (g *Game) drawWorld(dst *core.Screen) {
	w := g.session.World()

	for _, p := range w.Platforms() {
		r := p.Rect.Cells()
		if p.Ground {
			dst.DrawRect(r, GroundChar, core.ColorGray)
			continue
		}
		dst.DrawRect(r, PlatformChar, core.ColorGreen)
	}

	if p := w.Player(); !p.Gone {
		drawPlayer(dst, p)
	}

	// HUD
	score := fmt.Sprintf(" %d ", w.Score())
	dst.DrawTextCentered(0, score, core.ColorBrightWhite)
	best := fmt.Sprintf(" Best: %d ", g.session.HighScore())
	dst.DrawTextColor(dst.Width()-len(best)-1, 0, best, core.ColorYellow)
	if w.difficulty.IsEnabled() {
		dst.DrawTextColor(1, 0, fmt.Sprintf(" Lvl: %.0f%% ", w.Level()*100), core.ColorCyan)
	}
}

// drawPlayer draws the sprite over the player's hitbox, anchored at the feet.
func drawPlayer(dst *core.Screen, p *Player) {
	sprite := spriteFalling
	if p.Vel.Y < 0 {
		sprite = spriteRising
	}

	left := int(math.Round(p.Pos.X - float64(len(sprite[0]))/2))
	bottom := int(math.Floor(p.Pos.Y)) - 1
	top := bottom - len(sprite) + 1
	for row, line := range sprite {
		for i, ch := range line {
			if ch == ' ' {
				continue
			}
			dst.SetColor(left+i, top+row, ch, core.ColorYellow)
		}
	}
}

// drawMessageBox draws a message box in the center of the screen.
func drawMessageBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColor(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorDefault)
}
