package tui

import "github.com/vovakirdan/skyhop/internal/core"

// Hold turns key presses into a held direction. Terminals send no key
// release events, only the initial press and then auto-repeat, so a press
// holds its direction for a fixed window that each repeat renews.
type Hold struct {
	window int
	dir    int
	left   int
}

// NewHold creates a tracker whose presses last window ticks.
func NewHold(window int) *Hold {
	if window < 1 {
		window = 1
	}
	return &Hold{window: window}
}

// Press holds dir (-1 left, +1 right). Pressing the opposite direction
// replaces the current one at once.
func (h *Hold) Press(dir int) {
	h.dir = dir
	h.left = h.window
}

// Release drops the held direction.
func (h *Hold) Release() {
	h.dir = 0
	h.left = 0
}

// Dir returns the direction currently held without advancing time.
func (h *Hold) Dir() int {
	return h.dir
}

// Tick returns the direction for this tick and counts the window down.
func (h *Hold) Tick() int {
	dir := h.dir
	if h.left > 0 {
		h.left--
		if h.left == 0 {
			h.dir = 0
		}
	}
	return dir
}

// Apply marks the held direction on frame and advances one tick.
func (h *Hold) Apply(frame *core.InputFrame) {
	switch h.Tick() {
	case -1:
		frame.Set(core.ActionLeft)
	case 1:
		frame.Set(core.ActionRight)
	}
}
