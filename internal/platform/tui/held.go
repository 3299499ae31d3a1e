package tui

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// heldKeys emulates key-up events, which terminals never send. A direction
// stays held for a fixed number of ticks after its last press, and the
// terminal's auto-repeat keeps refreshing it while the key is down.
type heldKeys struct {
	hold      int
	remaining map[core.Action]int
}

// newHeldKeys converts a hold window into whole ticks at tickRate, never
// less than one tick.
func newHeldKeys(window time.Duration, tickRate int) *heldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	hold := int(math.Ceil(window.Seconds()*float64(tickRate) - 1e-9))
	return &heldKeys{
		hold:      max(hold, 1),
		remaining: make(map[core.Action]int),
	}
}

// press marks a as held for the full window.
func (h *heldKeys) press(a core.Action) {
	h.remaining[a] = h.hold
}

// apply sets every held action on frame.
func (h *heldKeys) apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			frame.Set(a)
		}
	}
}

// tick ages every held action by one tick.
func (h *heldKeys) tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}
