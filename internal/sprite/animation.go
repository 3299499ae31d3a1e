package sprite

import "image"

// Animation cycles through an ordered set of frames while its owner moves and
// snaps back to the first frame when it stops.
type Animation struct {
	frames   []image.Image
	index    int
	progress float64 // Accumulates rate per moving tick; a full unit advances one frame
	rate     float64
}

// NewAnimation creates an animation over frames advancing by rate per moving
// tick. frames must not be empty.
func NewAnimation(frames []image.Image, rate float64) *Animation {
	if len(frames) == 0 {
		panic("sprite: animation needs at least one frame")
	}
	return &Animation{frames: frames, rate: rate}
}

// Update advances the animation for one tick.
// A stationary owner shows the idle pose (frame 0) with no stored progress.
func (a *Animation) Update(moved bool) {
	if !moved {
		a.progress = 0
		a.index = 0
		return
	}

	a.progress += a.rate
	if a.progress >= 1 {
		a.index = (a.index + 1) % len(a.frames)
		a.progress = 0
	}
}

// Frame returns the active frame image.
func (a *Animation) Frame() image.Image {
	return a.frames[a.index]
}

// Index returns the active frame index, always in [0, Len()).
func (a *Animation) Index() int {
	return a.index
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// Progress returns the sub-frame accumulator.
func (a *Animation) Progress() float64 {
	return a.progress
}
