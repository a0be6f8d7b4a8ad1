package animations

import (
	"time"

	"github.com/automoto/pixelrpg/timing"
)

// Animation cycles a frame index over Frames on its own cadence.
type Animation struct {
	Frames int
	frame  int
	clock  timing.Cadence
}

// Update advances the animation by dt and reports whether the frame changed.
func (a *Animation) Update(dt time.Duration) bool {
	fires := a.clock.Advance(dt)
	if fires == 0 || a.Frames <= 0 {
		return false
	}
	prev := a.frame
	for i := 0; i < fires; i++ {
		a.frame = (a.frame + 1) % a.Frames
	}
	return a.frame != prev || a.Frames == 1
}

func (a *Animation) Frame() int {
	return a.frame
}

func NewAnimation(frames int, interval time.Duration) *Animation {
	return &Animation{
		Frames: frames,
		clock:  timing.NewCadence(interval),
	}
}
