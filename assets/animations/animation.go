// Package animations plays sprite sheet clips one game tick at a time.
package animations

import (
	"math"

	"github.com/automoto/balloon/shared/balloon"
)

type Animation struct {
	Frames           int
	TicksPerFrame    int
	FreezeOnComplete bool // If true, stay on last frame instead of looping
	Looped           bool
	tick             int
	frame            int
}

func (a *Animation) Update() {
	if a.Frames <= 1 {
		return
	}
	a.tick++
	if a.tick < a.TicksPerFrame {
		return
	}
	a.tick = 0
	a.frame++
	if a.frame >= a.Frames {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Frames - 1
		} else {
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.tick = 0
	a.Looped = false
}

func NewAnimation(frames, ticksPerFrame int, freeze bool) *Animation {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{
		Frames:           frames,
		TicksPerFrame:    ticksPerFrame,
		FreezeOnComplete: freeze,
	}
}

// FromClip plays a transition clip at tps ticks per second, holding the last
// frame at the end.
func FromClip(c balloon.Clip, tps int) *Animation {
	ticks := int(math.Round(float64(c.FrameDuration) * float64(tps)))
	return NewAnimation(c.Frames, ticks, true)
}
