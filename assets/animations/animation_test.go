package animations

import (
	"testing"

	"github.com/automoto/balloon/shared/balloon"
	"github.com/stretchr/testify/assert"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(3, 2, false)
	var frames []int
	for i := 0; i < 7; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0, 0}, frames)
	assert.True(t, a.Looped)

	a.Restart()
	assert.Zero(t, a.Frame())
	assert.False(t, a.Looped)
}

func TestAnimationFreezes(t *testing.T) {
	a := FromClip(balloon.Clip{Frames: 4, FrameDuration: 0.05}, 60)
	assert.Equal(t, 3, a.TicksPerFrame)
	for i := 0; i < 40; i++ {
		a.Update()
	}
	assert.Equal(t, 3, a.Frame())
	assert.True(t, a.Looped)
}

func TestSingleFrameNeverAdvances(t *testing.T) {
	a := NewAnimation(1, 0, false)
	a.Update()
	a.Update()
	assert.Zero(t, a.Frame())
	assert.False(t, a.Looped)
}
