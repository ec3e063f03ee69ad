package balloon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		in   string
		want State
		ok   bool
	}{
		{"LIFT", Lift, true},
		{"heavy", Heavy, true},
		{"Buzzsaw", Buzzsaw, true},
		{"dead", Dead, true},
		{"balloon", Normal, false},
		{"", Normal, false},
	}
	for _, tt := range tests {
		got, ok := ParseState(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStateClasses(t *testing.T) {
	for _, s := range SteadyStates {
		assert.True(t, s.Steady(), s.String())
		assert.False(t, s.Terminal(), s.String())
	}
	for _, s := range []State{Pop, Dead} {
		assert.False(t, s.Steady(), s.String())
		assert.True(t, s.Terminal(), s.String())
	}
	assert.Equal(t, "unknown", StateCount.String())
}

func TestClipKeyFrame(t *testing.T) {
	c := Clip{Frames: 4, FrameDuration: 0.125}
	assert.Equal(t, float32(0.5), c.Duration())
	assert.Equal(t, 0, c.KeyFrame(-1))
	assert.Equal(t, 0, c.KeyFrame(0.1))
	assert.Equal(t, 1, c.KeyFrame(0.125))
	assert.Equal(t, 3, c.KeyFrame(0.5))
	assert.Equal(t, 3, c.KeyFrame(9))
	assert.Equal(t, 0, Clip{Frames: 1}.KeyFrame(3))
}
