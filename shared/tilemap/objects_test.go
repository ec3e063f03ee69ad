package tilemap

import (
	"testing"

	"github.com/automoto/balloon/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		kind ObjectKind
		has  []Capability
		not  []Capability
	}{
		{KindSpikes, []Capability{Hazard}, []Capability{Goal, Cuttable}},
		{KindRope, []Capability{Cuttable, TriggerSource}, []Capability{Hazard}},
		{KindDoor, []Capability{Trigger, Blocker}, []Capability{Cuttable}},
		{KindFan, []Capability{ForceField}, []Capability{Hazard}},
		{KindExit, []Capability{Goal}, []Capability{Hazard, Trigger}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			o := NewObject(1, tt.kind, gamemath.NewRect(0, 0, 32, 32))
			for _, c := range tt.has {
				assert.True(t, o.Has(c))
			}
			for _, c := range tt.not {
				assert.False(t, o.Has(c))
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("rope")
	assert.True(t, ok)
	assert.Equal(t, KindRope, k)

	_, ok = ParseKind("cloud")
	assert.False(t, ok)
	_, ok = ParseKind("unknown")
	assert.False(t, ok)
}

func TestFacing(t *testing.T) {
	o := NewObject(1, KindFan, gamemath.Rect{})
	assert.Equal(t, gamemath.Vec2{X: 1, Y: 0}, o.Facing())

	o.Rotation = 90
	assert.Equal(t, gamemath.Vec2{X: 0, Y: 1}, o.Facing())

	o.Rotation = 0
	o.FlipX = true
	assert.Equal(t, gamemath.Vec2{X: -1, Y: 0}, o.Facing())
}
