package tilemap

import (
	"testing"

	"github.com/automoto/balloon/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestWindFieldBlowsUntilWall(t *testing.T) {
	g := NewGrid(10, 3, 32)
	g.Set(6, 0, 1)
	fan := NewObject(1, KindFan, gamemath.NewRect(0, 0, 32, 32))
	w := NewWindField(g, []Object{fan}, WindSettings{Force: 100, Reach: 8})

	near := w.Force(gamemath.Vec2{X: 40, Y: 16})
	assert.Greater(t, near.X, float32(80))
	assert.Zero(t, near.Y)

	// The wall at cell 6 stops the wind; cells 1..5 are in reach.
	assert.Greater(t, w.Force(gamemath.Vec2{X: 180, Y: 16}).X, float32(0))
	assert.Zero(t, w.Force(gamemath.Vec2{X: 200, Y: 16}).X)
	assert.Zero(t, w.Force(gamemath.Vec2{X: 40, Y: 48}).X)

	g.Clear(6, 0)
	w.MarkDirty()
	assert.Greater(t, w.Force(gamemath.Vec2{X: 200, Y: 16}).X, float32(0))
}

func TestWindFieldWithoutFans(t *testing.T) {
	w := NewWindField(NewGrid(2, 2, 32), nil, WindSettings{Force: 100, Reach: 4})
	assert.Equal(t, gamemath.Vec2{}, w.Force(gamemath.Vec2{X: 1, Y: 1}))

	var nilField *WindField
	assert.Equal(t, gamemath.Vec2{}, nilField.Force(gamemath.Vec2{}))
}
