package tilemap

import (
	"testing"

	"github.com/automoto/balloon/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(4, 3, 32)
	g.Set(3, 2, 9)
	g.Set(4, 0, 9)
	g.Set(-1, 0, 9)

	assert.True(t, g.Occupied(3, 2))
	assert.Equal(t, Empty, g.CellAt(4, 0))
	assert.Equal(t, Empty, g.CellAt(-1, 0))
	assert.Equal(t, 128, g.PixelWidth())
	assert.Equal(t, 96, g.PixelHeight())

	g.Clear(3, 2)
	assert.False(t, g.Occupied(3, 2))
}

func TestGridCellOf(t *testing.T) {
	g := NewGrid(4, 4, 32)
	assert.Equal(t, Cell{X: 3, Y: 0}, g.CellOf(gamemath.Vec2{X: 100, Y: 31}))
	assert.Equal(t, Cell{X: -1, Y: 1}, g.CellOf(gamemath.Vec2{X: -2, Y: 32}))
}

func TestGridCellsIn(t *testing.T) {
	g := NewGrid(4, 4, 32)
	cells := g.CellsIn(gamemath.NewRect(16, 0, 32, 64))
	assert.ElementsMatch(t, []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, cells)

	assert.Empty(t, g.CellsIn(gamemath.NewRect(-64, -64, 32, 32)))
}
