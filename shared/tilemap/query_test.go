package tilemap

import (
	"testing"

	"github.com/automoto/balloon/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid() *Grid {
	g := NewGrid(8, 8, 32)
	g.Set(1, 1, 5)
	g.Set(2, 1, 6)
	g.Set(1, 2, 7)
	g.Set(5, 5, 8)
	return g
}

func rectsOf(bs []Boundary) []gamemath.Rect {
	out := make([]gamemath.Rect, len(bs))
	for i, b := range bs {
		out[i] = *b.Rect
	}
	return out
}

func TestQueryReturnsOccupiedCellsInScanOrder(t *testing.T) {
	q := NewQueryCache(newTestGrid(), NewRectPool())

	got := q.Query(0, 0, 3, 3)
	require.Len(t, got, 3)

	assert.Equal(t, Cell{X: 1, Y: 1}, got[0].Cell)
	assert.Equal(t, Cell{X: 2, Y: 1}, got[1].Cell)
	assert.Equal(t, Cell{X: 1, Y: 2}, got[2].Cell)
	assert.Equal(t, TileID(5), got[0].Tile)
	assert.Equal(t, gamemath.NewRect(64, 32, 32, 32), *got[1].Rect)
}

func TestQueryCornerOrderDoesNotMatter(t *testing.T) {
	q := NewQueryCache(newTestGrid(), NewRectPool())

	forward := rectsOf(q.Query(0, 0, 3, 3))
	again := rectsOf(q.Query(0, 0, 3, 3))
	reversed := rectsOf(q.Query(3, 3, 0, 0))
	mixed := rectsOf(q.Query(3, 0, 0, 3))

	assert.Equal(t, forward, again)
	assert.Equal(t, forward, reversed)
	assert.Equal(t, forward, mixed)
}

func TestQueryReleasesPreviousBatch(t *testing.T) {
	pool := NewRectPool()
	q := NewQueryCache(newTestGrid(), pool)

	q.Query(0, 0, 3, 3)
	assert.Equal(t, 3, pool.Allocated())
	assert.Equal(t, 0, pool.Available())

	// The second query reuses the three rects and needs one more.
	got := q.Query(0, 0, 7, 7)
	assert.Len(t, got, 4)
	assert.Equal(t, 4, pool.Allocated())

	q.Query(6, 6, 7, 7)
	assert.Equal(t, 4, pool.Available())
	assert.Equal(t, 4, pool.Allocated())
}

func TestQueryOutsideGridIsEmpty(t *testing.T) {
	q := NewQueryCache(newTestGrid(), nil)
	assert.Empty(t, q.Query(-3, -3, -1, -1))
	assert.Empty(t, q.Query(100, 100, 101, 101))

	got := q.Query(-1, -1, 1, 1)
	require.Len(t, got, 1)
	assert.Equal(t, Cell{X: 1, Y: 1}, got[0].Cell)
}

func TestRebindReturnsRects(t *testing.T) {
	pool := NewRectPool()
	q := NewQueryCache(newTestGrid(), pool)
	q.Query(0, 0, 7, 7)

	q.Rebind(NewGrid(2, 2, 32))
	assert.Equal(t, 4, pool.Available())
	assert.Empty(t, q.Query(0, 0, 1, 1))
}

func TestRectPoolReuse(t *testing.T) {
	p := NewRectPool()
	a := p.Obtain()
	a.Set(1, 2, 3, 4)
	p.Free(a)
	p.Free(nil)

	b := p.Obtain()
	assert.Same(t, a, b)
	assert.Equal(t, gamemath.Rect{}, *b)
	assert.Equal(t, 1, p.Allocated())
}
