package tilemap

import "github.com/automoto/balloon/shared/gamemath"

// Boundary is one occupied grid cell returned by a query. Rect is borrowed
// from the query's pool and is only valid until the next query.
type Boundary struct {
	Rect *gamemath.Rect
	Cell Cell
	Tile TileID
}

// QueryCache answers cell range queries with a reused output list.
// It owns a single result slice, so one collision pass at a time.
type QueryCache struct {
	grid  *Grid
	pool  *RectPool
	tiles []Boundary
}

func NewQueryCache(grid *Grid, pool *RectPool) *QueryCache {
	if pool == nil {
		pool = NewRectPool()
	}
	return &QueryCache{grid: grid, pool: pool}
}

// Query returns a boundary for every occupied cell in the inclusive range
// between the two corners, in ascending (y, x) order. The corners may be
// given in any order.
func (q *QueryCache) Query(startX, startY, endX, endY int) []Boundary {
	if startX > endX {
		startX, endX = endX, startX
	}
	if startY > endY {
		startY, endY = endY, startY
	}

	q.release()

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			id := q.grid.CellAt(x, y)
			if id == Empty {
				continue
			}
			rect := q.pool.Obtain()
			*rect = q.grid.CellRect(x, y)
			q.tiles = append(q.tiles, Boundary{Rect: rect, Cell: Cell{X: x, Y: y}, Tile: id})
		}
	}
	return q.tiles
}

// Rebind points the cache at another grid, returning borrowed rects first.
func (q *QueryCache) Rebind(grid *Grid) {
	q.release()
	q.grid = grid
}

func (q *QueryCache) release() {
	for i := range q.tiles {
		q.pool.Free(q.tiles[i].Rect)
		q.tiles[i] = Boundary{}
	}
	q.tiles = q.tiles[:0]
}
