// Package tilemap holds the static level the balloon flies through: the
// foreground tile grid, per-tile opacity masks, the pooled range query used by
// collision, map objects and the TMX loader that builds them.
// It has no dependencies on ebitengine or donburi.
package tilemap

import "github.com/automoto/balloon/shared/gamemath"

// TileID identifies a tile image. Loaded maps use the Tiled global tile id.
type TileID uint32

const (
	// Empty marks an unoccupied cell.
	Empty TileID = 0
	// SolidTile is a fully opaque tile with no backing image (doors).
	SolidTile TileID = 1<<32 - 1
)

// Cell addresses a grid cell. Row 0 is the bottom row of the level.
type Cell struct {
	X, Y int
}

// Grid is a fixed-size orthogonal tile layer.
type Grid struct {
	Width    int // cells
	Height   int // cells
	TileSize int // pixels per cell side
	cells    []TileID
}

func NewGrid(width, height, tileSize int) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		cells:    make([]TileID, width*height),
	}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// CellAt returns the tile in a cell. Cells outside the grid are Empty.
func (g *Grid) CellAt(x, y int) TileID {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.Width+x]
}

func (g *Grid) Occupied(x, y int) bool {
	return g.CellAt(x, y) != Empty
}

// Set stores a tile. Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, id TileID) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = id
}

func (g *Grid) Clear(x, y int) {
	g.Set(x, y, Empty)
}

// CellOf returns the cell containing a world point.
func (g *Grid) CellOf(p gamemath.Vec2) Cell {
	return Cell{X: gamemath.FloorDiv(p.X, g.TileSize), Y: gamemath.FloorDiv(p.Y, g.TileSize)}
}

// CellRect is the world footprint of a cell.
func (g *Grid) CellRect(x, y int) gamemath.Rect {
	s := float32(g.TileSize)
	return gamemath.NewRect(float32(x)*s, float32(y)*s, s, s)
}

// CellsIn lists the cells a world rect touches, clipped to the grid.
func (g *Grid) CellsIn(r gamemath.Rect) []Cell {
	x0 := gamemath.ClampInt(gamemath.FloorDiv(r.X, g.TileSize), 0, g.Width)
	y0 := gamemath.ClampInt(gamemath.FloorDiv(r.Y, g.TileSize), 0, g.Height)
	x1 := gamemath.ClampInt(gamemath.Ceil(r.Right()/float32(g.TileSize)), 0, g.Width)
	y1 := gamemath.ClampInt(gamemath.Ceil(r.Top()/float32(g.TileSize)), 0, g.Height)

	var cells []Cell
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

func (g *Grid) PixelWidth() int  { return g.Width * g.TileSize }
func (g *Grid) PixelHeight() int { return g.Height * g.TileSize }
