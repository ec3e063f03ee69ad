package tilemap

import (
	"github.com/automoto/balloon/shared/gamemath"
	"go.uber.org/zap"
)

// Map is a parsed level: collision grid, decoration, objects and the tile
// image source used to build masks.
type Map struct {
	Name    string
	Grid    *Grid
	Decor   *Grid // background layer, never collides
	Objects []Object
	Spawn   gamemath.Vec2
	Images  TileImageSource
}

// Level is the runtime view of a Map that the balloon physics queries each
// tick. It owns the mask cache, the range query and the wind field.
type Level struct {
	*Map
	Masks *MaskCache
	Wind  *WindField
	query *QueryCache
}

// NewLevel prepares a map for simulation. The pool may be shared across
// level reloads; Blocker objects are stamped into the grid as SolidTile.
func NewLevel(m *Map, pool *RectPool, wind WindSettings, log *zap.Logger) *Level {
	for _, o := range m.Objects {
		if !o.Has(Blocker) {
			continue
		}
		for _, c := range m.Grid.CellsIn(o.Bounds) {
			m.Grid.Set(c.X, c.Y, SolidTile)
		}
	}

	return &Level{
		Map:   m,
		Masks: NewMaskCache(m.Images, m.Grid.TileSize, log),
		Wind:  NewWindField(m.Grid, m.Objects, wind),
		query: NewQueryCache(m.Grid, pool),
	}
}

func (l *Level) Query(startX, startY, endX, endY int) []Boundary {
	return l.query.Query(startX, startY, endX, endY)
}

func (l *Level) Mask(id TileID) *OpacityMask {
	return l.Masks.Mask(id)
}

func (l *Level) WindAt(p gamemath.Vec2) gamemath.Vec2 {
	return l.Wind.Force(p)
}

// Open clears the cells under a Blocker object and lets wind through.
func (l *Level) Open(o Object) {
	for _, c := range l.Grid.CellsIn(o.Bounds) {
		if l.Grid.CellAt(c.X, c.Y) == SolidTile {
			l.Grid.Clear(c.X, c.Y)
		}
	}
	l.Wind.MarkDirty()
}

// Release returns pooled rects and drops decoded masks before the level is
// thrown away.
func (l *Level) Release() {
	l.query.Rebind(l.Grid)
	l.Masks.Invalidate()
}
