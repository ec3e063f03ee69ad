package tilemap

import "github.com/automoto/balloon/shared/gamemath"

// WindSettings tunes fan wind.
type WindSettings struct {
	Force float32 // acceleration at the fan mouth, px/s²
	Reach int     // cells
}

type windZone struct {
	area   gamemath.Rect
	origin gamemath.Vec2
	dir    gamemath.Vec2
	length float32
}

// WindField is the combined push of all fans. It is rebuilt lazily after
// MarkDirty, e.g. when a door opens and a fan can blow further.
type WindField struct {
	grid     *Grid
	fans     []Object
	settings WindSettings
	zones    []windZone
	dirty    bool
}

func NewWindField(grid *Grid, objects []Object, settings WindSettings) *WindField {
	return &WindField{
		grid:     grid,
		fans:     ObjectsWith(objects, ForceField),
		settings: settings,
		dirty:    true,
	}
}

func (w *WindField) MarkDirty() { w.dirty = true }

// Force returns the wind acceleration at p.
func (w *WindField) Force(p gamemath.Vec2) gamemath.Vec2 {
	if w == nil || len(w.fans) == 0 {
		return gamemath.Vec2{}
	}
	if w.dirty {
		w.rebuild()
	}

	var total gamemath.Vec2
	for _, z := range w.zones {
		if !z.area.Contains(p) {
			continue
		}
		d := p.Sub(z.origin)
		along := d.X*z.dir.X + d.Y*z.dir.Y
		falloff := 1 - along/z.length
		if falloff <= 0 {
			continue
		}
		total = total.Add(z.dir.Scale(w.settings.Force * falloff))
	}
	return total
}

func (w *WindField) rebuild() {
	w.zones = w.zones[:0]
	size := float32(w.grid.TileSize)
	for _, fan := range w.fans {
		dir := fan.Facing()
		if dir.IsZero() {
			continue
		}

		// Walk cell by cell from the fan mouth until a solid cell or the reach.
		start := fan.Bounds
		mouth := gamemath.Vec2{
			X: start.Center().X + dir.X*start.W/2,
			Y: start.Center().Y + dir.Y*start.H/2,
		}
		steps := 0
		for steps < w.settings.Reach {
			probe := mouth.Add(dir.Scale(size * (float32(steps) + 0.5)))
			c := w.grid.CellOf(probe)
			if w.grid.Occupied(c.X, c.Y) {
				break
			}
			steps++
		}
		if steps == 0 {
			continue
		}

		length := size * float32(steps)
		var area gamemath.Rect
		switch {
		case dir.X > 0:
			area = gamemath.NewRect(start.Right(), start.Y, length, start.H)
		case dir.X < 0:
			area = gamemath.NewRect(start.X-length, start.Y, length, start.H)
		case dir.Y > 0:
			area = gamemath.NewRect(start.X, start.Top(), start.W, length)
		default:
			area = gamemath.NewRect(start.X, start.Y-length, start.W, length)
		}
		w.zones = append(w.zones, windZone{area: area, origin: mouth, dir: dir, length: length})
	}
	w.dirty = false
}
