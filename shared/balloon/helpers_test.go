package balloon

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/tilemap"
)

// newTestLevel builds an 8x8 level with SolidTile at each given cell.
func newTestLevel(t *testing.T, solid ...tilemap.Cell) *tilemap.Level {
	t.Helper()
	grid := tilemap.NewGrid(8, 8, 32)
	for _, c := range solid {
		grid.Set(c.X, c.Y, tilemap.SolidTile)
	}
	return tilemap.NewLevel(&tilemap.Map{Grid: grid}, tilemap.NewRectPool(), tilemap.WindSettings{}, nil)
}

// windLevel overrides the force field of a level with a constant.
type windLevel struct {
	*tilemap.Level
	wind gamemath.Vec2
}

func (w windLevel) WindAt(gamemath.Vec2) gamemath.Vec2 { return w.wind }

// masks serves fixed masks by tile id.
type masks map[tilemap.TileID]*tilemap.OpacityMask

func (m masks) Mask(id tilemap.TileID) *tilemap.OpacityMask { return m[id] }

// topHalfMask is a 32px tile whose upper half (in world space) is solid.
func topHalfMask() *tilemap.OpacityMask {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.NRGBA{A: 255})
		}
	}
	return tilemap.NewOpacityMask(img, 32)
}

func boundary(x, y float32, id tilemap.TileID) tilemap.Boundary {
	r := gamemath.NewRect(x, y, 32, 32)
	return tilemap.Boundary{Rect: &r, Tile: id}
}

func testClips() ClipTable {
	var clips ClipTable
	for s := State(0); s < StateCount; s++ {
		clips[s] = Clip{
			Name:          "to_" + s.String(),
			Frames:        4,
			FrameDuration: 0.125,
			Texture:       s.String(),
		}
	}
	return clips
}
