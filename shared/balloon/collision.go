package balloon

import (
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/tilemap"
)

// FrameSize is the side of the balloon's square bounding box in pixels.
const FrameSize = 32

// Scratch is the per-actor collision buffer. IntersectMap holds one flag per
// pixel of the bounding box, row 0 at the bottom. It is all false between
// calls to Resolve.
type Scratch struct {
	IntersectMap [FrameSize * FrameSize]bool
	Mass         gamemath.Vec2
}

func (s *Scratch) Clear() {
	s.IntersectMap = [FrameSize * FrameSize]bool{}
	s.Mass = gamemath.Vec2{}
}

// Empty reports whether no pixel is flagged.
func (s *Scratch) Empty() bool {
	for _, solid := range s.IntersectMap {
		if solid {
			return false
		}
	}
	return true
}

// MaskSource supplies the opacity mask of a tile. A nil mask means the tile
// does not contribute to collisions.
type MaskSource interface {
	Mask(id tilemap.TileID) *tilemap.OpacityMask
}

// Resolver performs the pixel-accurate balloon vs tile test.
type Resolver struct {
	Masks  MaskSource
	Bounce float32
}

// Resolve tests bounds against the candidate tiles. On a hit the returned
// velocity points from the solid pixels toward the bounding box centre with
// Bounce times the speed of vel, and the caller must reject the move.
// Without a hit vel is returned unchanged. The scratch is cleared on return.
func (r Resolver) Resolve(s *Scratch, bounds gamemath.Rect, vel gamemath.Vec2, candidates []tilemap.Boundary) (bool, gamemath.Vec2) {
	defer s.Clear()

	for _, b := range candidates {
		if b.Rect == nil {
			continue
		}
		overlap, ok := bounds.Intersection(*b.Rect)
		if !ok {
			continue
		}
		mask := r.Masks.Mask(b.Tile)
		if mask == nil {
			continue
		}
		s.mark(bounds, *b.Rect, overlap, mask)
	}

	collided := false
	half := FrameSize / 2
	for i, solid := range s.IntersectMap {
		if !solid {
			continue
		}
		collided = true
		s.Mass = s.Mass.Add(gamemath.Vec2{
			X: float32(half - i%FrameSize),
			Y: float32(half - i/FrameSize),
		})
	}
	if !collided {
		return false, vel
	}

	dir := s.Mass.Normalize()
	return true, dir.Scale(vel.Len() * r.Bounce)
}

// mark ORs the solid pixels of one tile overlap into the intersect map.
// Pixels are sampled at their centres; anything that falls outside the
// actor frame or the tile is skipped.
func (s *Scratch) mark(bounds, tile, overlap gamemath.Rect, mask *tilemap.OpacityMask) {
	c0 := gamemath.ClampInt(gamemath.Floor(overlap.X-bounds.X), 0, FrameSize)
	c1 := gamemath.ClampInt(gamemath.Ceil(overlap.Right()-bounds.X), 0, FrameSize)
	r0 := gamemath.ClampInt(gamemath.Floor(overlap.Y-bounds.Y), 0, FrameSize)
	r1 := gamemath.ClampInt(gamemath.Ceil(overlap.Top()-bounds.Y), 0, FrameSize)

	for row := r0; row < r1; row++ {
		ty := gamemath.Floor(bounds.Y + float32(row) + 0.5 - tile.Y)
		if ty < 0 || ty >= mask.Size {
			continue
		}
		for col := c0; col < c1; col++ {
			tx := gamemath.Floor(bounds.X + float32(col) + 0.5 - tile.X)
			if tx < 0 || tx >= mask.Size {
				continue
			}
			index := row*FrameSize + col
			if index < 0 || index >= len(s.IntersectMap) {
				continue
			}
			if mask.SolidLocal(tx, ty) {
				s.IntersectMap[index] = true
			}
		}
	}
}
