package tilemap

import (
	"fmt"
	"image"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// OpacityMask is the solid/empty state of every pixel of one tile image,
// stored in image space (row 0 is the top row of the image).
type OpacityMask struct {
	Size  int
	solid []bool
}

// NewOpacityMask samples the alpha channel of img. Images whose bounds are
// not size×size are scaled with nearest neighbour first.
func NewOpacityMask(img image.Image, size int) *OpacityMask {
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img, b = dst, dst.Bounds()
	}

	m := &OpacityMask{Size: size, solid: make([]bool, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.solid[y*size+x] = a != 0
		}
	}
	return m
}

// FullMask is a mask with every pixel solid.
func FullMask(size int) *OpacityMask {
	m := &OpacityMask{Size: size, solid: make([]bool, size*size)}
	for i := range m.solid {
		m.solid[i] = true
	}
	return m
}

// Solid reports the pixel at image coordinates (x, y). Out of range is empty.
func (m *OpacityMask) Solid(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.Size || y >= m.Size {
		return false
	}
	return m.solid[y*m.Size+x]
}

// SolidLocal samples with tile-local world coordinates, where y grows upward
// from the bottom of the tile.
func (m *OpacityMask) SolidLocal(x, y int) bool {
	if m == nil {
		return false
	}
	return m.Solid(x, m.Size-1-y)
}

// TileImageSource supplies the CPU-readable image for a tile.
type TileImageSource interface {
	TileImage(id TileID) (image.Image, error)
}

// TileImageFunc adapts a function to TileImageSource.
type TileImageFunc func(id TileID) (image.Image, error)

func (f TileImageFunc) TileImage(id TileID) (image.Image, error) { return f(id) }

// MaskCache decodes tile masks on first use and keeps them until the level
// is reloaded. A tile whose image cannot be read has no mask and therefore
// never collides.
type MaskCache struct {
	src    TileImageSource
	size   int
	masks  map[TileID]*OpacityMask
	failed map[TileID]bool
	full   *OpacityMask
	log    *zap.Logger
}

func NewMaskCache(src TileImageSource, size int, log *zap.Logger) *MaskCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &MaskCache{
		src:    src,
		size:   size,
		masks:  make(map[TileID]*OpacityMask),
		failed: make(map[TileID]bool),
		full:   FullMask(size),
		log:    log,
	}
}

// Mask returns the mask for a tile, or nil when the tile has no usable image.
func (c *MaskCache) Mask(id TileID) *OpacityMask {
	switch id {
	case Empty:
		return nil
	case SolidTile:
		return c.full
	}
	if m, ok := c.masks[id]; ok {
		return m
	}
	if c.failed[id] {
		return nil
	}

	m, err := c.decode(id)
	if err != nil {
		c.failed[id] = true
		c.log.Warn("tile mask unavailable", zap.Uint32("tile", uint32(id)), zap.Error(err))
		return nil
	}
	c.masks[id] = m
	return m
}

func (c *MaskCache) decode(id TileID) (*OpacityMask, error) {
	if c.src == nil {
		return nil, fmt.Errorf("no image source for tile %d", id)
	}
	img, err := c.src.TileImage(id)
	if err != nil {
		return nil, fmt.Errorf("tile %d image: %w", id, err)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("tile %d image is empty", id)
	}
	return NewOpacityMask(img, c.size), nil
}

// Invalidate drops every cached mask, e.g. when a level is reloaded.
func (c *MaskCache) Invalidate() {
	clear(c.masks)
	clear(c.failed)
}

// Len is the number of decoded masks.
func (c *MaskCache) Len() int { return len(c.masks) }
