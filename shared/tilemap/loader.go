package tilemap

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/automoto/balloon/shared/gamemath"
	"github.com/lafriks/go-tiled"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Layer names expected in level TMX files.
const (
	ForegroundLayer = "foreground"
	BackgroundLayer = "background"
	ObjectLayer     = "objects"
)

var (
	ErrLayerNotFound = errors.New("tile layer not found")
	ErrNoSpawn       = errors.New("no spawn object")
)

// Load parses a TMX file. Tiled rows run top to bottom; the returned grid is
// flipped so row 0 is the bottom of the level and world Y grows upward.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	images := newTilesetImages(fsys)

	fg, err := readTileLayer(levelMap, ForegroundLayer, images)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	decor, err := readTileLayer(levelMap, BackgroundLayer, images)
	if errors.Is(err, ErrLayerNotFound) {
		decor = NewGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth)
	} else if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	m := &Map{
		Name:   tmxPath,
		Grid:   fg,
		Decor:  decor,
		Images: images,
	}
	if err := readObjects(levelMap, m); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return m, nil
}

func readTileLayer(levelMap *tiled.Map, name string, images *tilesetImages) (*Grid, error) {
	for _, layer := range levelMap.Layers {
		if layer.Name != name {
			continue
		}
		grid := NewGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth)
		for row := 0; row < levelMap.Height; row++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[row*levelMap.Width+x]
				if tile == nil || tile.IsNil() || tile.Tileset == nil {
					continue
				}
				id := TileID(tile.Tileset.FirstGID + tile.ID)
				images.register(id, tile.Tileset, tile.ID)
				grid.Set(x, levelMap.Height-1-row, id)
			}
		}
		return grid, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
}

func readObjects(levelMap *tiled.Map, m *Map) error {
	mapHeight := float64(levelMap.Height * levelMap.TileHeight)
	spawned := false

	for _, og := range levelMap.ObjectGroups {
		if og.Name != ObjectLayer {
			continue
		}
		for _, o := range og.Objects {
			typeName := o.Class
			if typeName == "" {
				typeName = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			kind, ok := ParseKind(typeName)
			if !ok {
				continue
			}

			// Tile objects are anchored at their bottom-left, shapes at their top-left.
			bottom := mapHeight - o.Y - o.Height
			if o.GID != 0 {
				bottom = mapHeight - o.Y
			}
			bounds := gamemath.NewRect(float32(o.X), float32(bottom), float32(o.Width), float32(o.Height))

			if kind == KindSpawn {
				m.Spawn = bounds.Center()
				spawned = true
				continue
			}

			obj := NewObject(int(o.ID), kind, bounds)
			obj.Rotation = float32(-o.Rotation)
			obj.FlipX = o.GID&0x80000000 != 0 || o.Properties.GetBool("flipX")
			obj.Group = o.Properties.GetString("group")
			m.Objects = append(m.Objects, obj)
		}
	}

	if !spawned {
		return ErrNoSpawn
	}
	return nil
}

type tileRef struct {
	tileset *tiled.Tileset
	id      uint32
}

// tilesetImages decodes tileset images on demand from the map's file system.
type tilesetImages struct {
	fsys   fs.FS
	tiles  map[TileID]tileRef
	sheets map[string]image.Image
}

func newTilesetImages(fsys fs.FS) *tilesetImages {
	return &tilesetImages{
		fsys:   fsys,
		tiles:  make(map[TileID]tileRef),
		sheets: make(map[string]image.Image),
	}
}

func (t *tilesetImages) register(id TileID, ts *tiled.Tileset, local uint32) {
	if _, ok := t.tiles[id]; !ok {
		t.tiles[id] = tileRef{tileset: ts, id: local}
	}
}

func (t *tilesetImages) TileImage(id TileID) (image.Image, error) {
	ref, ok := t.tiles[id]
	if !ok {
		return nil, fmt.Errorf("tile %d is not in any tileset", id)
	}
	ts := ref.tileset

	// Image collection tilesets carry one image per tile.
	if ts.Image == nil {
		tile, err := ts.GetTilesetTile(ref.id)
		if err != nil {
			return nil, err
		}
		if tile.Image == nil {
			return nil, fmt.Errorf("tile %d has no image", id)
		}
		return t.sheet(ts.GetFileFullPath(tile.Image.Source))
	}

	sheet, err := t.sheet(ts.GetFileFullPath(ts.Image.Source))
	if err != nil {
		return nil, err
	}
	sub, ok := sheet.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("tileset image %s cannot be sliced", ts.Image.Source)
	}
	rect := ts.GetTileRect(ref.id).Add(sheet.Bounds().Min)
	return sub.SubImage(rect), nil
}

func (t *tilesetImages) sheet(path string) (image.Image, error) {
	if img, ok := t.sheets[path]; ok {
		return img, nil
	}
	f, err := t.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tileset image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode tileset image %s: %w", path, err)
	}
	t.sheets[path] = img
	return img, nil
}
