package tilemap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/automoto/balloon/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="5">
 <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="2" columns="2">
  <image source="tiles.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="background" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
0,0,0,0
</data>
 </layer>
 <layer id="2" name="foreground" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,2,
1,1,0,0
</data>
 </layer>
 <objectgroup id="3" name="objects">
  <object id="1" type="spawn" x="64" y="0" width="32" height="32"/>
  <object id="2" type="spikes" x="96" y="64" width="32" height="32"/>
  <object id="3" type="rope" x="0" y="0" width="32" height="32">
   <properties>
    <property name="group" value="a"/>
   </properties>
  </object>
  <object id="4" type="cloud" x="0" y="0" width="32" height="32"/>
 </objectgroup>
</map>
`

// tilesPNG is two 32px tiles: a solid block and a tile opaque only in its top half.
func tilesPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	for y := 0; y < 16; y++ {
		for x := 32; x < 64; x++ {
			img.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"level.tmx": {Data: []byte(testTMX)},
		"tiles.png": {Data: tilesPNG(t)},
	}
}

func TestLoadFlipsRows(t *testing.T) {
	m, err := Load(testFS(t), "level.tmx")
	require.NoError(t, err)

	assert.Equal(t, 4, m.Grid.Width)
	assert.Equal(t, 3, m.Grid.Height)
	assert.Equal(t, 32, m.Grid.TileSize)

	assert.Equal(t, TileID(1), m.Grid.CellAt(0, 0))
	assert.Equal(t, TileID(1), m.Grid.CellAt(1, 0))
	assert.Equal(t, TileID(2), m.Grid.CellAt(3, 1))
	assert.False(t, m.Grid.Occupied(0, 2))
	assert.False(t, m.Decor.Occupied(0, 0))
}

func TestLoadObjects(t *testing.T) {
	m, err := Load(testFS(t), "level.tmx")
	require.NoError(t, err)

	assert.Equal(t, gamemath.Vec2{X: 80, Y: 80}, m.Spawn)
	require.Len(t, m.Objects, 2)

	spikes := m.Objects[0]
	assert.Equal(t, KindSpikes, spikes.Kind)
	assert.Equal(t, gamemath.NewRect(96, 0, 32, 32), spikes.Bounds)
	assert.True(t, spikes.Has(Hazard))

	rope := m.Objects[1]
	assert.Equal(t, KindRope, rope.Kind)
	assert.Equal(t, "a", rope.Group)
	assert.Equal(t, gamemath.NewRect(0, 64, 32, 32), rope.Bounds)
}

func TestLoadTileMasks(t *testing.T) {
	m, err := Load(testFS(t), "level.tmx")
	require.NoError(t, err)

	masks := NewMaskCache(m.Images, 32, nil)
	block := masks.Mask(1)
	require.NotNil(t, block)
	assert.True(t, block.SolidLocal(0, 0))
	assert.True(t, block.SolidLocal(31, 31))

	half := masks.Mask(2)
	require.NotNil(t, half)
	assert.True(t, half.SolidLocal(0, 31))
	assert.False(t, half.SolidLocal(0, 0))
}

func TestLoadMissingSpawn(t *testing.T) {
	fsys := testFS(t)
	fsys["nospawn.tmx"] = &fstest.MapFile{Data: bytes.Replace([]byte(testTMX), []byte(`type="spawn"`), []byte(`type="cloud"`), 1)}

	_, err := Load(fsys, "nospawn.tmx")
	assert.ErrorIs(t, err, ErrNoSpawn)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testFS(t), "missing.tmx")
	assert.Error(t, err)
}
