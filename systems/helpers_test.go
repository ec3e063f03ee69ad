package systems

import (
	"errors"
	"testing"

	"github.com/automoto/balloon/assets"
	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/automoto/balloon/systems/factory"
	"github.com/automoto/balloon/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testManifest = `
levels:
  - name: Test One
    map: one.tmx
    buttons: [true, true, true, false, false, true]
  - name: Test Two
    map: two.tmx
    buttons: [true, true, true, true, true, true]
`

var errBrokenLevel = errors.New("broken level")

// testSource builds every level in code: a 10x12 room with a solid floor,
// spikes, a rope group holding a door shut and an exit near the top.
type testSource struct {
	manifest *assets.Manifest
	loads    int
	broken   map[int]bool // indices that fail to load
}

func newTestSource(t *testing.T) *testSource {
	t.Helper()
	m, err := assets.ParseManifest([]byte(testManifest))
	require.NoError(t, err)
	return &testSource{manifest: m}
}

func (s *testSource) Manifest() *assets.Manifest { return s.manifest }

func (s *testSource) LoadLevel(index int) (assets.LevelInfo, *tilemap.Map, error) {
	info, err := s.manifest.Level(index)
	if err != nil {
		return assets.LevelInfo{}, nil, err
	}
	if s.broken[index] {
		return assets.LevelInfo{}, nil, errBrokenLevel
	}
	s.loads++

	grid := tilemap.NewGrid(10, 12, 32)
	for x := 0; x < grid.Width; x++ {
		grid.Set(x, 0, tilemap.SolidTile)
	}

	rope := func(id int, y float32) tilemap.Object {
		o := tilemap.NewObject(id, tilemap.KindRope, gamemath.NewRect(64, y, 32, 32))
		o.Group = "a"
		return o
	}
	door := tilemap.NewObject(4, tilemap.KindDoor, gamemath.NewRect(256, 32, 32, 64))
	door.Group = "a"

	return info, &tilemap.Map{
		Name: info.Name,
		Grid: grid,
		Objects: []tilemap.Object{
			tilemap.NewObject(1, tilemap.KindSpikes, gamemath.NewRect(160, 64, 32, 32)),
			rope(2, 160),
			rope(3, 192),
			door,
			tilemap.NewObject(5, tilemap.KindExit, gamemath.NewRect(224, 320, 64, 32)),
		},
		Spawn: gamemath.Vec2{X: 48, Y: 48},
	}, nil
}

// newTestWorld starts level 0 of a test source with a camera.
func newTestWorld(t *testing.T) (*ecs.ECS, *testSource) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e)

	src := newTestSource(t)
	data, err := factory.LoadLevelData(src, tilemap.NewRectPool(), 0, nil)
	require.NoError(t, err)
	StartLevel(e, data)
	return e, src
}

func balloonEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Balloon.First(e.World)
	require.True(t, ok, "no balloon")
	return entry
}

func levelData(t *testing.T, e *ecs.ECS) *components.LevelData {
	t.Helper()
	entry, ok := components.Level.First(e.World)
	require.True(t, ok, "no level")
	return components.Level.Get(entry)
}

// placeBalloon teleports the balloon and its resolv object.
func placeBalloon(entry *donburi.Entry, x, y float32) {
	physics := components.Physics.Get(entry)
	physics.Position = gamemath.Vec2{X: x, Y: y}
	syncObject(entry, physics.Position)
}

func countMapObjects(e *ecs.ECS) int {
	n := 0
	tags.MapObject.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// settle runs the state machine until the running transition completes.
func settle(entry *donburi.Entry) {
	components.State.Get(entry).Update(1)
}
