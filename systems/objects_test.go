package systems

import (
	"testing"

	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHazardKillsBalloon(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := balloonEntry(t, e)
	placeBalloon(entry, 150, 70)

	UpdateObjects(e)

	assert.Equal(t, balloon.Dead, components.State.Get(entry).Current())
	camera, ok := components.Camera.First(e.World)
	require.True(t, ok)
	assert.True(t, camera.HasComponent(components.ScreenShake))
}

func TestTouchingHazardEdgeIsSafe(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := balloonEntry(t, e)
	// right edge exactly on the spikes' left edge
	placeBalloon(entry, 128, 70)

	UpdateObjects(e)

	assert.Equal(t, balloon.Normal, components.State.Get(entry).Current())
}

func TestBuzzsawCutsRopeGroupAndOpensDoor(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := balloonEntry(t, e)
	require.NoError(t, RequestState(e, balloon.Buzzsaw))
	settle(entry)
	require.Equal(t, balloon.Buzzsaw, components.State.Get(entry).Current())

	placeBalloon(entry, 70, 165)
	UpdateObjects(e)

	assert.Equal(t, 2, countMapObjects(e), "spikes and exit remain")
	level := levelData(t, e)
	assert.Equal(t, tilemap.Empty, level.Grid.CellAt(8, 1))
	assert.Equal(t, tilemap.Empty, level.Grid.CellAt(8, 2))
}

func TestRopeIgnoresOtherStates(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := balloonEntry(t, e)
	placeBalloon(entry, 70, 165)

	UpdateObjects(e)

	assert.Equal(t, 5, countMapObjects(e))
	assert.Equal(t, tilemap.SolidTile, levelData(t, e).Grid.CellAt(8, 1))
}

func TestDeadBalloonIgnoresObjects(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := balloonEntry(t, e)
	PopBalloon(e)
	placeBalloon(entry, 240, 310)

	UpdateObjects(e)

	assert.False(t, entry.HasComponent(components.Exit))
	assert.Equal(t, balloon.Pop, components.State.Get(entry).Current())
}
