package systems

import (
	"testing"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestStartLevelSpawnsBalloonAndObjects(t *testing.T) {
	e, _ := newTestWorld(t)

	entry := balloonEntry(t, e)
	physics := components.Physics.Get(entry)
	assert.Equal(t, gamemath.Vec2{X: 32, Y: 32}, physics.Position)
	assert.Equal(t, gamemath.Vec2{X: 0, Y: cfg.Balloon.LaunchSpeed}, physics.Velocity)
	assert.Equal(t, balloon.Normal, components.State.Get(entry).Current())
	assert.Equal(t, 5, countMapObjects(e))

	level := levelData(t, e)
	assert.Equal(t, "Test One", level.Info.Name)
	assert.Equal(t, tilemap.SolidTile, level.Grid.CellAt(8, 1), "door is stamped into the grid")
	assert.Nil(t, level.Background)
}

func TestBalloonTickMovesBalloonAndObject(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := balloonEntry(t, e)

	UpdateStates(e)
	UpdateBalloon(e)

	physics := components.Physics.Get(entry)
	assert.InDelta(t, 32+100.0/60, physics.Position.Y, 1e-3)
	assert.InDelta(t, 32, physics.Position.X, 1e-3)
	assert.False(t, physics.Last.Collided)

	obj := components.Object.Get(entry)
	assert.InDelta(t, float64(physics.Position.Y), obj.Y, 1e-6)
}

func TestResetLevelReloadsFromSource(t *testing.T) {
	e, src := newTestWorld(t)
	entry := balloonEntry(t, e)
	placeBalloon(entry, 200, 200)
	KillBalloon(e)

	require.NoError(t, ResetLevel(e))

	assert.Equal(t, 2, src.loads)
	fresh := balloonEntry(t, e)
	assert.False(t, entry.Valid(), "old balloon removed")
	assert.Equal(t, balloon.Normal, components.State.Get(fresh).Current())
	assert.Equal(t, gamemath.Vec2{X: 32, Y: 32}, components.Physics.Get(fresh).Position)
	assert.Equal(t, 5, countMapObjects(e))
}

func TestAdvanceLevelWraps(t *testing.T) {
	e, _ := newTestWorld(t)

	require.NoError(t, AdvanceLevel(e))
	assert.Equal(t, 1, levelData(t, e).Index)
	assert.Equal(t, "Test Two", levelData(t, e).Info.Name)

	require.NoError(t, AdvanceLevel(e))
	assert.Equal(t, 0, levelData(t, e).Index)
}

func TestLoadLevelWithoutSource(t *testing.T) {
	e, _ := newTestWorld(t)
	levelData(t, e).Source = nil

	assert.ErrorIs(t, ResetLevel(e), ErrNoLevelSource)
	assert.ErrorIs(t, AdvanceLevel(e), ErrNoLevelSource)
}

func TestExitTweenAdvancesLevel(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := balloonEntry(t, e)
	placeBalloon(entry, 240, 310)

	UpdateObjects(e)
	require.True(t, entry.HasComponent(components.Exit))

	// The balloon no longer simulates while it flies into the exit.
	UpdateBalloon(e)
	before := components.Physics.Get(entry).Position

	limit := int(cfg.Level.ExitTweenDuration*float32(cfg.C.TPS)) + 10
	for i := 0; i < limit && levelData(t, e).Index == 0; i++ {
		UpdateExit(e)
	}

	assert.Equal(t, gamemath.Vec2{X: 240, Y: 310}, before)
	assert.Equal(t, 1, levelData(t, e).Index)
	assert.False(t, balloonEntry(t, e).HasComponent(components.Exit))
}

// flyIntoExit reaches the exit and runs the fly-in tween to its end.
func flyIntoExit(t *testing.T, e *ecs.ECS) {
	t.Helper()
	entry := balloonEntry(t, e)
	placeBalloon(entry, 240, 310)
	UpdateObjects(e)
	require.True(t, entry.HasComponent(components.Exit))

	ticks := int(cfg.Level.ExitTweenDuration*float32(cfg.C.TPS)) + 10
	for i := 0; i < ticks && entry.Valid() && entry.HasComponent(components.Exit); i++ {
		UpdateExit(e)
	}
}

func TestExitFallsBackToResetWhenNextLevelFails(t *testing.T) {
	e, src := newTestWorld(t)
	src.broken = map[int]bool{1: true}

	flyIntoExit(t, e)

	assert.Equal(t, 0, levelData(t, e).Index)
	fresh := balloonEntry(t, e)
	assert.False(t, fresh.HasComponent(components.Exit))
	assert.Equal(t, gamemath.Vec2{X: 32, Y: 32}, components.Physics.Get(fresh).Position)
	assert.Equal(t, 2, src.loads, "initial load and the reset")
}

func TestExitReleasesBalloonWithoutSource(t *testing.T) {
	e, _ := newTestWorld(t)
	levelData(t, e).Source = nil

	flyIntoExit(t, e)

	entry := balloonEntry(t, e)
	assert.False(t, entry.HasComponent(components.Exit))

	physics := components.Physics.Get(entry)
	physics.Velocity = gamemath.Vec2{Y: -60}
	before := physics.Position
	UpdateBalloon(e)
	assert.Less(t, physics.Position.Y, before.Y, "balloon simulates again")
}
