package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/systems/factory"
	"github.com/automoto/balloon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var (
	ErrNoLevel       = errors.New("no level loaded")
	ErrNoLevelSource = errors.New("level has no source to reload from")
)

// StartLevel replaces whatever level is running with data and spawns its
// objects and balloon. It returns the balloon entry.
func StartLevel(ecs *ecs.ECS, data *components.LevelData) *donburi.Entry {
	clearLevel(ecs)
	factory.CreateLevel(ecs, data)
	b := factory.PopulateLevel(ecs, data, log)
	centerCamera(ecs, b)
	return b
}

// LoadLevel loads the level at index from the current level's source.
func LoadLevel(ecs *ecs.ECS, index int) error {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return ErrNoLevel
	}
	current := components.Level.Get(levelEntry)
	if current.Source == nil {
		return ErrNoLevelSource
	}

	data, err := factory.LoadLevelData(current.Source, current.Pool, index, log)
	if err != nil {
		return fmt.Errorf("load level %d: %w", index, err)
	}
	StartLevel(ecs, data)
	log.Info("level loaded", zap.Int("index", index), zap.String("name", data.Info.Name))
	return nil
}

// ResetLevel reloads the current level with a fresh balloon at the spawn.
func ResetLevel(ecs *ecs.ECS) error {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return ErrNoLevel
	}
	return LoadLevel(ecs, components.Level.Get(levelEntry).Index)
}

// AdvanceLevel loads the next level of the manifest, wrapping after the last.
func AdvanceLevel(ecs *ecs.ECS) error {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return ErrNoLevel
	}
	current := components.Level.Get(levelEntry)
	if current.Source == nil {
		return ErrNoLevelSource
	}
	return LoadLevel(ecs, current.Source.Manifest().Next(current.Index))
}

// UpdateExit flies the balloon into the exit and advances the level once
// the tween completes. A level that fails to load falls back to a reset.
func UpdateExit(ecs *ecs.ECS) {
	entry, ok := tags.Balloon.First(ecs.World)
	if !ok || !entry.HasComponent(components.Exit) {
		return
	}
	exit := components.Exit.Get(entry)

	dt := TickSeconds()
	x, doneX := exit.X.Update(dt)
	y, doneY := exit.Y.Update(dt)

	physics := components.Physics.Get(entry)
	physics.Position.X = x
	physics.Position.Y = y
	syncObject(entry, physics.Position)

	if !doneX || !doneY {
		return
	}
	if err := AdvanceLevel(ecs); err != nil {
		log.Error("advance level", zap.Error(err))
		exitFallback(ecs, entry)
	}
}

// exitFallback replays the current level when the next one cannot be
// loaded. Without any level to load, the balloon is released from the exit
// so play can go on.
func exitFallback(ecs *ecs.ECS, entry *donburi.Entry) {
	if err := ResetLevel(ecs); err != nil {
		log.Error("reset level", zap.Error(err))
		entry.RemoveComponent(components.Exit)
	}
}

// clearLevel removes the balloon and map objects and releases the pooled
// data of the running level.
func clearLevel(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	tags.Balloon.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	tags.MapObject.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	for _, e := range entries {
		removeObject(e)
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry); level.Level != nil {
			level.Release()
		}
	}
}

// DrawLevel draws the pre-rendered background. The image has its origin at
// the top-left while the world has Y up, so it is anchored at the map's top.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Background == nil || level.Level == nil {
		return
	}

	x, y := worldToScreen(ecs, screen, 0, float64(level.Grid.PixelHeight()))
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	screen.DrawImage(level.Background, opts)
}
