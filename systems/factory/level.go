package factory

import (
	"fmt"
	"image"

	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/assets"
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type backgroundRenderer interface {
	RenderBackground(info assets.LevelInfo) (image.Image, error)
}

// LoadLevelData reads the level at index from src and prepares it for
// simulation. The background is rendered when src can draw one.
func LoadLevelData(src components.LevelSource, pool *tilemap.RectPool, index int, log *zap.Logger) (*components.LevelData, error) {
	info, m, err := src.LoadLevel(index)
	if err != nil {
		return nil, err
	}

	data := NewLevelData(info, m, pool, log)
	data.Index = index
	data.Source = src

	if r, ok := src.(backgroundRenderer); ok {
		bg, err := r.RenderBackground(info)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", info.Name, err)
		}
		data.Background = ebiten.NewImageFromImage(bg)
	}
	return data, nil
}

// NewLevelData wraps an already parsed map.
func NewLevelData(info assets.LevelInfo, m *tilemap.Map, pool *tilemap.RectPool, log *zap.Logger) *components.LevelData {
	if pool == nil {
		pool = tilemap.NewRectPool()
	}
	wind := tilemap.WindSettings{Force: cfg.Wind.FanForce, Reach: cfg.Wind.FanReach}
	return &components.LevelData{
		Level: tilemap.NewLevel(m, pool, wind, log),
		Info:  info,
		Pool:  pool,
	}
}

// CreateLevel spawns the level entity, or replaces the data of the existing one.
func CreateLevel(ecs *ecs.ECS, data *components.LevelData) *donburi.Entry {
	if level, ok := components.Level.First(ecs.World); ok {
		components.Level.Set(level, data)
		return level
	}
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, data)
	return level
}

// PopulateLevel builds a fresh collision space for the level and spawns its
// map objects and the balloon. It returns the balloon entry.
func PopulateLevel(ecs *ecs.ECS, data *components.LevelData, log *zap.Logger) *donburi.Entry {
	grid := data.Grid
	spaceEntry := CreateSpace(ecs, grid.PixelWidth(), grid.PixelHeight(), grid.TileSize, grid.TileSize)
	space := components.Space.Get(spaceEntry)

	for _, o := range data.Objects {
		CreateMapObject(ecs, space, o)
	}
	return CreateBalloon(ecs, space, data.Spawn, log)
}
