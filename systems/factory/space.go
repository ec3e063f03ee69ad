package factory

import (
	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the space entity, or resizes the existing one so a
// new level starts with an empty space.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	if space, ok := components.Space.First(ecs.World); ok {
		components.Space.Set(space, spaceData)
		return space
	}
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, spaceData)
	return space
}
