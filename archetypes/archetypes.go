package archetypes

import (
	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

var (
	Balloon = newArchetype(
		tags.Balloon,
		components.Object,
		components.Physics,
		components.State,
		components.Animation,
	)
	MapObject = newArchetype(
		tags.MapObject,
		components.MapObject,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
