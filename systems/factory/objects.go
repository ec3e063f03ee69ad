package factory

import (
	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/automoto/balloon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var capabilityTags = []struct {
	cap tilemap.Capability
	tag string
}{
	{tilemap.Hazard, tags.ResolvHazard},
	{tilemap.Cuttable, tags.ResolvCuttable},
	{tilemap.Goal, tags.ResolvGoal},
	{tilemap.Blocker, tags.ResolvDoor},
	{tilemap.ForceField, tags.ResolvFan},
}

// CreateMapObject adds a level object to the world and the resolv space,
// tagged by its capabilities.
func CreateMapObject(ecs *ecs.ECS, space *resolv.Space, o tilemap.Object) *donburi.Entry {
	entry := archetypes.MapObject.Spawn(ecs)

	var objTags []string
	for _, ct := range capabilityTags {
		if o.Has(ct.cap) {
			objTags = append(objTags, ct.tag)
		}
	}

	b := o.Bounds
	obj := resolv.NewObject(float64(b.X), float64(b.Y), float64(b.W), float64(b.H), objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(b.W), float64(b.H)))
	obj.Data = entry
	space.Add(obj)

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.MapObject.SetValue(entry, components.MapObjectData{Object: o})
	return entry
}
