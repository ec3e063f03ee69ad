package systems

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/automoto/balloon/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateObjects applies balloon contact with map objects: hazards kill it,
// the buzzsaw cuts ropes and the exit ends the level.
func UpdateObjects(ecs *ecs.ECS) {
	entry, ok := tags.Balloon.First(ecs.World)
	if !ok || entry.HasComponent(components.Exit) {
		return
	}
	state := components.State.Get(entry)
	if state.Current().Terminal() {
		return
	}

	obj := components.Object.Get(entry)
	check := obj.Check(0, 0, tags.ResolvHazard, tags.ResolvCuttable, tags.ResolvGoal)
	if check == nil {
		return
	}
	bounds := components.Physics.Get(entry).Bounds()

	for _, other := range check.Objects {
		objEntry, ok := other.Data.(*donburi.Entry)
		if !ok || !objEntry.Valid() {
			continue
		}
		mo := components.MapObject.Get(objEntry)
		if !bounds.Overlaps(mo.Bounds) {
			continue
		}

		switch {
		case mo.Has(tilemap.Hazard):
			KillBalloon(ecs)
			TriggerScreenShake(ecs, cfg.ScreenShake.Intensity, cfg.ScreenShake.Duration)
			return
		case mo.Has(tilemap.Goal):
			startExit(entry, mo.Bounds)
			return
		case mo.Has(tilemap.Cuttable) && state.Current() == balloon.Buzzsaw:
			cut(ecs, objEntry)
		}
	}
}

// cut destroys a cuttable object. When it is a trigger source, the rest of
// its group is cut too and every trigger bound to the group fires.
func cut(ecs *ecs.ECS, entry *donburi.Entry) {
	mo := components.MapObject.Get(entry).Object
	if !mo.Has(tilemap.TriggerSource) || mo.Group == "" {
		removeObject(entry)
		return
	}

	var cutEntries []*donburi.Entry
	var triggered []tilemap.Object
	tags.MapObject.Each(ecs.World, func(e *donburi.Entry) {
		other := components.MapObject.Get(e)
		if other.Group != mo.Group {
			return
		}
		switch {
		case other.Has(tilemap.Cuttable):
			cutEntries = append(cutEntries, e)
		case other.Has(tilemap.Trigger):
			cutEntries = append(cutEntries, e)
			triggered = append(triggered, other.Object)
		}
	})

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		for _, o := range triggered {
			if o.Has(tilemap.Blocker) {
				level.Open(o)
			}
		}
	}
	for _, e := range cutEntries {
		removeObject(e)
	}
	log.Info("rope group cut", zap.String("group", mo.Group), zap.Int("triggers", len(triggered)))
}

// removeObject takes an entity out of the resolv space and the world.
func removeObject(e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}

// startExit stops the balloon and tweens it onto the exit's centre.
func startExit(entry *donburi.Entry, goal gamemath.Rect) {
	physics := components.Physics.Get(entry)
	half := float32(balloon.FrameSize) / 2
	target := goal.Center().Sub(gamemath.Vec2{X: half, Y: half})
	d := cfg.Level.ExitTweenDuration

	physics.Velocity = gamemath.Vec2{}
	entry.AddComponent(components.Exit)
	components.Exit.Set(entry, &components.ExitData{
		X: gween.New(physics.Position.X, target.X, d, ease.OutElastic),
		Y: gween.New(physics.Position.Y, target.Y, d, ease.OutElastic),
	})
	log.Info("exit reached")
}
