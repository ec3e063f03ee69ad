package systems

import (
	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBalloon runs one kinematics step for the balloon in its current
// state. A popped, dead or exiting balloon does not move.
func UpdateBalloon(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Level == nil {
		return
	}
	dt := TickSeconds()

	tags.Balloon.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Exit) {
			return
		}
		state := components.State.Get(e)
		if state.Current().Terminal() {
			return
		}

		physics := components.Physics.Get(e)
		physics.Last = physics.Step(dt, state.Current(), level.Level)
		syncObject(e, physics.Position)
	})
}

// syncObject moves the entity's resolv object to the body position.
func syncObject(e *donburi.Entry, pos gamemath.Vec2) {
	obj := components.Object.Get(e)
	obj.X = float64(pos.X)
	obj.Y = float64(pos.Y)
	obj.Update()
}
