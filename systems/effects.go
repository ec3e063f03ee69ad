package systems

import (
	"github.com/automoto/balloon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances tick-driven animations such as the pop.
func UpdateEffects(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
